package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalyx/blogchain/internal/engine/types/enum"
	"github.com/robalyx/blogchain/internal/setup/config"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()
	cfg := config.DefaultConfig()

	assert.Equal(t, config.CurrentEngineVersion, cfg.Version)
	assert.Equal(t, 5, cfg.Limits.SlugMinLen)
	assert.Equal(t, 50, cfg.Limits.SlugMaxLen)
	assert.Equal(t, 46, cfg.Limits.IPFSHashLen)
	assert.Equal(t, 3, cfg.Limits.UsernameMinLen)
	assert.Equal(t, 24, cfg.Limits.UsernameMaxLen)
	assert.Equal(t, 1000, cfg.Limits.BlogMaxLen)
	assert.Equal(t, 10000, cfg.Limits.PostMaxLen)
	assert.Equal(t, 1000, cfg.Limits.CommentMaxLen)
}

func TestWeightsOf(t *testing.T) {
	t.Parallel()
	cfg := config.DefaultConfig()

	tests := []struct {
		action enum.ScoringAction
		want   int16
	}{
		{enum.ScoringActionUpvotePost, 5},
		{enum.ScoringActionDownvotePost, -3},
		{enum.ScoringActionSharePost, 5},
		{enum.ScoringActionCreateComment, 5},
		{enum.ScoringActionUpvoteComment, 4},
		{enum.ScoringActionDownvoteComment, -2},
		{enum.ScoringActionShareComment, 3},
		{enum.ScoringActionFollowBlog, 7},
		{enum.ScoringActionFollowAccount, 3},
	}

	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cfg.Weights.Of(tt.action))
		})
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	cfg := writeAndLoad(t, `
version = 1

[limits]
slug_min_len = 3

[weights]
upvote_post = 9
`)

	// File values override defaults, untouched fields keep them.
	assert.Equal(t, 3, cfg.Limits.SlugMinLen)
	assert.Equal(t, int16(9), cfg.Weights.UpvotePost)
	assert.Equal(t, 50, cfg.Limits.SlugMaxLen)
	assert.Equal(t, int16(-3), cfg.Weights.DownvotePost)
}

func TestLoadConfigVersionMismatch(t *testing.T) {
	requireLoadError(t, "version = 999", config.ErrConfigVersionMismatch)
}

func TestLoadConfigVersionMissing(t *testing.T) {
	requireLoadError(t, "[limits]\nslug_min_len = 3", config.ErrConfigVersionMissing)
}

// writeAndLoad drops an engine.toml in a temp working directory and loads it.
// Not parallel: LoadConfig searches relative paths.
func writeAndLoad(t *testing.T, content string) *config.Config {
	t.Helper()
	writeConfig(t, content)

	cfg, path, err := config.LoadConfig()
	require.NoError(t, err)
	assert.NotEmpty(t, path)

	return cfg
}

func requireLoadError(t *testing.T, content string, want error) {
	t.Helper()
	writeConfig(t, content)

	_, _, err := config.LoadConfig()
	require.ErrorIs(t, err, want)
}

func writeConfig(t *testing.T, content string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(dir+"/engine.toml", []byte(content), 0o600))
	t.Chdir(dir)
}

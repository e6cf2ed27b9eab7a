package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalyx/blogchain/internal/engine/types"
	"github.com/robalyx/blogchain/internal/engine/types/enum"
	"github.com/robalyx/blogchain/internal/setup/config"
)

func TestScoreDiff(t *testing.T) {
	t.Parallel()
	s := &session{cfg: config.DefaultConfig()}

	tests := []struct {
		name       string
		reputation uint32
		action     enum.ScoringAction
		want       int16
	}{
		{"floor reputation equals the weight", 1, enum.ScoringActionUpvotePost, 5},
		{"one below a power of two", 65535, enum.ScoringActionUpvotePost, 80},
		{"exact power of two", 65536, enum.ScoringActionUpvotePost, 85},
		{"small reputation", 2, enum.ScoringActionUpvotePost, 10},
		{"negative weight scales the same way", 2, enum.ScoringActionDownvotePost, -6},
		{"fractional excess rounds down", 3, enum.ScoringActionUpvotePost, 10},
		{"follow blog weight", 1, enum.ScoringActionFollowBlog, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diff, err := s.scoreDiff(tt.reputation, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, diff)
		})
	}
}

func TestScoreDiffZeroReputation(t *testing.T) {
	t.Parallel()
	s := &session{cfg: config.DefaultConfig()}

	// Reputation below the floor is treated as the floor.
	diff, err := s.scoreDiff(0, enum.ScoringActionUpvotePost)
	require.NoError(t, err)
	assert.Equal(t, int16(5), diff)
}

func TestScoreDiffOverflow(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Weights.UpvotePost = 32767
	s := &session{cfg: cfg}

	_, err := s.scoreDiff(2, enum.ScoringActionUpvotePost)
	assert.ErrorIs(t, err, types.ErrScoreOverflow)
}

func TestOppositeVote(t *testing.T) {
	t.Parallel()

	opposite, ok := oppositeVote(enum.ScoringActionUpvotePost)
	require.True(t, ok)
	assert.Equal(t, enum.ScoringActionDownvotePost, opposite)

	opposite, ok = oppositeVote(enum.ScoringActionDownvoteComment)
	require.True(t, ok)
	assert.Equal(t, enum.ScoringActionUpvoteComment, opposite)

	_, ok = oppositeVote(enum.ScoringActionSharePost)
	assert.False(t, ok)
}

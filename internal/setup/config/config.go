package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/robalyx/blogchain/internal/engine/types/enum"
)

var (
	ErrConfigFileNotFound    = errors.New("could not find config file in any config path")
	ErrConfigVersionMissing  = errors.New("config file is missing version field")
	ErrConfigVersionMismatch = errors.New("config file version mismatch")
)

// Current version of the engine config file.
const CurrentEngineVersion = 1

// Config holds every tunable the engine consumes: format bounds and the
// per-action scoring weights.
type Config struct {
	// Version of the engine config.
	Version int     `koanf:"version"`
	Limits  Limits  `koanf:"limits"`
	Weights Weights `koanf:"weights"`
	Host    Host    `koanf:"host"`
}

// Host contains settings of the runtime around the engine: where the store
// keeps its data and where events are published.
type Host struct {
	// Directory for the persistent key-value store.
	DataDir string `koanf:"data_dir"`
	Redis   Redis  `koanf:"redis"`
}

// Redis connection settings for the event publisher.
type Redis struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
}

// Limits contains the length and format bounds applied during validation.
type Limits struct {
	// Slug length bounds for blogs.
	SlugMinLen int `koanf:"slug_min_len"`
	SlugMaxLen int `koanf:"slug_max_len"`
	// Exact length of an IPFS CID content pointer.
	IPFSHashLen int `koanf:"ipfs_hash_len"`
	// Username length bounds for profiles.
	UsernameMinLen int `koanf:"username_min_len"`
	UsernameMaxLen int `koanf:"username_max_len"`
	// Upper bounds on stored content pointers per entity kind.
	BlogMaxLen    int `koanf:"blog_max_len"`
	PostMaxLen    int `koanf:"post_max_len"`
	CommentMaxLen int `koanf:"comment_max_len"`
}

// Weights contains the signed weight of each scoring action.
type Weights struct {
	UpvotePost      int16 `koanf:"upvote_post"`
	DownvotePost    int16 `koanf:"downvote_post"`
	SharePost       int16 `koanf:"share_post"`
	CreateComment   int16 `koanf:"create_comment"`
	UpvoteComment   int16 `koanf:"upvote_comment"`
	DownvoteComment int16 `koanf:"downvote_comment"`
	ShareComment    int16 `koanf:"share_comment"`
	FollowBlog      int16 `koanf:"follow_blog"`
	FollowAccount   int16 `koanf:"follow_account"`
}

// Of returns the weight configured for the action.
func (w *Weights) Of(action enum.ScoringAction) int16 {
	switch action {
	case enum.ScoringActionUpvotePost:
		return w.UpvotePost
	case enum.ScoringActionDownvotePost:
		return w.DownvotePost
	case enum.ScoringActionSharePost:
		return w.SharePost
	case enum.ScoringActionCreateComment:
		return w.CreateComment
	case enum.ScoringActionUpvoteComment:
		return w.UpvoteComment
	case enum.ScoringActionDownvoteComment:
		return w.DownvoteComment
	case enum.ScoringActionShareComment:
		return w.ShareComment
	case enum.ScoringActionFollowBlog:
		return w.FollowBlog
	case enum.ScoringActionFollowAccount:
		return w.FollowAccount
	default:
		return 0
	}
}

// DefaultConfig returns the built-in defaults used when no config file
// overrides them.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentEngineVersion,
		Limits: Limits{
			SlugMinLen:     5,
			SlugMaxLen:     50,
			IPFSHashLen:    46,
			UsernameMinLen: 3,
			UsernameMaxLen: 24,
			BlogMaxLen:     1000,
			PostMaxLen:     10000,
			CommentMaxLen:  1000,
		},
		Weights: Weights{
			UpvotePost:      5,
			DownvotePost:    -3,
			SharePost:       5,
			CreateComment:   5,
			UpvoteComment:   4,
			DownvoteComment: -2,
			ShareComment:    3,
			FollowBlog:      7,
			FollowAccount:   3,
		},
		Host: Host{
			DataDir: "data",
			Redis: Redis{
				Host: "localhost",
				Port: 6379,
			},
		},
	}
}

// LoadConfig loads engine.toml from the first config path that has one and
// returns the config along with the path used.
func LoadConfig() (*Config, string, error) {
	k := koanf.New(".")

	// Get user's home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get home directory: %w", err)
	}

	// List search paths
	configPaths := []string{
		".blogchain",
		homeDir + "/.blogchain/config",
		"/etc/blogchain/config",
		"config",
		".",
	}

	var usedConfigPath string

	for _, path := range configPaths {
		configPath := fmt.Sprintf("%s/engine.toml", path)
		if err := k.Load(file.Provider(configPath), toml.Parser()); err == nil {
			usedConfigPath = path
			break
		}
	}

	if usedConfigPath == "" {
		return nil, "", fmt.Errorf("%w: engine.toml", ErrConfigFileNotFound)
	}

	config := DefaultConfig()
	if err := k.Unmarshal("", config); err != nil {
		return nil, "", fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := checkConfigVersion(config.Version, CurrentEngineVersion); err != nil {
		return nil, "", err
	}

	return config, usedConfigPath, nil
}

// checkConfigVersion ensures the loaded file matches the supported version.
func checkConfigVersion(version, current int) error {
	if version == 0 {
		return fmt.Errorf("%w: engine config", ErrConfigVersionMissing)
	}

	if version != current {
		return fmt.Errorf("%w: engine config has version %d, expected %d",
			ErrConfigVersionMismatch, version, current)
	}

	return nil
}

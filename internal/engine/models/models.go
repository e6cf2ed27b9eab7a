// Package models is the entity repository: typed accessors and secondary
// index maintenance over the keyed store. Models never validate business
// rules; that is the service layer's job.
package models

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"github.com/robalyx/blogchain/internal/engine/storage"
)

// Repository bundles all entity models over one store view. Operations
// construct a Repository per staging overlay so every read and write of the
// operation goes through the same view.
type Repository struct {
	Blogs     *BlogModel
	Posts     *PostModel
	Comments  *CommentModel
	Reactions *ReactionModel
	Accounts  *AccountModel
	Follows   *FollowModel
	Scores    *ScoreModel
}

// New creates a repository over the given store view.
func New(store storage.Store, logger *zap.Logger) *Repository {
	return &Repository{
		Blogs:     &BlogModel{store: store, logger: logger.Named("blog_model")},
		Posts:     &PostModel{store: store, logger: logger.Named("post_model")},
		Comments:  &CommentModel{store: store, logger: logger.Named("comment_model")},
		Reactions: &ReactionModel{store: store, logger: logger.Named("reaction_model")},
		Accounts:  &AccountModel{store: store, logger: logger.Named("account_model")},
		Follows:   &FollowModel{store: store, logger: logger.Named("follow_model")},
		Scores:    &ScoreModel{store: store, logger: logger.Named("score_model")},
	}
}

// getJSON decodes the value under key into T. The second result reports
// whether the key exists.
func getJSON[T any](ctx context.Context, store storage.Store, key string) (T, bool, error) {
	var out T

	data, ok, err := store.Get(ctx, key)
	if err != nil {
		return out, false, fmt.Errorf("failed to read %q: %w", key, err)
	}

	if !ok {
		return out, false, nil
	}

	if err := sonic.Unmarshal(data, &out); err != nil {
		return out, false, fmt.Errorf("failed to decode %q: %w", key, err)
	}

	return out, true, nil
}

// setJSON encodes value and stores it under key.
func setJSON[T any](ctx context.Context, store storage.Store, key string, value T) error {
	data, err := sonic.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}

	if err := store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}

	return nil
}

// getList returns the id list under key, or an empty list for a missing key.
func getList[T comparable](ctx context.Context, store storage.Store, key string) ([]T, error) {
	list, _, err := getJSON[[]T](ctx, store, key)
	if err != nil {
		return nil, err
	}

	return list, nil
}

// appendToList adds elem to the end of the list under key.
func appendToList[T comparable](ctx context.Context, store storage.Store, key string, elem T) error {
	list, err := getList[T](ctx, store, key)
	if err != nil {
		return err
	}

	return setJSON(ctx, store, key, append(list, elem))
}

// removeFromList removes elem from the list under key using swap-remove.
// Order is not preserved; a missing element is not an error.
func removeFromList[T comparable](ctx context.Context, store storage.Store, key string, elem T) error {
	list, err := getList[T](ctx, store, key)
	if err != nil {
		return err
	}

	for i, candidate := range list {
		if candidate == elem {
			list[i] = list[len(list)-1]
			list = list[:len(list)-1]

			return setJSON(ctx, store, key, list)
		}
	}

	return nil
}

// allocateID returns the next id from the counter under key and advances the
// counter. Counters start at 1.
func allocateID(ctx context.Context, store storage.Store, key string) (uint64, error) {
	next, ok, err := getJSON[uint64](ctx, store, key)
	if err != nil {
		return 0, err
	}

	if !ok {
		next = 1
	}

	if err := setJSON(ctx, store, key, next+1); err != nil {
		return 0, err
	}

	return next, nil
}

// peekID returns the next id without advancing the counter.
func peekID(ctx context.Context, store storage.Store, key string) (uint64, error) {
	next, ok, err := getJSON[uint64](ctx, store, key)
	if err != nil {
		return 0, err
	}

	if !ok {
		next = 1
	}

	return next, nil
}

// flagSet stores a presence flag under key.
func flagSet(ctx context.Context, store storage.Store, key string) error {
	return store.Set(ctx, key, []byte{1})
}

// flagExists reports whether the presence flag under key is set.
func flagExists(ctx context.Context, store storage.Store, key string) (bool, error) {
	_, ok, err := store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to read %q: %w", key, err)
	}

	return ok, nil
}

package models

import (
	"context"

	"go.uber.org/zap"

	"github.com/robalyx/blogchain/internal/engine/storage"
	"github.com/robalyx/blogchain/internal/engine/types"
)

// FollowModel maintains the symmetric adjacency lists and membership flags
// for blog follows and account follows.
type FollowModel struct {
	store  storage.Store
	logger *zap.Logger
}

// BlogFollowedByAccount reports whether the account follows the blog.
func (m *FollowModel) BlogFollowedByAccount(ctx context.Context, account types.AccountID, id types.BlogID) (bool, error) {
	return flagExists(ctx, m.store, blogFollowedByAccountKey(account, id))
}

// AddBlogFollower records the follow in both adjacency lists and sets the
// membership flag.
func (m *FollowModel) AddBlogFollower(ctx context.Context, account types.AccountID, id types.BlogID) error {
	if err := appendToList(ctx, m.store, blogsFollowedByAccountKey(account), id); err != nil {
		return err
	}

	if err := appendToList(ctx, m.store, blogFollowersKey(id), account); err != nil {
		return err
	}

	return flagSet(ctx, m.store, blogFollowedByAccountKey(account, id))
}

// RemoveBlogFollower undoes AddBlogFollower.
func (m *FollowModel) RemoveBlogFollower(ctx context.Context, account types.AccountID, id types.BlogID) error {
	if err := removeFromList(ctx, m.store, blogsFollowedByAccountKey(account), id); err != nil {
		return err
	}

	if err := removeFromList(ctx, m.store, blogFollowersKey(id), account); err != nil {
		return err
	}

	return m.store.Remove(ctx, blogFollowedByAccountKey(account, id))
}

// BlogsFollowedByAccount returns the ids of blogs the account follows.
func (m *FollowModel) BlogsFollowedByAccount(ctx context.Context, account types.AccountID) ([]types.BlogID, error) {
	return getList[types.BlogID](ctx, m.store, blogsFollowedByAccountKey(account))
}

// BlogFollowers returns the accounts following the blog.
func (m *FollowModel) BlogFollowers(ctx context.Context, id types.BlogID) ([]types.AccountID, error) {
	return getList[types.AccountID](ctx, m.store, blogFollowersKey(id))
}

// AccountFollowedByAccount reports whether follower follows followed.
func (m *FollowModel) AccountFollowedByAccount(ctx context.Context, follower, followed types.AccountID) (bool, error) {
	return flagExists(ctx, m.store, accountFollowedByAccountKey(follower, followed))
}

// AddAccountFollower records the follow in both adjacency lists and sets
// the membership flag.
func (m *FollowModel) AddAccountFollower(ctx context.Context, follower, followed types.AccountID) error {
	if err := appendToList(ctx, m.store, accountsFollowedByAccountKey(follower), followed); err != nil {
		return err
	}

	if err := appendToList(ctx, m.store, accountFollowersKey(followed), follower); err != nil {
		return err
	}

	return flagSet(ctx, m.store, accountFollowedByAccountKey(follower, followed))
}

// RemoveAccountFollower undoes AddAccountFollower.
func (m *FollowModel) RemoveAccountFollower(ctx context.Context, follower, followed types.AccountID) error {
	if err := removeFromList(ctx, m.store, accountsFollowedByAccountKey(follower), followed); err != nil {
		return err
	}

	if err := removeFromList(ctx, m.store, accountFollowersKey(followed), follower); err != nil {
		return err
	}

	return m.store.Remove(ctx, accountFollowedByAccountKey(follower, followed))
}

// AccountsFollowedByAccount returns the accounts the follower follows.
func (m *FollowModel) AccountsFollowedByAccount(ctx context.Context, follower types.AccountID) ([]types.AccountID, error) {
	return getList[types.AccountID](ctx, m.store, accountsFollowedByAccountKey(follower))
}

// AccountFollowers returns the accounts following the account.
func (m *FollowModel) AccountFollowers(ctx context.Context, followed types.AccountID) ([]types.AccountID, error) {
	return getList[types.AccountID](ctx, m.store, accountFollowersKey(followed))
}

package models

import (
	"context"

	"go.uber.org/zap"

	"github.com/robalyx/blogchain/internal/engine/storage"
	"github.com/robalyx/blogchain/internal/engine/types"
)

// AccountModel handles social account persistence and the username index.
type AccountModel struct {
	store  storage.Store
	logger *zap.Logger
}

// Get returns the social account for the identity.
func (m *AccountModel) Get(ctx context.Context, id types.AccountID) (*types.SocialAccount, error) {
	account, ok, err := getJSON[types.SocialAccount](ctx, m.store, accountKey(id))
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, types.ErrSocialAccountNotFound
	}

	return &account, nil
}

// GetOrNew returns the stored social account, or a fresh one at the
// reputation floor when the identity has no record yet.
func (m *AccountModel) GetOrNew(ctx context.Context, id types.AccountID) (*types.SocialAccount, error) {
	account, ok, err := getJSON[types.SocialAccount](ctx, m.store, accountKey(id))
	if err != nil {
		return nil, err
	}

	if !ok {
		return types.NewSocialAccount(id), nil
	}

	return &account, nil
}

// Save persists the social account.
func (m *AccountModel) Save(ctx context.Context, account *types.SocialAccount) error {
	return setJSON(ctx, m.store, accountKey(account.ID), account)
}

// UsernameTaken reports whether the username is already claimed.
func (m *AccountModel) UsernameTaken(ctx context.Context, username string) (bool, error) {
	return flagExists(ctx, m.store, accountByUsernameKey(username))
}

// SetUsername maps the username to the account identity.
func (m *AccountModel) SetUsername(ctx context.Context, username string, id types.AccountID) error {
	return setJSON(ctx, m.store, accountByUsernameKey(username), id)
}

// RemoveUsername drops the username mapping.
func (m *AccountModel) RemoveUsername(ctx context.Context, username string) error {
	return m.store.Remove(ctx, accountByUsernameKey(username))
}

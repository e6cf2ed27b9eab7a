package service

import (
	"context"

	"github.com/robalyx/blogchain/internal/engine/types"
)

// CreateProfile attaches a public identity to the origin account. Usernames
// are globally unique.
func (e *Engine) CreateProfile(ctx context.Context, origin types.Origin, username, ipfsHash string) error {
	return e.run(ctx, origin, func(ctx context.Context, s *session) error {
		return s.createProfile(ctx, username, ipfsHash)
	})
}

// UpdateProfile applies a partial update to the origin account's profile.
func (e *Engine) UpdateProfile(ctx context.Context, origin types.Origin, update types.ProfileUpdate) error {
	return e.run(ctx, origin, func(ctx context.Context, s *session) error {
		return s.updateProfile(ctx, update)
	})
}

func (s *session) createProfile(ctx context.Context, username, ipfsHash string) error {
	account, err := s.repo.Accounts.GetOrNew(ctx, s.origin.Account)
	if err != nil {
		return err
	}

	if account.Profile != nil {
		return types.ErrProfileAlreadyExists
	}

	if err := s.validateUsername(username); err != nil {
		return err
	}

	if taken, err := s.repo.Accounts.UsernameTaken(ctx, username); err != nil {
		return err
	} else if taken {
		return types.ErrUsernameNotUnique
	}

	if err := s.validateIPFSHash(ipfsHash, s.cfg.Limits.IPFSHashLen); err != nil {
		return err
	}

	account.Profile = &types.Profile{
		Created:  s.origin.Change(),
		Username: username,
		IPFSHash: ipfsHash,
	}

	if err := s.repo.Accounts.SetUsername(ctx, username, account.ID); err != nil {
		return err
	}

	if err := s.repo.Accounts.Save(ctx, account); err != nil {
		return err
	}

	s.record(types.Event{Kind: types.EventProfileCreated})

	return nil
}

func (s *session) updateProfile(ctx context.Context, update types.ProfileUpdate) error {
	if update.IsEmpty() {
		return types.ErrProfileNothingToUpdate
	}

	account, err := s.repo.Accounts.Get(ctx, s.origin.Account)
	if err != nil {
		return err
	}

	if account.Profile == nil {
		return types.ErrProfileNotFound
	}

	profile := account.Profile
	record := types.ProfileHistoryRecord{Edited: s.origin.Change()}
	changed := false

	if update.Username != nil && *update.Username != profile.Username {
		if err := s.validateUsername(*update.Username); err != nil {
			return err
		}

		if taken, err := s.repo.Accounts.UsernameTaken(ctx, *update.Username); err != nil {
			return err
		} else if taken {
			return types.ErrUsernameNotUnique
		}

		if err := s.repo.Accounts.RemoveUsername(ctx, profile.Username); err != nil {
			return err
		}

		if err := s.repo.Accounts.SetUsername(ctx, *update.Username, account.ID); err != nil {
			return err
		}

		old := profile.Username
		record.OldUsername = &old
		profile.Username = *update.Username
		changed = true
	}

	if update.IPFSHash != nil && *update.IPFSHash != profile.IPFSHash {
		if err := s.validateIPFSHash(*update.IPFSHash, s.cfg.Limits.IPFSHashLen); err != nil {
			return err
		}

		old := profile.IPFSHash
		record.OldIPFSHash = &old
		profile.IPFSHash = *update.IPFSHash
		changed = true
	}

	if !changed {
		return types.ErrProfileNothingToUpdate
	}

	updated := s.origin.Change()
	profile.Updated = &updated
	profile.EditHistory = append(profile.EditHistory, record)

	if err := s.repo.Accounts.Save(ctx, account); err != nil {
		return err
	}

	s.record(types.Event{Kind: types.EventProfileUpdated})

	return nil
}

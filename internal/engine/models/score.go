package models

import (
	"context"

	"go.uber.org/zap"

	"github.com/robalyx/blogchain/internal/engine/storage"
	"github.com/robalyx/blogchain/internal/engine/types"
	"github.com/robalyx/blogchain/internal/engine/types/enum"
)

// ScoreModel holds the sparse scoring ledgers. An entry's existence means
// the action's effect is currently applied; reversal deletes the entry.
type ScoreModel struct {
	store  storage.Store
	logger *zap.Logger
}

// PostScoreByAccount returns the diff the account currently has applied to
// the post for the action.
func (m *ScoreModel) PostScoreByAccount(ctx context.Context, account types.AccountID, id types.PostID, action enum.ScoringAction) (int16, bool, error) {
	return getJSON[int16](ctx, m.store, postScoreByAccountKey(account, id, action))
}

// SetPostScoreByAccount records the diff applied by the account to the post.
func (m *ScoreModel) SetPostScoreByAccount(ctx context.Context, account types.AccountID, id types.PostID, action enum.ScoringAction, diff int16) error {
	return setJSON(ctx, m.store, postScoreByAccountKey(account, id, action), diff)
}

// RemovePostScoreByAccount deletes the ledger entry.
func (m *ScoreModel) RemovePostScoreByAccount(ctx context.Context, account types.AccountID, id types.PostID, action enum.ScoringAction) error {
	return m.store.Remove(ctx, postScoreByAccountKey(account, id, action))
}

// CommentScoreByAccount returns the diff the account currently has applied
// to the comment for the action.
func (m *ScoreModel) CommentScoreByAccount(ctx context.Context, account types.AccountID, id types.CommentID, action enum.ScoringAction) (int16, bool, error) {
	return getJSON[int16](ctx, m.store, commentScoreByAccountKey(account, id, action))
}

// SetCommentScoreByAccount records the diff applied by the account to the
// comment.
func (m *ScoreModel) SetCommentScoreByAccount(ctx context.Context, account types.AccountID, id types.CommentID, action enum.ScoringAction, diff int16) error {
	return setJSON(ctx, m.store, commentScoreByAccountKey(account, id, action), diff)
}

// RemoveCommentScoreByAccount deletes the ledger entry.
func (m *ScoreModel) RemoveCommentScoreByAccount(ctx context.Context, account types.AccountID, id types.CommentID, action enum.ScoringAction) error {
	return m.store.Remove(ctx, commentScoreByAccountKey(account, id, action))
}

// ReputationDiff returns the reputation diff the scorer currently has
// applied to the subject for the action.
func (m *ScoreModel) ReputationDiff(ctx context.Context, scorer, subject types.AccountID, action enum.ScoringAction) (int16, bool, error) {
	return getJSON[int16](ctx, m.store, reputationDiffKey(scorer, subject, action))
}

// SetReputationDiff records the reputation diff.
func (m *ScoreModel) SetReputationDiff(ctx context.Context, scorer, subject types.AccountID, action enum.ScoringAction, diff int16) error {
	return setJSON(ctx, m.store, reputationDiffKey(scorer, subject, action), diff)
}

// RemoveReputationDiff deletes the ledger entry.
func (m *ScoreModel) RemoveReputationDiff(ctx context.Context, scorer, subject types.AccountID, action enum.ScoringAction) error {
	return m.store.Remove(ctx, reputationDiffKey(scorer, subject, action))
}

package models

import (
	"context"

	"go.uber.org/zap"

	"github.com/robalyx/blogchain/internal/engine/storage"
	"github.com/robalyx/blogchain/internal/engine/types"
)

// ReactionModel handles reaction persistence and the uniqueness indexes
// that pin one reaction per (account, content) pair.
type ReactionModel struct {
	store  storage.Store
	logger *zap.Logger
}

// Get returns the reaction by id.
func (m *ReactionModel) Get(ctx context.Context, id types.ReactionID) (*types.Reaction, error) {
	reaction, ok, err := getJSON[types.Reaction](ctx, m.store, reactionKey(id))
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, types.ErrReactionNotFound
	}

	return &reaction, nil
}

// Save persists the reaction under its id.
func (m *ReactionModel) Save(ctx context.Context, reaction *types.Reaction) error {
	return setJSON(ctx, m.store, reactionKey(reaction.ID), reaction)
}

// Remove deletes the reaction record.
func (m *ReactionModel) Remove(ctx context.Context, id types.ReactionID) error {
	return m.store.Remove(ctx, reactionKey(id))
}

// AllocateID returns the next reaction id and advances the counter.
func (m *ReactionModel) AllocateID(ctx context.Context) (types.ReactionID, error) {
	id, err := allocateID(ctx, m.store, keyNextReactionID)
	if err != nil {
		return 0, err
	}

	return types.ReactionID(id), nil
}

// AddIDToPost appends the reaction id to the post's reaction list.
func (m *ReactionModel) AddIDToPost(ctx context.Context, postID types.PostID, id types.ReactionID) error {
	return appendToList(ctx, m.store, reactionIDsByPostKey(postID), id)
}

// RemoveIDFromPost removes the reaction id from the post's reaction list.
func (m *ReactionModel) RemoveIDFromPost(ctx context.Context, postID types.PostID, id types.ReactionID) error {
	return removeFromList(ctx, m.store, reactionIDsByPostKey(postID), id)
}

// AddIDToComment appends the reaction id to the comment's reaction list.
func (m *ReactionModel) AddIDToComment(ctx context.Context, commentID types.CommentID, id types.ReactionID) error {
	return appendToList(ctx, m.store, reactionIDsByCommentKey(commentID), id)
}

// RemoveIDFromComment removes the reaction id from the comment's reaction
// list.
func (m *ReactionModel) RemoveIDFromComment(ctx context.Context, commentID types.CommentID, id types.ReactionID) error {
	return removeFromList(ctx, m.store, reactionIDsByCommentKey(commentID), id)
}

// PostReactionByAccount returns the account's reaction id on the post.
func (m *ReactionModel) PostReactionByAccount(ctx context.Context, account types.AccountID, postID types.PostID) (types.ReactionID, bool, error) {
	return getJSON[types.ReactionID](ctx, m.store, postReactionByAccountKey(account, postID))
}

// SetPostReactionByAccount pins the account's reaction id on the post.
func (m *ReactionModel) SetPostReactionByAccount(ctx context.Context, account types.AccountID, postID types.PostID, id types.ReactionID) error {
	return setJSON(ctx, m.store, postReactionByAccountKey(account, postID), id)
}

// RemovePostReactionByAccount unpins the account's reaction on the post.
func (m *ReactionModel) RemovePostReactionByAccount(ctx context.Context, account types.AccountID, postID types.PostID) error {
	return m.store.Remove(ctx, postReactionByAccountKey(account, postID))
}

// CommentReactionByAccount returns the account's reaction id on the comment.
func (m *ReactionModel) CommentReactionByAccount(ctx context.Context, account types.AccountID, commentID types.CommentID) (types.ReactionID, bool, error) {
	return getJSON[types.ReactionID](ctx, m.store, commentReactionByAccountKey(account, commentID))
}

// SetCommentReactionByAccount pins the account's reaction id on the comment.
func (m *ReactionModel) SetCommentReactionByAccount(ctx context.Context, account types.AccountID, commentID types.CommentID, id types.ReactionID) error {
	return setJSON(ctx, m.store, commentReactionByAccountKey(account, commentID), id)
}

// RemoveCommentReactionByAccount unpins the account's reaction on the
// comment.
func (m *ReactionModel) RemoveCommentReactionByAccount(ctx context.Context, account types.AccountID, commentID types.CommentID) error {
	return m.store.Remove(ctx, commentReactionByAccountKey(account, commentID))
}

package models

import (
	"context"

	"go.uber.org/zap"

	"github.com/robalyx/blogchain/internal/engine/storage"
	"github.com/robalyx/blogchain/internal/engine/types"
)

// CommentModel handles comment persistence and the per-post id index.
type CommentModel struct {
	store  storage.Store
	logger *zap.Logger
}

// Get returns the comment by id.
func (m *CommentModel) Get(ctx context.Context, id types.CommentID) (*types.Comment, error) {
	comment, ok, err := getJSON[types.Comment](ctx, m.store, commentKey(id))
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, types.ErrCommentNotFound
	}

	return &comment, nil
}

// Exists reports whether a comment with the id is stored.
func (m *CommentModel) Exists(ctx context.Context, id types.CommentID) (bool, error) {
	return flagExists(ctx, m.store, commentKey(id))
}

// Save persists the comment under its id.
func (m *CommentModel) Save(ctx context.Context, comment *types.Comment) error {
	return setJSON(ctx, m.store, commentKey(comment.ID), comment)
}

// AllocateID returns the next comment id and advances the counter.
func (m *CommentModel) AllocateID(ctx context.Context) (types.CommentID, error) {
	id, err := allocateID(ctx, m.store, keyNextCommentID)
	if err != nil {
		return 0, err
	}

	return types.CommentID(id), nil
}

// IDsByPost returns the ids of comments attached to the post.
func (m *CommentModel) IDsByPost(ctx context.Context, id types.PostID) ([]types.CommentID, error) {
	return getList[types.CommentID](ctx, m.store, commentIDsByPostKey(id))
}

// AddIDToPost appends the comment id to the post's comment list.
func (m *CommentModel) AddIDToPost(ctx context.Context, postID types.PostID, id types.CommentID) error {
	return appendToList(ctx, m.store, commentIDsByPostKey(postID), id)
}

// SharesByAccount returns how many times the account shared the comment.
func (m *CommentModel) SharesByAccount(ctx context.Context, account types.AccountID, id types.CommentID) (uint16, error) {
	count, _, err := getJSON[uint16](ctx, m.store, commentSharesByAccountKey(account, id))
	if err != nil {
		return 0, err
	}

	return count, nil
}

// SetSharesByAccount stores the account's share count for the comment.
func (m *CommentModel) SetSharesByAccount(ctx context.Context, account types.AccountID, id types.CommentID, count uint16) error {
	return setJSON(ctx, m.store, commentSharesByAccountKey(account, id), count)
}

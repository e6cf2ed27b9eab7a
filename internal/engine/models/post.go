package models

import (
	"context"

	"go.uber.org/zap"

	"github.com/robalyx/blogchain/internal/engine/storage"
	"github.com/robalyx/blogchain/internal/engine/types"
)

// PostModel handles post persistence, the per-blog id index and the share
// bookkeeping indexes.
type PostModel struct {
	store  storage.Store
	logger *zap.Logger
}

// Get returns the post by id.
func (m *PostModel) Get(ctx context.Context, id types.PostID) (*types.Post, error) {
	post, ok, err := getJSON[types.Post](ctx, m.store, postKey(id))
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, types.ErrPostNotFound
	}

	return &post, nil
}

// Save persists the post under its id.
func (m *PostModel) Save(ctx context.Context, post *types.Post) error {
	return setJSON(ctx, m.store, postKey(post.ID), post)
}

// AllocateID returns the next post id and advances the counter.
func (m *PostModel) AllocateID(ctx context.Context) (types.PostID, error) {
	id, err := allocateID(ctx, m.store, keyNextPostID)
	if err != nil {
		return 0, err
	}

	return types.PostID(id), nil
}

// IDsByBlog returns the ids of posts belonging to the blog.
func (m *PostModel) IDsByBlog(ctx context.Context, id types.BlogID) ([]types.PostID, error) {
	return getList[types.PostID](ctx, m.store, postIDsByBlogKey(id))
}

// AddIDToBlog appends the post id to the blog's post list.
func (m *PostModel) AddIDToBlog(ctx context.Context, blogID types.BlogID, id types.PostID) error {
	return appendToList(ctx, m.store, postIDsByBlogKey(blogID), id)
}

// RemoveIDFromBlog removes the post id from the blog's post list.
func (m *PostModel) RemoveIDFromBlog(ctx context.Context, blogID types.BlogID, id types.PostID) error {
	return removeFromList(ctx, m.store, postIDsByBlogKey(blogID), id)
}

// AddShareOfPost appends the sharing post's id to the original post's share
// index.
func (m *PostModel) AddShareOfPost(ctx context.Context, original, share types.PostID) error {
	return appendToList(ctx, m.store, sharedPostIDsByPostKey(original), share)
}

// AddShareOfComment appends the sharing post's id to the original comment's
// share index.
func (m *PostModel) AddShareOfComment(ctx context.Context, original types.CommentID, share types.PostID) error {
	return appendToList(ctx, m.store, sharedPostIDsByCommentKey(original), share)
}

// SharesOfPost returns the ids of posts that share the original post.
func (m *PostModel) SharesOfPost(ctx context.Context, original types.PostID) ([]types.PostID, error) {
	return getList[types.PostID](ctx, m.store, sharedPostIDsByPostKey(original))
}

// SharesOfComment returns the ids of posts that share the comment.
func (m *PostModel) SharesOfComment(ctx context.Context, original types.CommentID) ([]types.PostID, error) {
	return getList[types.PostID](ctx, m.store, sharedPostIDsByCommentKey(original))
}

// SharesByAccount returns how many times the account shared the post.
func (m *PostModel) SharesByAccount(ctx context.Context, account types.AccountID, id types.PostID) (uint16, error) {
	count, _, err := getJSON[uint16](ctx, m.store, postSharesByAccountKey(account, id))
	if err != nil {
		return 0, err
	}

	return count, nil
}

// SetSharesByAccount stores the account's share count for the post.
func (m *PostModel) SetSharesByAccount(ctx context.Context, account types.AccountID, id types.PostID, count uint16) error {
	return setJSON(ctx, m.store, postSharesByAccountKey(account, id), count)
}

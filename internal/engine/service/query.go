package service

import (
	"context"

	"github.com/robalyx/blogchain/internal/engine/models"
	"github.com/robalyx/blogchain/internal/engine/types"
)

// reader returns a repository view over the live store, for read-only
// queries outside any operation.
func (e *Engine) reader() *models.Repository {
	return models.New(e.store, e.logger)
}

// Blog returns the blog by id.
func (e *Engine) Blog(ctx context.Context, id types.BlogID) (*types.Blog, error) {
	return e.reader().Blogs.Get(ctx, id)
}

// BlogIDBySlug resolves a slug to its blog id.
func (e *Engine) BlogIDBySlug(ctx context.Context, slug string) (types.BlogID, bool, error) {
	return e.reader().Blogs.IDBySlug(ctx, slug)
}

// BlogIDsByOwner returns the ids of every blog the account created.
func (e *Engine) BlogIDsByOwner(ctx context.Context, owner types.AccountID) ([]types.BlogID, error) {
	return e.reader().Blogs.IDsByOwner(ctx, owner)
}

// NextBlogID returns the id the next created blog will receive.
func (e *Engine) NextBlogID(ctx context.Context) (types.BlogID, error) {
	return e.reader().Blogs.NextID(ctx)
}

// Post returns the post by id.
func (e *Engine) Post(ctx context.Context, id types.PostID) (*types.Post, error) {
	return e.reader().Posts.Get(ctx, id)
}

// PostIDsByBlog returns the ids of every post in the blog.
func (e *Engine) PostIDsByBlog(ctx context.Context, id types.BlogID) ([]types.PostID, error) {
	return e.reader().Posts.IDsByBlog(ctx, id)
}

// SharesOfPost returns the ids of posts that reshare the original post.
func (e *Engine) SharesOfPost(ctx context.Context, id types.PostID) ([]types.PostID, error) {
	return e.reader().Posts.SharesOfPost(ctx, id)
}

// SharesOfComment returns the ids of posts that reshare the comment.
func (e *Engine) SharesOfComment(ctx context.Context, id types.CommentID) ([]types.PostID, error) {
	return e.reader().Posts.SharesOfComment(ctx, id)
}

// Comment returns the comment by id.
func (e *Engine) Comment(ctx context.Context, id types.CommentID) (*types.Comment, error) {
	return e.reader().Comments.Get(ctx, id)
}

// CommentIDsByPost returns the ids of every comment on the post.
func (e *Engine) CommentIDsByPost(ctx context.Context, id types.PostID) ([]types.CommentID, error) {
	return e.reader().Comments.IDsByPost(ctx, id)
}

// Reaction returns the reaction by id.
func (e *Engine) Reaction(ctx context.Context, id types.ReactionID) (*types.Reaction, error) {
	return e.reader().Reactions.Get(ctx, id)
}

// SocialAccount returns the social account record, or a fresh one at the
// reputation floor when the account has never been touched.
func (e *Engine) SocialAccount(ctx context.Context, id types.AccountID) (*types.SocialAccount, error) {
	return e.reader().Accounts.GetOrNew(ctx, id)
}

// BlogsFollowedBy returns the ids of blogs the account follows.
func (e *Engine) BlogsFollowedBy(ctx context.Context, account types.AccountID) ([]types.BlogID, error) {
	return e.reader().Follows.BlogsFollowedByAccount(ctx, account)
}

// BlogFollowers returns the accounts following the blog.
func (e *Engine) BlogFollowers(ctx context.Context, id types.BlogID) ([]types.AccountID, error) {
	return e.reader().Follows.BlogFollowers(ctx, id)
}

// AccountsFollowedBy returns the accounts the follower follows.
func (e *Engine) AccountsFollowedBy(ctx context.Context, follower types.AccountID) ([]types.AccountID, error) {
	return e.reader().Follows.AccountsFollowedByAccount(ctx, follower)
}

// AccountFollowers returns the accounts following the given account.
func (e *Engine) AccountFollowers(ctx context.Context, followed types.AccountID) ([]types.AccountID, error) {
	return e.reader().Follows.AccountFollowers(ctx, followed)
}

package service

import (
	"context"
	"errors"

	"github.com/robalyx/blogchain/internal/engine/types"
	"github.com/robalyx/blogchain/internal/engine/types/enum"
)

// CreatePost publishes a post in the blog. A SharedPost or SharedComment
// extension turns it into a reshare, bumping the original's share counters
// and scoring the first share by this account.
func (e *Engine) CreatePost(ctx context.Context, origin types.Origin, blogID types.BlogID, ipfsHash string, extension types.PostExtension) (types.PostID, error) {
	var postID types.PostID

	err := e.run(ctx, origin, func(ctx context.Context, s *session) error {
		var err error
		postID, err = s.createPost(ctx, blogID, ipfsHash, extension)
		return err
	})

	return postID, err
}

// UpdatePost applies a partial update to a post created by the origin
// account. Changing the blog relocates the post between blog indexes.
func (e *Engine) UpdatePost(ctx context.Context, origin types.Origin, postID types.PostID, update types.PostUpdate) error {
	return e.run(ctx, origin, func(ctx context.Context, s *session) error {
		return s.updatePost(ctx, postID, update)
	})
}

func (s *session) createPost(ctx context.Context, blogID types.BlogID, ipfsHash string, extension types.PostExtension) (types.PostID, error) {
	blog, err := s.repo.Blogs.Get(ctx, blogID)
	if err != nil {
		return 0, err
	}

	if err := s.validateIPFSHash(ipfsHash, s.cfg.Limits.PostMaxLen); err != nil {
		return 0, err
	}

	postID, err := s.repo.Posts.AllocateID(ctx)
	if err != nil {
		return 0, err
	}

	post := &types.Post{
		ID:        postID,
		BlogID:    blogID,
		Created:   s.origin.Change(),
		Extension: extension,
		IPFSHash:  ipfsHash,
	}

	blog.PostsCount, err = types.AddCounter(blog.PostsCount, 1)
	if err != nil {
		return 0, err
	}

	if err := s.repo.Posts.Save(ctx, post); err != nil {
		return 0, err
	}

	if err := s.repo.Posts.AddIDToBlog(ctx, blogID, postID); err != nil {
		return 0, err
	}

	if err := s.repo.Blogs.Save(ctx, blog); err != nil {
		return 0, err
	}

	switch extension.Kind {
	case enum.PostExtensionKindSharedPost:
		if err := s.sharePost(ctx, extension.OriginalPostID, postID); err != nil {
			return 0, err
		}
	case enum.PostExtensionKindSharedComment:
		if err := s.shareComment(ctx, extension.OriginalCommentID, postID); err != nil {
			return 0, err
		}
	case enum.PostExtensionKindRegular:
	}

	s.record(types.Event{Kind: types.EventPostCreated, PostID: postID, BlogID: blogID})

	return postID, nil
}

// sharePost records a reshare of the original post. Only the account's first
// share of a given post scores it.
func (s *session) sharePost(ctx context.Context, originalID, shareID types.PostID) error {
	account := s.origin.Account

	original, err := s.repo.Posts.Get(ctx, originalID)
	if err != nil {
		if errors.Is(err, types.ErrPostNotFound) {
			return types.ErrOriginalPostNotFound
		}
		return err
	}

	if !original.IsRegular() {
		return types.ErrCannotShareSharedPost
	}

	original.SharesCount, err = types.AddCounter(original.SharesCount, 1)
	if err != nil {
		return err
	}

	count, err := s.repo.Posts.SharesByAccount(ctx, account, originalID)
	if err != nil {
		return err
	}

	nextCount, err := types.AddCounter(count, 1)
	if err != nil {
		return err
	}

	if err := s.repo.Posts.SetSharesByAccount(ctx, account, originalID, nextCount); err != nil {
		return err
	}

	if err := s.repo.Posts.AddShareOfPost(ctx, originalID, shareID); err != nil {
		return err
	}

	if count == 0 && !original.IsOwner(account) {
		// changePostScore persists the original with the bumped counter.
		if err := s.changePostScore(ctx, account, original, enum.ScoringActionSharePost); err != nil {
			return err
		}
	} else if err := s.repo.Posts.Save(ctx, original); err != nil {
		return err
	}

	s.record(types.Event{Kind: types.EventPostShared, PostID: originalID})

	return nil
}

// shareComment records a reshare of a comment as a new post.
func (s *session) shareComment(ctx context.Context, originalID types.CommentID, shareID types.PostID) error {
	account := s.origin.Account

	comment, err := s.repo.Comments.Get(ctx, originalID)
	if err != nil {
		return err
	}

	comment.SharesCount, err = types.AddCounter(comment.SharesCount, 1)
	if err != nil {
		return err
	}

	count, err := s.repo.Comments.SharesByAccount(ctx, account, originalID)
	if err != nil {
		return err
	}

	nextCount, err := types.AddCounter(count, 1)
	if err != nil {
		return err
	}

	if err := s.repo.Comments.SetSharesByAccount(ctx, account, originalID, nextCount); err != nil {
		return err
	}

	if err := s.repo.Posts.AddShareOfComment(ctx, originalID, shareID); err != nil {
		return err
	}

	if count == 0 && !comment.IsAuthor(account) {
		if err := s.changeCommentScore(ctx, account, comment, enum.ScoringActionShareComment); err != nil {
			return err
		}
	} else if err := s.repo.Comments.Save(ctx, comment); err != nil {
		return err
	}

	s.record(types.Event{Kind: types.EventCommentShared, CommentID: originalID})

	return nil
}

func (s *session) updatePost(ctx context.Context, postID types.PostID, update types.PostUpdate) error {
	if update.IsEmpty() {
		return types.ErrPostNothingToUpdate
	}

	post, err := s.repo.Posts.Get(ctx, postID)
	if err != nil {
		return err
	}

	if !post.IsOwner(s.origin.Account) {
		return types.ErrNotPostOwner
	}

	record := types.PostHistoryRecord{Edited: s.origin.Change()}
	changed := false

	if update.IPFSHash != nil && *update.IPFSHash != post.IPFSHash {
		if err := s.validateIPFSHash(*update.IPFSHash, s.cfg.Limits.PostMaxLen); err != nil {
			return err
		}

		old := post.IPFSHash
		record.OldIPFSHash = &old
		post.IPFSHash = *update.IPFSHash
		changed = true
	}

	if update.BlogID != nil && *update.BlogID != post.BlogID {
		if err := s.relocatePost(ctx, post, *update.BlogID); err != nil {
			return err
		}

		old := post.BlogID
		record.OldBlogID = &old
		post.BlogID = *update.BlogID
		changed = true
	}

	if !changed {
		return types.ErrPostNothingToUpdate
	}

	updated := s.origin.Change()
	post.Updated = &updated
	post.EditHistory = append(post.EditHistory, record)

	if err := s.repo.Posts.Save(ctx, post); err != nil {
		return err
	}

	s.record(types.Event{Kind: types.EventPostUpdated, PostID: postID})

	return nil
}

// relocatePost moves the post between blog indexes and adjusts both blogs'
// post counters.
func (s *session) relocatePost(ctx context.Context, post *types.Post, to types.BlogID) error {
	oldBlog, err := s.repo.Blogs.Get(ctx, post.BlogID)
	if err != nil {
		return err
	}

	newBlog, err := s.repo.Blogs.Get(ctx, to)
	if err != nil {
		return err
	}

	oldBlog.PostsCount, err = types.SubCounter(oldBlog.PostsCount, 1)
	if err != nil {
		return err
	}

	newBlog.PostsCount, err = types.AddCounter(newBlog.PostsCount, 1)
	if err != nil {
		return err
	}

	if err := s.repo.Posts.RemoveIDFromBlog(ctx, post.BlogID, post.ID); err != nil {
		return err
	}

	if err := s.repo.Posts.AddIDToBlog(ctx, to, post.ID); err != nil {
		return err
	}

	if err := s.repo.Blogs.Save(ctx, oldBlog); err != nil {
		return err
	}

	return s.repo.Blogs.Save(ctx, newBlog)
}

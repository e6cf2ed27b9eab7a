package service

import (
	"context"
	"slices"

	"github.com/robalyx/blogchain/internal/engine/types"
	"github.com/robalyx/blogchain/internal/engine/types/enum"
)

// CreateBlog registers a new blog under the origin account. The creator
// automatically follows their own blog.
func (e *Engine) CreateBlog(ctx context.Context, origin types.Origin, slug, ipfsHash string) (types.BlogID, error) {
	var blogID types.BlogID

	err := e.run(ctx, origin, func(ctx context.Context, s *session) error {
		var err error
		blogID, err = s.createBlog(ctx, slug, ipfsHash)
		return err
	})

	return blogID, err
}

// UpdateBlog applies a partial update to a blog owned by the origin account.
func (e *Engine) UpdateBlog(ctx context.Context, origin types.Origin, blogID types.BlogID, update types.BlogUpdate) error {
	return e.run(ctx, origin, func(ctx context.Context, s *session) error {
		return s.updateBlog(ctx, blogID, update)
	})
}

func (s *session) createBlog(ctx context.Context, slug, ipfsHash string) (types.BlogID, error) {
	if err := s.validateSlug(slug); err != nil {
		return 0, err
	}

	if taken, err := s.repo.Blogs.SlugTaken(ctx, slug); err != nil {
		return 0, err
	} else if taken {
		return 0, types.ErrBlogSlugNotUnique
	}

	if err := s.validateIPFSHash(ipfsHash, s.cfg.Limits.BlogMaxLen); err != nil {
		return 0, err
	}

	blogID, err := s.repo.Blogs.AllocateID(ctx)
	if err != nil {
		return 0, err
	}

	blog := &types.Blog{
		ID:       blogID,
		Created:  s.origin.Change(),
		Writers:  []types.AccountID{},
		Slug:     slug,
		IPFSHash: ipfsHash,
	}

	if err := s.repo.Blogs.SetSlug(ctx, slug, blogID); err != nil {
		return 0, err
	}

	if err := s.repo.Blogs.AddIDToOwner(ctx, s.origin.Account, blogID); err != nil {
		return 0, err
	}

	// The creator follows their own blog, without scoring it.
	if err := s.addBlogFollower(ctx, s.origin.Account, blog); err != nil {
		return 0, err
	}

	s.record(types.Event{Kind: types.EventBlogCreated, BlogID: blogID})

	return blogID, nil
}

func (s *session) updateBlog(ctx context.Context, blogID types.BlogID, update types.BlogUpdate) error {
	if update.IsEmpty() {
		return types.ErrBlogNothingToUpdate
	}

	blog, err := s.repo.Blogs.Get(ctx, blogID)
	if err != nil {
		return err
	}

	if !blog.IsOwner(s.origin.Account) {
		return types.ErrNotBlogOwner
	}

	record := types.BlogHistoryRecord{Edited: s.origin.Change()}
	changed := false

	if update.Writers != nil && !slices.Equal(*update.Writers, blog.Writers) {
		old := blog.Writers
		record.OldWriters = &old
		blog.Writers = *update.Writers
		changed = true
	}

	if update.Slug != nil && *update.Slug != blog.Slug {
		if err := s.validateSlug(*update.Slug); err != nil {
			return err
		}

		if taken, err := s.repo.Blogs.SlugTaken(ctx, *update.Slug); err != nil {
			return err
		} else if taken {
			return types.ErrBlogSlugNotUnique
		}

		if err := s.repo.Blogs.RemoveSlug(ctx, blog.Slug); err != nil {
			return err
		}

		if err := s.repo.Blogs.SetSlug(ctx, *update.Slug, blogID); err != nil {
			return err
		}

		old := blog.Slug
		record.OldSlug = &old
		blog.Slug = *update.Slug
		changed = true
	}

	if update.IPFSHash != nil && *update.IPFSHash != blog.IPFSHash {
		if err := s.validateIPFSHash(*update.IPFSHash, s.cfg.Limits.BlogMaxLen); err != nil {
			return err
		}

		old := blog.IPFSHash
		record.OldIPFSHash = &old
		blog.IPFSHash = *update.IPFSHash
		changed = true
	}

	if !changed {
		return types.ErrBlogNothingToUpdate
	}

	updated := s.origin.Change()
	blog.Updated = &updated
	blog.EditHistory = append(blog.EditHistory, record)

	if err := s.repo.Blogs.Save(ctx, blog); err != nil {
		return err
	}

	s.record(types.Event{Kind: types.EventBlogUpdated, BlogID: blogID})

	return nil
}

// addBlogFollower links the follower to the blog, adjusts both counters and,
// for a foreign blog, scores the follow. It saves both the blog and the
// follower's social account.
func (s *session) addBlogFollower(ctx context.Context, follower types.AccountID, blog *types.Blog) error {
	account, err := s.repo.Accounts.GetOrNew(ctx, follower)
	if err != nil {
		return err
	}

	account.FollowingBlogsCount, err = types.AddCounter(account.FollowingBlogsCount, 1)
	if err != nil {
		return err
	}

	blog.FollowersCount, err = types.AddCounter(blog.FollowersCount, 1)
	if err != nil {
		return err
	}

	if err := s.repo.Accounts.Save(ctx, account); err != nil {
		return err
	}

	if err := s.repo.Follows.AddBlogFollower(ctx, follower, blog.ID); err != nil {
		return err
	}

	if !blog.IsOwner(follower) {
		diff, err := s.scoreDiff(account.Reputation, enum.ScoringActionFollowBlog)
		if err != nil {
			return err
		}

		blog.Score, err = types.AddScore(blog.Score, diff)
		if err != nil {
			return err
		}

		if err := s.changeAccountReputation(ctx, blog.Created.Account, follower, diff, enum.ScoringActionFollowBlog); err != nil {
			return err
		}
	}

	if err := s.repo.Blogs.Save(ctx, blog); err != nil {
		return err
	}

	s.record(types.Event{Kind: types.EventBlogFollowed, BlogID: blog.ID})

	return nil
}

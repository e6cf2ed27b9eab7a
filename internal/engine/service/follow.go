package service

import (
	"context"
	"errors"

	"github.com/robalyx/blogchain/internal/engine/types"
	"github.com/robalyx/blogchain/internal/engine/types/enum"
)

// FollowBlog makes the origin account a follower of the blog. Following a
// foreign blog scores it and rewards the blog owner.
func (e *Engine) FollowBlog(ctx context.Context, origin types.Origin, blogID types.BlogID) error {
	return e.run(ctx, origin, func(ctx context.Context, s *session) error {
		return s.followBlog(ctx, blogID)
	})
}

// UnfollowBlog removes the origin account from the blog's followers and
// reverses the follow's recorded score effects.
func (e *Engine) UnfollowBlog(ctx context.Context, origin types.Origin, blogID types.BlogID) error {
	return e.run(ctx, origin, func(ctx context.Context, s *session) error {
		return s.unfollowBlog(ctx, blogID)
	})
}

// FollowAccount makes the origin account a follower of another account,
// rewarding the followed account's reputation.
func (e *Engine) FollowAccount(ctx context.Context, origin types.Origin, followed types.AccountID) error {
	return e.run(ctx, origin, func(ctx context.Context, s *session) error {
		return s.followAccount(ctx, followed)
	})
}

// UnfollowAccount reverses a previous FollowAccount.
func (e *Engine) UnfollowAccount(ctx context.Context, origin types.Origin, followed types.AccountID) error {
	return e.run(ctx, origin, func(ctx context.Context, s *session) error {
		return s.unfollowAccount(ctx, followed)
	})
}

func (s *session) followBlog(ctx context.Context, blogID types.BlogID) error {
	blog, err := s.repo.Blogs.Get(ctx, blogID)
	if err != nil {
		return err
	}

	if followed, err := s.repo.Follows.BlogFollowedByAccount(ctx, s.origin.Account, blogID); err != nil {
		return err
	} else if followed {
		return types.ErrBlogFollowed
	}

	return s.addBlogFollower(ctx, s.origin.Account, blog)
}

func (s *session) unfollowBlog(ctx context.Context, blogID types.BlogID) error {
	follower := s.origin.Account

	blog, err := s.repo.Blogs.Get(ctx, blogID)
	if err != nil {
		return err
	}

	if followed, err := s.repo.Follows.BlogFollowedByAccount(ctx, follower, blogID); err != nil {
		return err
	} else if !followed {
		return types.ErrBlogNotFollowed
	}

	account, err := s.repo.Accounts.GetOrNew(ctx, follower)
	if err != nil {
		return err
	}

	account.FollowingBlogsCount, err = types.SubCounter(account.FollowingBlogsCount, 1)
	if err != nil {
		return err
	}

	blog.FollowersCount, err = types.SubCounter(blog.FollowersCount, 1)
	if err != nil {
		return err
	}

	if err := s.repo.Accounts.Save(ctx, account); err != nil {
		return err
	}

	if err := s.repo.Follows.RemoveBlogFollower(ctx, follower, blogID); err != nil {
		return err
	}

	if !blog.IsOwner(follower) {
		diff, ok, err := s.repo.Scores.ReputationDiff(ctx, follower, blog.Created.Account, enum.ScoringActionFollowBlog)
		if err != nil {
			return err
		}

		if !ok {
			return types.ErrReputationDiffNotFound
		}

		blog.Score, err = types.SubScore(blog.Score, diff)
		if err != nil {
			return err
		}

		if err := s.changeAccountReputation(ctx, blog.Created.Account, follower, -diff, enum.ScoringActionFollowBlog); err != nil {
			return err
		}
	}

	if err := s.repo.Blogs.Save(ctx, blog); err != nil {
		return err
	}

	s.record(types.Event{Kind: types.EventBlogUnfollowed, BlogID: blogID})

	return nil
}

func (s *session) followAccount(ctx context.Context, followed types.AccountID) error {
	follower := s.origin.Account

	if follower == followed {
		return types.ErrAccountFollowedItself
	}

	if following, err := s.repo.Follows.AccountFollowedByAccount(ctx, follower, followed); err != nil {
		return err
	} else if following {
		return types.ErrAccountAlreadyFollowed
	}

	followerAccount, err := s.repo.Accounts.GetOrNew(ctx, follower)
	if err != nil {
		return err
	}

	followerAccount.FollowingAccountsCount, err = types.AddCounter(followerAccount.FollowingAccountsCount, 1)
	if err != nil {
		return err
	}

	followedAccount, err := s.repo.Accounts.GetOrNew(ctx, followed)
	if err != nil {
		return err
	}

	followedAccount.FollowersCount, err = types.AddCounter(followedAccount.FollowersCount, 1)
	if err != nil {
		return err
	}

	if err := s.repo.Accounts.Save(ctx, followerAccount); err != nil {
		return err
	}

	if err := s.repo.Accounts.Save(ctx, followedAccount); err != nil {
		return err
	}

	diff, err := s.scoreDiff(followerAccount.Reputation, enum.ScoringActionFollowAccount)
	if err != nil {
		return err
	}

	if err := s.changeAccountReputation(ctx, followed, follower, diff, enum.ScoringActionFollowAccount); err != nil {
		return err
	}

	if err := s.repo.Follows.AddAccountFollower(ctx, follower, followed); err != nil {
		return err
	}

	s.record(types.Event{Kind: types.EventAccountFollowed, Target: followed})

	return nil
}

func (s *session) unfollowAccount(ctx context.Context, followed types.AccountID) error {
	follower := s.origin.Account

	if follower == followed {
		return types.ErrAccountFollowedItself
	}

	if following, err := s.repo.Follows.AccountFollowedByAccount(ctx, follower, followed); err != nil {
		return err
	} else if !following {
		return types.ErrAccountNotFollowed
	}

	followerAccount, err := s.repo.Accounts.Get(ctx, follower)
	if err != nil {
		if errors.Is(err, types.ErrSocialAccountNotFound) {
			return types.ErrFollowerAccountNotFound
		}
		return err
	}

	followedAccount, err := s.repo.Accounts.Get(ctx, followed)
	if err != nil {
		if errors.Is(err, types.ErrSocialAccountNotFound) {
			return types.ErrFollowedAccountNotFound
		}
		return err
	}

	followerAccount.FollowingAccountsCount, err = types.SubCounter(followerAccount.FollowingAccountsCount, 1)
	if err != nil {
		return err
	}

	followedAccount.FollowersCount, err = types.SubCounter(followedAccount.FollowersCount, 1)
	if err != nil {
		return err
	}

	if err := s.repo.Accounts.Save(ctx, followerAccount); err != nil {
		return err
	}

	if err := s.repo.Accounts.Save(ctx, followedAccount); err != nil {
		return err
	}

	diff, ok, err := s.repo.Scores.ReputationDiff(ctx, follower, followed, enum.ScoringActionFollowAccount)
	if err != nil {
		return err
	}

	if !ok {
		return types.ErrReputationDiffNotFound
	}

	if err := s.changeAccountReputation(ctx, followed, follower, -diff, enum.ScoringActionFollowAccount); err != nil {
		return err
	}

	if err := s.repo.Follows.RemoveAccountFollower(ctx, follower, followed); err != nil {
		return err
	}

	s.record(types.Event{Kind: types.EventAccountUnfollowed, Target: followed})

	return nil
}

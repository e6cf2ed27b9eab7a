package service

import (
	"context"
	"math"
	"math/bits"

	"github.com/robalyx/blogchain/internal/engine/types"
	"github.com/robalyx/blogchain/internal/engine/types/enum"
)

// scoreDiff computes the reputation-weighted score swing of one action.
// Influence grows logarithmically: each doubling of reputation adds one to
// the base multiplier, with the fractional excess above the power-of-two
// floor contributing in hundredths.
func (s *session) scoreDiff(reputation uint32, action enum.ScoringAction) (int16, error) {
	if reputation < types.MinReputation {
		reputation = types.MinReputation
	}

	r := uint64(bits.Len32(reputation) - 1)
	floor := uint64(1) << r
	d := (uint64(reputation) - floor) * 100 / floor
	base := ((r+1)*100 + d) / 100

	product := int64(base) * int64(s.cfg.Weights.Of(action))
	if product > math.MaxInt16 || product < math.MinInt16 {
		return 0, types.ErrScoreOverflow
	}

	return int16(product), nil
}

// oppositeVote returns the conflicting vote action, if the action is a vote.
func oppositeVote(action enum.ScoringAction) (enum.ScoringAction, bool) {
	switch action {
	case enum.ScoringActionUpvotePost:
		return enum.ScoringActionDownvotePost, true
	case enum.ScoringActionDownvotePost:
		return enum.ScoringActionUpvotePost, true
	case enum.ScoringActionUpvoteComment:
		return enum.ScoringActionDownvoteComment, true
	case enum.ScoringActionDownvoteComment:
		return enum.ScoringActionUpvoteComment, true
	default:
		return 0, false
	}
}

// changePostScore applies (or, when a ledger entry already exists, reverses)
// the account's action on the post. It persists the post when it touches it.
func (s *session) changePostScore(ctx context.Context, account types.AccountID, post *types.Post, action enum.ScoringAction) error {
	// Self-scoring is a no-op.
	if post.IsOwner(account) {
		return nil
	}

	if diff, ok, err := s.repo.Scores.PostScoreByAccount(ctx, account, post.ID, action); err != nil {
		return err
	} else if ok {
		return s.reversePostScore(ctx, account, post, action, diff)
	}

	// A conflicting vote is reversed before the new one is applied, so the
	// ledger never holds both directions for one (account, post) pair.
	if opposite, isVote := oppositeVote(action); isVote {
		if diff, ok, err := s.repo.Scores.PostScoreByAccount(ctx, account, post.ID, opposite); err != nil {
			return err
		} else if ok {
			if err := s.reversePostScore(ctx, account, post, opposite, diff); err != nil {
				return err
			}
		}
	}

	scorer, err := s.repo.Accounts.GetOrNew(ctx, account)
	if err != nil {
		return err
	}

	diff, err := s.scoreDiff(scorer.Reputation, action)
	if err != nil {
		return err
	}

	post.Score, err = types.AddScore(post.Score, diff)
	if err != nil {
		return err
	}

	if err := s.changeAccountReputation(ctx, post.Created.Account, account, diff, action); err != nil {
		return err
	}

	if err := s.repo.Scores.SetPostScoreByAccount(ctx, account, post.ID, action, diff); err != nil {
		return err
	}

	return s.repo.Posts.Save(ctx, post)
}

// reversePostScore undoes a previously applied action using the recorded
// diffs, never recomputing them.
func (s *session) reversePostScore(ctx context.Context, account types.AccountID, post *types.Post, action enum.ScoringAction, diff int16) error {
	var err error

	post.Score, err = types.SubScore(post.Score, diff)
	if err != nil {
		return err
	}

	repDiff, ok, err := s.repo.Scores.ReputationDiff(ctx, account, post.Created.Account, action)
	if err != nil {
		return err
	}

	if !ok {
		return types.ErrReputationDiffNotFound
	}

	if err := s.changeAccountReputation(ctx, post.Created.Account, account, -repDiff, action); err != nil {
		return err
	}

	if err := s.repo.Scores.RemovePostScoreByAccount(ctx, account, post.ID, action); err != nil {
		return err
	}

	return s.repo.Posts.Save(ctx, post)
}

// changeCommentScore applies or reverses the account's action on the
// comment. A first application of CreateComment also propagates a score
// change to the comment's post.
func (s *session) changeCommentScore(ctx context.Context, account types.AccountID, comment *types.Comment, action enum.ScoringAction) error {
	// Self-scoring is a no-op.
	if comment.IsAuthor(account) {
		return nil
	}

	if diff, ok, err := s.repo.Scores.CommentScoreByAccount(ctx, account, comment.ID, action); err != nil {
		return err
	} else if ok {
		return s.reverseCommentScore(ctx, account, comment, action, diff)
	}

	if opposite, isVote := oppositeVote(action); isVote {
		if diff, ok, err := s.repo.Scores.CommentScoreByAccount(ctx, account, comment.ID, opposite); err != nil {
			return err
		} else if ok {
			if err := s.reverseCommentScore(ctx, account, comment, opposite, diff); err != nil {
				return err
			}
		}
	}

	if action == enum.ScoringActionCreateComment {
		post, err := s.repo.Posts.Get(ctx, comment.PostID)
		if err != nil {
			return err
		}

		if err := s.changePostScore(ctx, account, post, action); err != nil {
			return err
		}
	}

	scorer, err := s.repo.Accounts.GetOrNew(ctx, account)
	if err != nil {
		return err
	}

	diff, err := s.scoreDiff(scorer.Reputation, action)
	if err != nil {
		return err
	}

	comment.Score, err = types.AddScore(comment.Score, diff)
	if err != nil {
		return err
	}

	if err := s.changeAccountReputation(ctx, comment.Created.Account, account, diff, action); err != nil {
		return err
	}

	if err := s.repo.Scores.SetCommentScoreByAccount(ctx, account, comment.ID, action, diff); err != nil {
		return err
	}

	return s.repo.Comments.Save(ctx, comment)
}

// reverseCommentScore undoes a previously applied action using the recorded
// diffs.
func (s *session) reverseCommentScore(ctx context.Context, account types.AccountID, comment *types.Comment, action enum.ScoringAction, diff int16) error {
	var err error

	comment.Score, err = types.SubScore(comment.Score, diff)
	if err != nil {
		return err
	}

	repDiff, ok, err := s.repo.Scores.ReputationDiff(ctx, account, comment.Created.Account, action)
	if err != nil {
		return err
	}

	if !ok {
		return types.ErrReputationDiffNotFound
	}

	if err := s.changeAccountReputation(ctx, comment.Created.Account, account, -repDiff, action); err != nil {
		return err
	}

	if err := s.repo.Scores.RemoveCommentScoreByAccount(ctx, account, comment.ID, action); err != nil {
		return err
	}

	return s.repo.Comments.Save(ctx, comment)
}

// changeAccountReputation applies a reputation diff from scorer to subject
// and toggles the reputation-diff ledger entry: inserting it on first
// application, removing it when the call reverses an earlier one. The
// recorded diff is what was actually applied, which is zero when the floor
// clamp engages.
func (s *session) changeAccountReputation(ctx context.Context, subject, scorer types.AccountID, diff int16, action enum.ScoringAction) error {
	account, err := s.repo.Accounts.GetOrNew(ctx, subject)
	if err != nil {
		return err
	}

	applied := diff
	if int64(account.Reputation)+int64(diff) <= int64(types.MinReputation) {
		account.Reputation = types.MinReputation
		applied = 0
	} else if applied < 0 {
		account.Reputation, err = types.SubCounter(account.Reputation, uint32(-applied))
		if err != nil {
			return err
		}
	} else {
		account.Reputation, err = types.AddCounter(account.Reputation, uint32(applied))
		if err != nil {
			return err
		}
	}

	if err := s.repo.Accounts.Save(ctx, account); err != nil {
		return err
	}

	_, exists, err := s.repo.Scores.ReputationDiff(ctx, scorer, subject, action)
	if err != nil {
		return err
	}

	if exists {
		if err := s.repo.Scores.RemoveReputationDiff(ctx, scorer, subject, action); err != nil {
			return err
		}
	} else {
		if err := s.repo.Scores.SetReputationDiff(ctx, scorer, subject, action, applied); err != nil {
			return err
		}
	}

	s.record(types.Event{
		Kind:       types.EventReputationChanged,
		Account:    subject,
		Action:     action,
		Reputation: account.Reputation,
	})

	return nil
}

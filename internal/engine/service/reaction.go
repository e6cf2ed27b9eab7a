package service

import (
	"context"

	"github.com/robalyx/blogchain/internal/engine/types"
	"github.com/robalyx/blogchain/internal/engine/types/enum"
)

// CreatePostReaction records the origin account's vote on a post. One
// reaction per account per post.
func (e *Engine) CreatePostReaction(ctx context.Context, origin types.Origin, postID types.PostID, kind enum.ReactionKind) (types.ReactionID, error) {
	var reactionID types.ReactionID

	err := e.run(ctx, origin, func(ctx context.Context, s *session) error {
		var err error
		reactionID, err = s.createPostReaction(ctx, postID, kind)
		return err
	})

	return reactionID, err
}

// UpdatePostReaction flips the origin account's existing vote on a post to
// the other kind.
func (e *Engine) UpdatePostReaction(ctx context.Context, origin types.Origin, postID types.PostID, reactionID types.ReactionID, kind enum.ReactionKind) error {
	return e.run(ctx, origin, func(ctx context.Context, s *session) error {
		return s.updatePostReaction(ctx, postID, reactionID, kind)
	})
}

// DeletePostReaction withdraws the origin account's vote on a post and
// reverses its score effects.
func (e *Engine) DeletePostReaction(ctx context.Context, origin types.Origin, postID types.PostID, reactionID types.ReactionID) error {
	return e.run(ctx, origin, func(ctx context.Context, s *session) error {
		return s.deletePostReaction(ctx, postID, reactionID)
	})
}

// CreateCommentReaction records the origin account's vote on a comment.
func (e *Engine) CreateCommentReaction(ctx context.Context, origin types.Origin, commentID types.CommentID, kind enum.ReactionKind) (types.ReactionID, error) {
	var reactionID types.ReactionID

	err := e.run(ctx, origin, func(ctx context.Context, s *session) error {
		var err error
		reactionID, err = s.createCommentReaction(ctx, commentID, kind)
		return err
	})

	return reactionID, err
}

// UpdateCommentReaction flips the origin account's existing vote on a
// comment to the other kind.
func (e *Engine) UpdateCommentReaction(ctx context.Context, origin types.Origin, commentID types.CommentID, reactionID types.ReactionID, kind enum.ReactionKind) error {
	return e.run(ctx, origin, func(ctx context.Context, s *session) error {
		return s.updateCommentReaction(ctx, commentID, reactionID, kind)
	})
}

// DeleteCommentReaction withdraws the origin account's vote on a comment.
func (e *Engine) DeleteCommentReaction(ctx context.Context, origin types.Origin, commentID types.CommentID, reactionID types.ReactionID) error {
	return e.run(ctx, origin, func(ctx context.Context, s *session) error {
		return s.deleteCommentReaction(ctx, commentID, reactionID)
	})
}

func postVoteAction(kind enum.ReactionKind) enum.ScoringAction {
	if kind == enum.ReactionKindUpvote {
		return enum.ScoringActionUpvotePost
	}
	return enum.ScoringActionDownvotePost
}

func commentVoteAction(kind enum.ReactionKind) enum.ScoringAction {
	if kind == enum.ReactionKindUpvote {
		return enum.ScoringActionUpvoteComment
	}
	return enum.ScoringActionDownvoteComment
}

func (s *session) createPostReaction(ctx context.Context, postID types.PostID, kind enum.ReactionKind) (types.ReactionID, error) {
	account := s.origin.Account

	post, err := s.repo.Posts.Get(ctx, postID)
	if err != nil {
		return 0, err
	}

	if _, reacted, err := s.repo.Reactions.PostReactionByAccount(ctx, account, postID); err != nil {
		return 0, err
	} else if reacted {
		return 0, types.ErrAlreadyReacted
	}

	reactionID, err := s.repo.Reactions.AllocateID(ctx)
	if err != nil {
		return 0, err
	}

	reaction := &types.Reaction{
		ID:      reactionID,
		Created: s.origin.Change(),
		Kind:    kind,
	}

	if err := s.repo.Reactions.Save(ctx, reaction); err != nil {
		return 0, err
	}

	if err := s.repo.Reactions.AddIDToPost(ctx, postID, reactionID); err != nil {
		return 0, err
	}

	if err := s.repo.Reactions.SetPostReactionByAccount(ctx, account, postID, reactionID); err != nil {
		return 0, err
	}

	if kind == enum.ReactionKindUpvote {
		post.UpvotesCount, err = types.AddCounter(post.UpvotesCount, 1)
	} else {
		post.DownvotesCount, err = types.AddCounter(post.DownvotesCount, 1)
	}
	if err != nil {
		return 0, err
	}

	if err := s.repo.Posts.Save(ctx, post); err != nil {
		return 0, err
	}

	if err := s.changePostScore(ctx, account, post, postVoteAction(kind)); err != nil {
		return 0, err
	}

	s.record(types.Event{Kind: types.EventPostReactionCreated, ReactionID: reactionID, PostID: postID})

	return reactionID, nil
}

func (s *session) updatePostReaction(ctx context.Context, postID types.PostID, reactionID types.ReactionID, kind enum.ReactionKind) error {
	account := s.origin.Account

	post, err := s.repo.Posts.Get(ctx, postID)
	if err != nil {
		return err
	}

	reaction, err := s.reactionByAccount(ctx, reactionID, func() (types.ReactionID, bool, error) {
		return s.repo.Reactions.PostReactionByAccount(ctx, account, postID)
	})
	if err != nil {
		return err
	}

	if reaction.Kind == kind {
		return types.ErrSameReactionKind
	}

	if kind == enum.ReactionKindUpvote {
		post.DownvotesCount, err = types.SubCounter(post.DownvotesCount, 1)
		if err == nil {
			post.UpvotesCount, err = types.AddCounter(post.UpvotesCount, 1)
		}
	} else {
		post.UpvotesCount, err = types.SubCounter(post.UpvotesCount, 1)
		if err == nil {
			post.DownvotesCount, err = types.AddCounter(post.DownvotesCount, 1)
		}
	}
	if err != nil {
		return err
	}

	if err := s.repo.Posts.Save(ctx, post); err != nil {
		return err
	}

	// Applying the new vote reverses the recorded opposite vote first, so a
	// single call leaves score and reputation as if only the new vote ever
	// happened.
	if err := s.changePostScore(ctx, account, post, postVoteAction(kind)); err != nil {
		return err
	}

	updated := s.origin.Change()
	reaction.Kind = kind
	reaction.Updated = &updated

	if err := s.repo.Reactions.Save(ctx, reaction); err != nil {
		return err
	}

	s.record(types.Event{Kind: types.EventPostReactionUpdated, ReactionID: reactionID, PostID: postID})

	return nil
}

func (s *session) deletePostReaction(ctx context.Context, postID types.PostID, reactionID types.ReactionID) error {
	account := s.origin.Account

	post, err := s.repo.Posts.Get(ctx, postID)
	if err != nil {
		return err
	}

	reaction, err := s.reactionByAccount(ctx, reactionID, func() (types.ReactionID, bool, error) {
		return s.repo.Reactions.PostReactionByAccount(ctx, account, postID)
	})
	if err != nil {
		return err
	}

	if reaction.Kind == enum.ReactionKindUpvote {
		post.UpvotesCount, err = types.SubCounter(post.UpvotesCount, 1)
	} else {
		post.DownvotesCount, err = types.SubCounter(post.DownvotesCount, 1)
	}
	if err != nil {
		return err
	}

	if err := s.repo.Posts.Save(ctx, post); err != nil {
		return err
	}

	if err := s.changePostScore(ctx, account, post, postVoteAction(reaction.Kind)); err != nil {
		return err
	}

	if err := s.repo.Reactions.Remove(ctx, reactionID); err != nil {
		return err
	}

	if err := s.repo.Reactions.RemoveIDFromPost(ctx, postID, reactionID); err != nil {
		return err
	}

	if err := s.repo.Reactions.RemovePostReactionByAccount(ctx, account, postID); err != nil {
		return err
	}

	s.record(types.Event{Kind: types.EventPostReactionDeleted, ReactionID: reactionID, PostID: postID})

	return nil
}

func (s *session) createCommentReaction(ctx context.Context, commentID types.CommentID, kind enum.ReactionKind) (types.ReactionID, error) {
	account := s.origin.Account

	comment, err := s.repo.Comments.Get(ctx, commentID)
	if err != nil {
		return 0, err
	}

	if _, reacted, err := s.repo.Reactions.CommentReactionByAccount(ctx, account, commentID); err != nil {
		return 0, err
	} else if reacted {
		return 0, types.ErrAlreadyReacted
	}

	reactionID, err := s.repo.Reactions.AllocateID(ctx)
	if err != nil {
		return 0, err
	}

	reaction := &types.Reaction{
		ID:      reactionID,
		Created: s.origin.Change(),
		Kind:    kind,
	}

	if err := s.repo.Reactions.Save(ctx, reaction); err != nil {
		return 0, err
	}

	if err := s.repo.Reactions.AddIDToComment(ctx, commentID, reactionID); err != nil {
		return 0, err
	}

	if err := s.repo.Reactions.SetCommentReactionByAccount(ctx, account, commentID, reactionID); err != nil {
		return 0, err
	}

	if kind == enum.ReactionKindUpvote {
		comment.UpvotesCount, err = types.AddCounter(comment.UpvotesCount, 1)
	} else {
		comment.DownvotesCount, err = types.AddCounter(comment.DownvotesCount, 1)
	}
	if err != nil {
		return 0, err
	}

	if err := s.repo.Comments.Save(ctx, comment); err != nil {
		return 0, err
	}

	if err := s.changeCommentScore(ctx, account, comment, commentVoteAction(kind)); err != nil {
		return 0, err
	}

	s.record(types.Event{Kind: types.EventCommentReactionCreated, ReactionID: reactionID, CommentID: commentID})

	return reactionID, nil
}

func (s *session) updateCommentReaction(ctx context.Context, commentID types.CommentID, reactionID types.ReactionID, kind enum.ReactionKind) error {
	account := s.origin.Account

	comment, err := s.repo.Comments.Get(ctx, commentID)
	if err != nil {
		return err
	}

	reaction, err := s.reactionByAccount(ctx, reactionID, func() (types.ReactionID, bool, error) {
		return s.repo.Reactions.CommentReactionByAccount(ctx, account, commentID)
	})
	if err != nil {
		return err
	}

	if reaction.Kind == kind {
		return types.ErrSameReactionKind
	}

	if kind == enum.ReactionKindUpvote {
		comment.DownvotesCount, err = types.SubCounter(comment.DownvotesCount, 1)
		if err == nil {
			comment.UpvotesCount, err = types.AddCounter(comment.UpvotesCount, 1)
		}
	} else {
		comment.UpvotesCount, err = types.SubCounter(comment.UpvotesCount, 1)
		if err == nil {
			comment.DownvotesCount, err = types.AddCounter(comment.DownvotesCount, 1)
		}
	}
	if err != nil {
		return err
	}

	if err := s.repo.Comments.Save(ctx, comment); err != nil {
		return err
	}

	if err := s.changeCommentScore(ctx, account, comment, commentVoteAction(kind)); err != nil {
		return err
	}

	updated := s.origin.Change()
	reaction.Kind = kind
	reaction.Updated = &updated

	if err := s.repo.Reactions.Save(ctx, reaction); err != nil {
		return err
	}

	s.record(types.Event{Kind: types.EventCommentReactionUpdated, ReactionID: reactionID, CommentID: commentID})

	return nil
}

func (s *session) deleteCommentReaction(ctx context.Context, commentID types.CommentID, reactionID types.ReactionID) error {
	account := s.origin.Account

	comment, err := s.repo.Comments.Get(ctx, commentID)
	if err != nil {
		return err
	}

	reaction, err := s.reactionByAccount(ctx, reactionID, func() (types.ReactionID, bool, error) {
		return s.repo.Reactions.CommentReactionByAccount(ctx, account, commentID)
	})
	if err != nil {
		return err
	}

	if reaction.Kind == enum.ReactionKindUpvote {
		comment.UpvotesCount, err = types.SubCounter(comment.UpvotesCount, 1)
	} else {
		comment.DownvotesCount, err = types.SubCounter(comment.DownvotesCount, 1)
	}
	if err != nil {
		return err
	}

	if err := s.repo.Comments.Save(ctx, comment); err != nil {
		return err
	}

	if err := s.changeCommentScore(ctx, account, comment, commentVoteAction(reaction.Kind)); err != nil {
		return err
	}

	if err := s.repo.Reactions.Remove(ctx, reactionID); err != nil {
		return err
	}

	if err := s.repo.Reactions.RemoveIDFromComment(ctx, commentID, reactionID); err != nil {
		return err
	}

	if err := s.repo.Reactions.RemoveCommentReactionByAccount(ctx, account, commentID); err != nil {
		return err
	}

	s.record(types.Event{Kind: types.EventCommentReactionDeleted, ReactionID: reactionID, CommentID: commentID})

	return nil
}

// reactionByAccount loads the reaction after confirming the origin account
// reacted to the content and that the given id is indeed its reaction.
func (s *session) reactionByAccount(ctx context.Context, reactionID types.ReactionID, lookup func() (types.ReactionID, bool, error)) (*types.Reaction, error) {
	recordedID, reacted, err := lookup()
	if err != nil {
		return nil, err
	}

	if !reacted {
		return nil, types.ErrNotReacted
	}

	if recordedID != reactionID {
		return nil, types.ErrNotReactionOwner
	}

	return s.repo.Reactions.Get(ctx, reactionID)
}

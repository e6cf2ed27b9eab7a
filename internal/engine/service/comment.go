package service

import (
	"context"
	"errors"

	"github.com/robalyx/blogchain/internal/engine/types"
	"github.com/robalyx/blogchain/internal/engine/types/enum"
)

// CreateComment attaches a comment to the post, threaded under parentID when
// it is non-nil. Commenting on foreign content scores the post, or the
// parent comment and its post for replies.
func (e *Engine) CreateComment(ctx context.Context, origin types.Origin, postID types.PostID, parentID *types.CommentID, ipfsHash string) (types.CommentID, error) {
	var commentID types.CommentID

	err := e.run(ctx, origin, func(ctx context.Context, s *session) error {
		var err error
		commentID, err = s.createComment(ctx, postID, parentID, ipfsHash)
		return err
	})

	return commentID, err
}

// UpdateComment replaces the content hash of a comment authored by the
// origin account.
func (e *Engine) UpdateComment(ctx context.Context, origin types.Origin, commentID types.CommentID, update types.CommentUpdate) error {
	return e.run(ctx, origin, func(ctx context.Context, s *session) error {
		return s.updateComment(ctx, commentID, update)
	})
}

func (s *session) createComment(ctx context.Context, postID types.PostID, parentID *types.CommentID, ipfsHash string) (types.CommentID, error) {
	author := s.origin.Account

	post, err := s.repo.Posts.Get(ctx, postID)
	if err != nil {
		return 0, err
	}

	var parent *types.Comment
	if parentID != nil {
		parent, err = s.repo.Comments.Get(ctx, *parentID)
		if err != nil {
			if errors.Is(err, types.ErrCommentNotFound) {
				return 0, types.ErrParentCommentNotFound
			}
			return 0, err
		}

		if parent.PostID != postID {
			return 0, types.ErrParentCommentNotFound
		}
	}

	if err := s.validateIPFSHash(ipfsHash, s.cfg.Limits.CommentMaxLen); err != nil {
		return 0, err
	}

	commentID, err := s.repo.Comments.AllocateID(ctx)
	if err != nil {
		return 0, err
	}

	comment := &types.Comment{
		ID:       commentID,
		ParentID: parentID,
		PostID:   postID,
		Created:  s.origin.Change(),
		IPFSHash: ipfsHash,
	}

	if err := s.repo.Comments.Save(ctx, comment); err != nil {
		return 0, err
	}

	if err := s.repo.Comments.AddIDToPost(ctx, postID, commentID); err != nil {
		return 0, err
	}

	// Counter bumps are persisted before scoring; the scoring calls re-save
	// the same structs with their score changes on top.
	post.CommentsCount, err = types.AddCounter(post.CommentsCount, 1)
	if err != nil {
		return 0, err
	}

	if err := s.repo.Posts.Save(ctx, post); err != nil {
		return 0, err
	}

	if parent != nil {
		parent.DirectRepliesCount, err = types.AddCounter(parent.DirectRepliesCount, 1)
		if err != nil {
			return 0, err
		}

		if err := s.repo.Comments.Save(ctx, parent); err != nil {
			return 0, err
		}

		if err := s.changeCommentScore(ctx, author, parent, enum.ScoringActionCreateComment); err != nil {
			return 0, err
		}
	} else if err := s.changePostScore(ctx, author, post, enum.ScoringActionCreateComment); err != nil {
		return 0, err
	}

	s.record(types.Event{Kind: types.EventCommentCreated, CommentID: commentID, PostID: postID})

	return commentID, nil
}

func (s *session) updateComment(ctx context.Context, commentID types.CommentID, update types.CommentUpdate) error {
	comment, err := s.repo.Comments.Get(ctx, commentID)
	if err != nil {
		return err
	}

	if !comment.IsAuthor(s.origin.Account) {
		return types.ErrNotCommentAuthor
	}

	if update.IPFSHash == comment.IPFSHash {
		return types.ErrCommentNothingToUpdate
	}

	if err := s.validateIPFSHash(update.IPFSHash, s.cfg.Limits.CommentMaxLen); err != nil {
		return err
	}

	updated := s.origin.Change()
	comment.EditHistory = append(comment.EditHistory, types.CommentHistoryRecord{
		Edited:      updated,
		OldIPFSHash: comment.IPFSHash,
	})
	comment.IPFSHash = update.IPFSHash
	comment.Updated = &updated

	if err := s.repo.Comments.Save(ctx, comment); err != nil {
		return err
	}

	s.record(types.Event{Kind: types.EventCommentUpdated, CommentID: commentID})

	return nil
}

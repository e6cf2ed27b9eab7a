package types

import (
	"github.com/google/uuid"

	"github.com/robalyx/blogchain/internal/engine/types/enum"
)

// EventKind identifies what a structured event record describes.
type EventKind string

const (
	EventBlogCreated    EventKind = "blog_created"
	EventBlogUpdated    EventKind = "blog_updated"
	EventBlogFollowed   EventKind = "blog_followed"
	EventBlogUnfollowed EventKind = "blog_unfollowed"

	EventAccountFollowed   EventKind = "account_followed"
	EventAccountUnfollowed EventKind = "account_unfollowed"

	EventPostCreated EventKind = "post_created"
	EventPostUpdated EventKind = "post_updated"
	EventPostShared  EventKind = "post_shared"

	EventCommentCreated EventKind = "comment_created"
	EventCommentUpdated EventKind = "comment_updated"
	EventCommentShared  EventKind = "comment_shared"

	EventPostReactionCreated EventKind = "post_reaction_created"
	EventPostReactionUpdated EventKind = "post_reaction_updated"
	EventPostReactionDeleted EventKind = "post_reaction_deleted"

	EventCommentReactionCreated EventKind = "comment_reaction_created"
	EventCommentReactionUpdated EventKind = "comment_reaction_updated"
	EventCommentReactionDeleted EventKind = "comment_reaction_deleted"

	EventProfileCreated EventKind = "profile_created"
	EventProfileUpdated EventKind = "profile_updated"

	EventReputationChanged EventKind = "reputation_changed"
)

// Event is the structured record emitted after a committed state transition.
// Delivery is the host runtime's concern. Only the fields relevant to the
// kind are populated.
type Event struct {
	ID      uuid.UUID `json:"id"`
	Kind    EventKind `json:"kind"`
	Block   uint64    `json:"block"`
	Account AccountID `json:"account"`

	BlogID     BlogID     `json:"blogId,omitempty"`
	PostID     PostID     `json:"postId,omitempty"`
	CommentID  CommentID  `json:"commentId,omitempty"`
	ReactionID ReactionID `json:"reactionId,omitempty"`

	// Counterparty for follow events.
	Target AccountID `json:"target,omitempty"`

	// Populated for reputation_changed only.
	Action     enum.ScoringAction `json:"action,omitempty"`
	Reputation uint32             `json:"reputation,omitempty"`
}

package enum

// ReactionKind represents the kind of reaction an account can leave on a
// post or comment.
//
//go:generate enumer -type=ReactionKind -trimprefix=ReactionKind
type ReactionKind int

const (
	ReactionKindUpvote ReactionKind = iota
	ReactionKindDownvote
)

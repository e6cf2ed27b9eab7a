package enum

// ScoringAction represents a weighted interaction that changes content
// scores and account reputations.
//
//go:generate enumer -type=ScoringAction -trimprefix=ScoringAction
type ScoringAction int

const (
	ScoringActionUpvotePost ScoringAction = iota
	ScoringActionDownvotePost
	ScoringActionSharePost
	ScoringActionCreateComment
	ScoringActionUpvoteComment
	ScoringActionDownvoteComment
	ScoringActionShareComment
	ScoringActionFollowBlog
	ScoringActionFollowAccount
)

package types

import "errors"

var (
	ErrCommentNotFound        = errors.New("comment was not found by id")
	ErrParentCommentNotFound  = errors.New("unknown parent comment id")
	ErrNotCommentAuthor       = errors.New("only the comment author can update their comment")
	ErrCommentNothingToUpdate = errors.New("new comment content hash is the same as the old one")
)

// Comment is attached to a post, optionally as a threaded reply to another
// comment on the same post.
type Comment struct {
	ID       CommentID  `json:"id"`
	ParentID *CommentID `json:"parentId,omitempty"`
	PostID   PostID     `json:"postId"`
	Created  Change     `json:"created"`
	Updated  *Change    `json:"updated,omitempty"`

	IPFSHash string `json:"ipfsHash"`

	UpvotesCount       uint16 `json:"upvotesCount"`
	DownvotesCount     uint16 `json:"downvotesCount"`
	SharesCount        uint16 `json:"sharesCount"`
	DirectRepliesCount uint16 `json:"directRepliesCount"`

	EditHistory []CommentHistoryRecord `json:"editHistory,omitempty"`
	Score       int32                  `json:"score"`
}

// IsAuthor reports whether the account created the comment.
func (c *Comment) IsAuthor(account AccountID) bool {
	return c.Created.Account == account
}

// CommentUpdate replaces the comment's content hash.
type CommentUpdate struct {
	IPFSHash string
}

// CommentHistoryRecord captures the prior content hash of one update.
type CommentHistoryRecord struct {
	Edited      Change `json:"edited"`
	OldIPFSHash string `json:"oldIpfsHash"`
}

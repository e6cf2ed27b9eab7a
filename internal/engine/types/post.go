package types

import (
	"errors"

	"github.com/robalyx/blogchain/internal/engine/types/enum"
)

var (
	ErrPostNotFound          = errors.New("post was not found by id")
	ErrPostNothingToUpdate   = errors.New("nothing to update in this post")
	ErrNotPostOwner          = errors.New("only the post owner can update their post")
	ErrCannotShareSharedPost = errors.New("cannot share a post that shares another post")
	ErrOriginalPostNotFound  = errors.New("original post of this share was not found")
)

// PostExtension is a tagged variant distinguishing regular posts from
// reshares. Only the id matching the kind is meaningful.
type PostExtension struct {
	Kind              enum.PostExtensionKind `json:"kind"`
	OriginalPostID    PostID                 `json:"originalPostId,omitempty"`
	OriginalCommentID CommentID              `json:"originalCommentId,omitempty"`
}

// RegularPostExtension builds the extension for an original post.
func RegularPostExtension() PostExtension {
	return PostExtension{Kind: enum.PostExtensionKindRegular}
}

// SharedPostExtension builds the extension for a reshare of a post.
func SharedPostExtension(original PostID) PostExtension {
	return PostExtension{Kind: enum.PostExtensionKindSharedPost, OriginalPostID: original}
}

// SharedCommentExtension builds the extension for a reshare of a comment.
func SharedCommentExtension(original CommentID) PostExtension {
	return PostExtension{Kind: enum.PostExtensionKindSharedComment, OriginalCommentID: original}
}

// Post belongs to a blog and accumulates comments, votes and shares.
type Post struct {
	ID      PostID  `json:"id"`
	BlogID  BlogID  `json:"blogId"`
	Created Change  `json:"created"`
	Updated *Change `json:"updated,omitempty"`

	Extension PostExtension `json:"extension"`
	IPFSHash  string        `json:"ipfsHash"`

	CommentsCount  uint16 `json:"commentsCount"`
	UpvotesCount   uint16 `json:"upvotesCount"`
	DownvotesCount uint16 `json:"downvotesCount"`
	SharesCount    uint16 `json:"sharesCount"`

	EditHistory []PostHistoryRecord `json:"editHistory,omitempty"`
	Score       int32               `json:"score"`
}

// IsOwner reports whether the account created the post.
func (p *Post) IsOwner(account AccountID) bool {
	return p.Created.Account == account
}

// IsRegular reports whether the post is an original, non-shared post.
func (p *Post) IsRegular() bool {
	return p.Extension.Kind == enum.PostExtensionKindRegular
}

// PostUpdate is a partial update; nil fields are left untouched.
type PostUpdate struct {
	BlogID   *BlogID
	IPFSHash *string
}

// IsEmpty reports whether the update carries no fields at all.
func (u *PostUpdate) IsEmpty() bool {
	return u.BlogID == nil && u.IPFSHash == nil
}

// PostHistoryRecord captures prior values of fields changed by one update.
type PostHistoryRecord struct {
	Edited      Change  `json:"edited"`
	OldBlogID   *BlogID `json:"oldBlogId,omitempty"`
	OldIPFSHash *string `json:"oldIpfsHash,omitempty"`
}

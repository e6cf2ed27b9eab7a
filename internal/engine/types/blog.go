package types

import "errors"

var (
	ErrBlogNotFound        = errors.New("blog was not found by id")
	ErrBlogSlugTooShort    = errors.New("blog slug is too short")
	ErrBlogSlugTooLong     = errors.New("blog slug is too long")
	ErrBlogSlugNotUnique   = errors.New("blog slug is not unique")
	ErrBlogNothingToUpdate = errors.New("nothing to update in this blog")
	ErrNotBlogOwner        = errors.New("only the blog owner can update their blog")
	ErrBlogFollowed        = errors.New("account is already following this blog")
	ErrBlogNotFollowed     = errors.New("account is not following this blog")
)

// Blog is a named container of posts with its own follower set and score.
type Blog struct {
	ID      BlogID  `json:"id"`
	Created Change  `json:"created"`
	Updated *Change `json:"updated,omitempty"`

	// Can be updated by the owner:
	Writers  []AccountID `json:"writers"`
	Slug     string      `json:"slug"`
	IPFSHash string      `json:"ipfsHash"`

	PostsCount     uint16 `json:"postsCount"`
	FollowersCount uint32 `json:"followersCount"`

	EditHistory []BlogHistoryRecord `json:"editHistory,omitempty"`
	Score       int32               `json:"score"`
}

// IsOwner reports whether the account created the blog.
func (b *Blog) IsOwner(account AccountID) bool {
	return b.Created.Account == account
}

// BlogUpdate is a partial update; nil fields are left untouched.
type BlogUpdate struct {
	Writers  *[]AccountID
	Slug     *string
	IPFSHash *string
}

// IsEmpty reports whether the update carries no fields at all.
func (u *BlogUpdate) IsEmpty() bool {
	return u.Writers == nil && u.Slug == nil && u.IPFSHash == nil
}

// BlogHistoryRecord captures prior values of fields changed by one update.
type BlogHistoryRecord struct {
	Edited      Change       `json:"edited"`
	OldWriters  *[]AccountID `json:"oldWriters,omitempty"`
	OldSlug     *string      `json:"oldSlug,omitempty"`
	OldIPFSHash *string      `json:"oldIpfsHash,omitempty"`
}

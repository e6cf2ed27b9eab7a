package enum

// PostExtensionKind distinguishes original posts from reshares of posts or
// comments.
//
//go:generate enumer -type=PostExtensionKind -trimprefix=PostExtensionKind
type PostExtensionKind int

const (
	PostExtensionKindRegular PostExtensionKind = iota
	PostExtensionKindSharedPost
	PostExtensionKindSharedComment
)

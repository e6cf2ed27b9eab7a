package types

import "errors"

var (
	ErrInvalidIPFSHash = errors.New("content hash is not a valid IPFS CID")
	ErrContentTooLong  = errors.New("content hash exceeds the configured maximum length")
)

// AccountID is an opaque, already-authenticated caller identity supplied by
// the host runtime.
type AccountID string

// Entity identifiers. Each kind has its own counter starting at 1.
type (
	BlogID     uint64
	PostID     uint64
	CommentID  uint64
	ReactionID uint64
)

// Change records who performed a mutation and when, in host logical time.
type Change struct {
	Account AccountID `json:"account"`
	Block   uint64    `json:"block"`
	Time    int64     `json:"time"`
}

// Origin carries the authenticated caller together with the logical clock
// values for the operation being executed. The host runtime builds one per
// state transition.
type Origin struct {
	Account AccountID
	Block   uint64
	Time    int64
}

// Change converts the origin into a Change record stamped on entities.
func (o Origin) Change() Change {
	return Change{
		Account: o.Account,
		Block:   o.Block,
		Time:    o.Time,
	}
}

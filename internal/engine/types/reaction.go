package types

import (
	"errors"

	"github.com/robalyx/blogchain/internal/engine/types/enum"
)

var (
	ErrReactionNotFound = errors.New("reaction was not found by id")
	ErrAlreadyReacted   = errors.New("account has already reacted to this content")
	ErrNotReacted       = errors.New("account has not reacted to this content yet")
	ErrNotReactionOwner = errors.New("only the reaction owner can manage their reaction")
	ErrSameReactionKind = errors.New("new reaction kind is the same as the old one")
)

// Reaction is an upvote or downvote owned by exactly one (account, content)
// pair. The pairing is enforced by a uniqueness index, not by the reaction.
type Reaction struct {
	ID      ReactionID        `json:"id"`
	Created Change            `json:"created"`
	Updated *Change           `json:"updated,omitempty"`
	Kind    enum.ReactionKind `json:"kind"`
}

// IsOwner reports whether the account created the reaction.
func (r *Reaction) IsOwner(account AccountID) bool {
	return r.Created.Account == account
}

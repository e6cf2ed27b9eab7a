package types

import "errors"

var (
	ErrSocialAccountNotFound   = errors.New("social account was not found by id")
	ErrFollowerAccountNotFound = errors.New("follower social account was not found by id")
	ErrFollowedAccountNotFound = errors.New("followed social account was not found by id")
	ErrAccountFollowedItself   = errors.New("account cannot follow itself")
	ErrAccountAlreadyFollowed  = errors.New("account is already followed")
	ErrAccountNotFollowed      = errors.New("account is not followed by follower")
	ErrReputationDiffNotFound  = errors.New("no reputation diff was recorded for this scorer, account and action")
	ErrProfileAlreadyExists    = errors.New("account already has a profile")
	ErrProfileNotFound         = errors.New("account has no profile")
	ErrProfileNothingToUpdate  = errors.New("nothing to update in this profile")
	ErrUsernameTooShort        = errors.New("username is too short")
	ErrUsernameTooLong         = errors.New("username is too long")
	ErrUsernameNotAlphanumeric = errors.New("username contains non-alphanumeric characters")
	ErrUsernameNotUnique       = errors.New("username is not unique")
)

// MinReputation is the floor below which an account's reputation never
// drops.
const MinReputation uint32 = 1

// SocialAccount is the per-identity record of follow counts and reputation.
type SocialAccount struct {
	ID AccountID `json:"id"`

	FollowersCount         uint32 `json:"followersCount"`
	FollowingAccountsCount uint16 `json:"followingAccountsCount"`
	FollowingBlogsCount    uint16 `json:"followingBlogsCount"`

	Reputation uint32   `json:"reputation"`
	Profile    *Profile `json:"profile,omitempty"`
}

// NewSocialAccount returns an account at the reputation floor with zeroed
// counters.
func NewSocialAccount(id AccountID) *SocialAccount {
	return &SocialAccount{
		ID:         id,
		Reputation: MinReputation,
	}
}

// Profile is the optional public identity attached to a social account.
type Profile struct {
	Created Change  `json:"created"`
	Updated *Change `json:"updated,omitempty"`

	Username string `json:"username"`
	IPFSHash string `json:"ipfsHash"`

	EditHistory []ProfileHistoryRecord `json:"editHistory,omitempty"`
}

// ProfileUpdate is a partial update; nil fields are left untouched.
type ProfileUpdate struct {
	Username *string
	IPFSHash *string
}

// IsEmpty reports whether the update carries no fields at all.
func (u *ProfileUpdate) IsEmpty() bool {
	return u.Username == nil && u.IPFSHash == nil
}

// ProfileHistoryRecord captures prior values of fields changed by one update.
type ProfileHistoryRecord struct {
	Edited      Change  `json:"edited"`
	OldUsername *string `json:"oldUsername,omitempty"`
	OldIPFSHash *string `json:"oldIpfsHash,omitempty"`
}

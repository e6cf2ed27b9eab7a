package service

import "github.com/robalyx/blogchain/internal/engine/types"

// Base58 alphabet used by IPFS CIDv0 content pointers.
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// validateSlug checks the blog slug against the configured length bounds.
func (s *session) validateSlug(slug string) error {
	if len(slug) < s.cfg.Limits.SlugMinLen {
		return types.ErrBlogSlugTooShort
	}

	if len(slug) > s.cfg.Limits.SlugMaxLen {
		return types.ErrBlogSlugTooLong
	}

	return nil
}

// validateIPFSHash checks a content pointer: the per-entity length cap and
// the CIDv0 shape ("Qm" prefix, exact length, base58 charset).
func (s *session) validateIPFSHash(hash string, maxLen int) error {
	if len(hash) > maxLen {
		return types.ErrContentTooLong
	}

	if len(hash) != s.cfg.Limits.IPFSHashLen {
		return types.ErrInvalidIPFSHash
	}

	if len(hash) < 2 || hash[0] != 'Q' || hash[1] != 'm' {
		return types.ErrInvalidIPFSHash
	}

	for _, c := range hash[2:] {
		if !isBase58(c) {
			return types.ErrInvalidIPFSHash
		}
	}

	return nil
}

// validateUsername checks profile username length bounds and charset.
func (s *session) validateUsername(username string) error {
	if len(username) < s.cfg.Limits.UsernameMinLen {
		return types.ErrUsernameTooShort
	}

	if len(username) > s.cfg.Limits.UsernameMaxLen {
		return types.ErrUsernameTooLong
	}

	for _, c := range username {
		if !isAlphanumeric(c) {
			return types.ErrUsernameNotAlphanumeric
		}
	}

	return nil
}

func isBase58(c rune) bool {
	for _, a := range base58Alphabet {
		if c == a {
			return true
		}
	}

	return false
}

func isAlphanumeric(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

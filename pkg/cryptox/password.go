package cryptox

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

const (
	// MaxPasswordRunes is the number of characters kept from a password before
	// hashing. Anything past it is dropped silently, so two passwords sharing
	// a 60 character prefix hash and verify identically. Existing hashes
	// depend on this, do not change it without a migration plan.
	MaxPasswordRunes = 60

	// bcryptMaxBytes is the input limit of bcrypt itself.
	bcryptMaxBytes = 72
)

// ErrInvalidCost reports a bcrypt cost outside the supported range.
var ErrInvalidCost = errors.New("cryptox: invalid bcrypt cost")

// Hasher hashes passwords with bcrypt at Cost. The zero value uses
// bcrypt.DefaultCost. Hashes made with another cost still verify since the
// cost is encoded in the hash.
type Hasher struct {
	Cost int
}

// NewHasher validates cost and returns a Hasher using it.
func NewHasher(cost int) (Hasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return Hasher{}, fmt.Errorf("%w: %d", ErrInvalidCost, cost)
	}
	return Hasher{Cost: cost}, nil
}

// Hash returns a bcrypt hash of the (truncated) password. The salt is random
// per call and embedded in the output.
func (h Hasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword(normalizePassword(password), cost)
	if err != nil {
		return "", fmt.Errorf("cryptox: hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the bcrypt hash. A
// malformed hash never matches.
func VerifyPassword(password, encodedHash string) bool {
	if encodedHash == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), normalizePassword(password))
	return err == nil
}

// normalizePassword keeps the first 60 characters, then makes sure the result
// fits bcrypt's 72 byte input without splitting a character. It cuts by byte
// offset so invalid UTF-8 bytes are kept as they are.
func normalizePassword(password string) []byte {
	end, runes := 0, 0
	for end < len(password) && runes < MaxPasswordRunes {
		_, size := utf8.DecodeRuneInString(password[end:])
		if end+size > bcryptMaxBytes {
			break
		}
		end += size
		runes++
	}
	return []byte(password[:end])
}

package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is used when no expiry is configured.
const DefaultAccessTokenTTL = 30 * time.Minute

// Claims are the access-token claims. The subject is the user's email; the
// user id and role ride along as custom fields so handlers never need to
// hit the store to find out who is calling.
type Claims struct {
	jwt.RegisteredClaims

	// UserID is the store identifier of the subject.
	UserID string `json:"user_id"`

	// Role is copied from the user at issue time and is not re-checked
	// until the token expires.
	Role string `json:"role"`
}

// NewAccessClaims builds claims expiring ttl after now.
func NewAccessClaims(email, userID, role, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
		Role:   role,
	}
}

// Email returns the subject claim.
func (c *Claims) Email() string { return c.Subject }

// ValidateIdentity makes sure the custom identity fields are present. A
// token with a valid signature but no user id is still useless to us.
func (c *Claims) ValidateIdentity() error {
	if c.Subject == "" || c.UserID == "" || c.Role == "" {
		return ErrInvalidClaim
	}
	return nil
}

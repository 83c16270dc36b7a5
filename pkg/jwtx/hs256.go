package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the shortest HS256 secret NewHS256 accepts.
const MinSecretLength = 32

var ErrWeakSecret = fmt.Errorf("jwtx: HS256 secret must be at least %d bytes", MinSecretLength)

// HS256 signs and validates tokens with a single shared secret. It is both
// the Signer and the Verifier since the server is the only party that ever
// needs to check its own tokens.
type HS256 struct {
	secret []byte
	issuer string
	ttl    time.Duration
	parser *jwt.Parser

	// Now is the clock used for issuing and validating. Defaults to time.Now.
	Now func() time.Time
}

// NewHS256 creates a token service. A zero ttl falls back to
// DefaultAccessTokenTTL. An empty issuer disables the issuer check.
func NewHS256(secret []byte, issuer string, ttl time.Duration) (*HS256, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrWeakSecret
	}
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}

	h := &HS256{
		secret: secret,
		issuer: issuer,
		ttl:    ttl,
		Now:    time.Now,
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return h.Now() }),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	h.parser = jwt.NewParser(opts...)

	return h, nil
}

func (h *HS256) Alg() string { return jwt.SigningMethodHS256.Alg() }

// TTL is how long issued tokens stay valid.
func (h *HS256) TTL() time.Duration { return h.ttl }

// Issue signs a token for the given identity expiring TTL from now.
func (h *HS256) Issue(email, userID, role string) (string, error) {
	claims := NewAccessClaims(email, userID, role, h.issuer, h.ttl, h.Now().UTC())

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(h.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return signed, nil
}

// Validate checks algorithm, signature, expiry and issuer in one pass.
func (h *HS256) Validate(tokenStr string) Result {
	if tokenStr == "" {
		return invalid(Malformed, nil)
	}

	claims := &Claims{}
	token, err := h.parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return h.secret, nil
	})
	if err != nil {
		return invalid(classify(err), err)
	}
	if !token.Valid {
		return invalid(Malformed, nil)
	}

	if err := claims.ValidateIdentity(); err != nil {
		return invalid(Malformed, err)
	}

	return Result{Status: Valid, Claims: *claims}
}

// classify maps a parser error onto a Status. Signature problems win over
// expiry so a forged token is never reported as merely stale.
func classify(err error) Status {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable):
		return BadSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return Expired
	default:
		return Malformed
	}
}

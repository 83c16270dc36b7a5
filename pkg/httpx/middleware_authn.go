package httpx

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/smartbank/pkg/jwtx"
	"github.com/aussiebroadwan/smartbank/pkg/slogx"
)

const (
	// DetailNotAuthenticated is returned when no credentials were sent.
	DetailNotAuthenticated = "Not authenticated"
	// DetailInvalidToken is returned for every token that fails validation.
	DetailInvalidToken = "Invalid token"
)

var (
	ErrUnauthenticated = errors.New("httpx: missing credentials")
	ErrInvalidToken    = errors.New("httpx: invalid token")
)

// Authenticate resolves an Authorization header value into an Identity.
// A "Bearer " prefix is stripped when present. The returned error wraps
// ErrUnauthenticated or ErrInvalidToken; for the latter it also wraps the
// jwtx sentinel describing why validation failed.
func Authenticate(header string, v jwtx.Verifier) (Identity, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return Identity{}, ErrUnauthenticated
	}

	raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

	res := v.Validate(raw)
	if !res.OK() {
		return Identity{}, errors.Join(ErrInvalidToken, res.Err())
	}

	return Identity{
		UserID: res.Claims.UserID,
		Email:  res.Claims.Email(),
		Role:   res.Claims.Role,
	}, nil
}

// AuthnMiddleware rejects requests without a valid bearer token and places
// the caller's Identity in the request context.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			id, err := Authenticate(r.Header.Get("Authorization"), v)
			if err != nil {
				detail := DetailInvalidToken
				if errors.Is(err, ErrUnauthenticated) {
					detail = DetailNotAuthenticated
				}
				log.Warn("authentication failed", "reason", authFailureReason(err))

				w.Header().Set("WWW-Authenticate", "Bearer")
				WriteDetail(w, http.StatusUnauthorized, detail)
				return
			}

			ctx = ContextWithIdentity(ctx, id)
			ctx = slogx.WithAttrs(ctx, "user_id", id.UserID, "role", id.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func authFailureReason(err error) string {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return "missing_header"
	case errors.Is(err, jwtx.ErrExpired):
		return jwtx.Expired.String()
	case errors.Is(err, jwtx.ErrInvalidSig):
		return jwtx.BadSignature.String()
	default:
		return jwtx.Malformed.String()
	}
}

package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/smartbank/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var (
	testSecret  = []byte("0123456789abcdef0123456789abcdef")
	otherSecret = []byte("fedcba9876543210fedcba9876543210")
	testIssuer  = "smartbank-api"
	issuedAt    = time.Unix(1700000000, 0).UTC()
)

func newTestService(t *testing.T, secret []byte, ttl time.Duration) *jwtx.HS256 {
	t.Helper()

	svc, err := jwtx.NewHS256(secret, testIssuer, ttl)
	require.NoError(t, err)
	svc.Now = func() time.Time { return issuedAt }
	return svc
}

func TestNewHS256(t *testing.T) {
	t.Run("rejects short secrets", func(t *testing.T) {
		_, err := jwtx.NewHS256([]byte("short"), testIssuer, time.Minute)
		require.ErrorIs(t, err, jwtx.ErrWeakSecret)
	})

	t.Run("defaults ttl", func(t *testing.T) {
		svc, err := jwtx.NewHS256(testSecret, testIssuer, 0)
		require.NoError(t, err)
		require.Equal(t, jwtx.DefaultAccessTokenTTL, svc.TTL())
		require.Equal(t, "HS256", svc.Alg())
	})
}

func TestIssueAndValidate(t *testing.T) {
	svc := newTestService(t, testSecret, 30*time.Minute)

	token, err := svc.Issue("user1@test.com", "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", "customer")
	require.NoError(t, err)
	require.Len(t, strings.Split(token, "."), 3)

	res := svc.Validate(token)
	require.True(t, res.OK())
	require.NoError(t, res.Err())
	require.Equal(t, "user1@test.com", res.Claims.Email())
	require.Equal(t, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", res.Claims.UserID)
	require.Equal(t, "customer", res.Claims.Role)
	require.Equal(t, issuedAt.Add(30*time.Minute), res.Claims.ExpiresAt.Time)
}

func TestValidateExpiryWindow(t *testing.T) {
	ttl := 30 * time.Minute
	svc := newTestService(t, testSecret, ttl)

	token, err := svc.Issue("user1@test.com", "uid", "customer")
	require.NoError(t, err)

	t.Run("valid just before expiry", func(t *testing.T) {
		svc.Now = func() time.Time { return issuedAt.Add(ttl - time.Second) }
		require.Equal(t, jwtx.Valid, svc.Validate(token).Status)
	})

	t.Run("expired after ttl", func(t *testing.T) {
		svc.Now = func() time.Time { return issuedAt.Add(ttl + time.Second) }
		res := svc.Validate(token)
		require.Equal(t, jwtx.Expired, res.Status)
		require.ErrorIs(t, res.Err(), jwtx.ErrExpired)
		require.Empty(t, res.Claims.UserID, "claims must not leak from a rejected token")
	})
}

func TestValidateRejections(t *testing.T) {
	svc := newTestService(t, testSecret, time.Hour)
	claims := jwtx.NewAccessClaims("user1@test.com", "uid", "customer", testIssuer, time.Hour, issuedAt)

	t.Run("signed with another secret", func(t *testing.T) {
		other := newTestService(t, otherSecret, time.Hour)
		token, err := other.Issue("user1@test.com", "uid", "auditor")
		require.NoError(t, err)

		res := svc.Validate(token)
		require.Equal(t, jwtx.BadSignature, res.Status)
		require.ErrorIs(t, res.Err(), jwtx.ErrInvalidSig)
	})

	t.Run("alg none", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		require.Equal(t, jwtx.BadSignature, svc.Validate(token).Status)
	})

	t.Run("wrong hmac algorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(testSecret)
		require.NoError(t, err)

		require.Equal(t, jwtx.BadSignature, svc.Validate(token).Status)
	})

	t.Run("tampered payload", func(t *testing.T) {
		token, err := svc.Issue("user1@test.com", "uid", "customer")
		require.NoError(t, err)

		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256,
			jwtx.NewAccessClaims("user1@test.com", "uid", "auditor", testIssuer, time.Hour, issuedAt),
		).SignedString(otherSecret)
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		forgedParts := strings.Split(forged, ".")
		tampered := parts[0] + "." + forgedParts[1] + "." + parts[2]

		require.Equal(t, jwtx.BadSignature, svc.Validate(tampered).Status)
	})

	t.Run("garbage", func(t *testing.T) {
		for _, in := range []string{"", "not-a-token", "a.b", "a.b.c"} {
			res := svc.Validate(in)
			require.Equal(t, jwtx.Malformed, res.Status, "input %q", in)
			require.ErrorIs(t, res.Err(), jwtx.ErrMalformed)
		}
	})

	t.Run("missing expiry", func(t *testing.T) {
		noExp := claims
		noExp.ExpiresAt = nil
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, noExp).SignedString(testSecret)
		require.NoError(t, err)

		require.Equal(t, jwtx.Malformed, svc.Validate(token).Status)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		foreign := claims
		foreign.Issuer = "someone-else"
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, foreign).SignedString(testSecret)
		require.NoError(t, err)

		require.Equal(t, jwtx.Malformed, svc.Validate(token).Status)
	})

	t.Run("missing identity", func(t *testing.T) {
		anon := claims
		anon.UserID = ""
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, anon).SignedString(testSecret)
		require.NoError(t, err)

		res := svc.Validate(token)
		require.Equal(t, jwtx.Malformed, res.Status)
		require.ErrorIs(t, res.Err(), jwtx.ErrInvalidClaim)
	})
}

package app

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/smartbank/pkg/bankapi"
	"github.com/aussiebroadwan/smartbank/pkg/httpx"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var bankLimit = httpx.RateLimitConfig{RequestsPerWindow: 100, Window: time.Minute, Burst: 100}

func TestNew_DevDefaults(t *testing.T) {
	cfg := Config{
		Env:                 EnvDev,
		TokenIssuer:         "smartbank-api",
		AccessTokenTTL:      30 * time.Minute,
		BcryptCost:          bcrypt.MinCost,
		DatabaseDriver:      DriverSQLite,
		DatabaseFile:        filepath.Join(t.TempDir(), "smartbank.db"),
		LogLevel:            "error",
		LogFormat:           "text",
		ShutdownGracePeriod: time.Second,
		StrictLimit:         bankLimit,
		ModerateLimit:       bankLimit,
		LenientLimit:        bankLimit,
		PublicLimit:         bankLimit,
	}

	application, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.db.Close() })
	require.Equal(t, bcrypt.MinCost, application.userService.Hasher.Cost)

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(srv.Close)

	ctx := context.Background()
	c := bankapi.NewClient(srv.URL)

	_, err = c.Register(ctx, bankapi.RegisterRequest{
		Email: "user1@test.com", Password: "password123", Name: "User One", Phone: "0400000001",
	})
	require.NoError(t, err)

	tok, err := c.Login(ctx, "user1@test.com", "password123")
	require.NoError(t, err)
	require.Equal(t, 1800, tok.ExpiresIn)

	ready, err := c.Readyz(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	_, err := New(Config{Env: "prod", DatabaseDriver: DriverSQLite, AccessTokenTTL: time.Minute, BcryptCost: bcrypt.MinCost})
	require.ErrorIs(t, err, ErrMissingSecret)

	_, err = New(Config{
		Env:            "prod",
		SecretKey:      "short",
		DatabaseDriver: DriverSQLite,
		AccessTokenTTL: time.Minute,
		BcryptCost:     bcrypt.MinCost,
	})
	require.Error(t, err)
}

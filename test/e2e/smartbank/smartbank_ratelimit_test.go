package smartbank_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/smartbank/pkg/bankapi"
	"github.com/stretchr/testify/require"
)

// TestRateLimitLogin verifies the strict limit (5 req/min) on /auth/login.
func TestRateLimitLogin(t *testing.T) {
	c := setupContainerWithDefaultRateLimits(t)
	client := bankapi.NewClient(c.BaseURL)

	for i := range 5 {
		_, err := client.Login(t.Context(), "eve@test.com", "wrong-password")
		assertAPIError(t, err, bankapi.ErrInvalidCredentials)
		require.NotContains(t, err.Error(), "429", "Should not be rate limited yet (request %d)", i+1)
	}

	_, err := client.Login(t.Context(), "eve@test.com", "wrong-password")
	require.Error(t, err)

	var apiErr *bankapi.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
}

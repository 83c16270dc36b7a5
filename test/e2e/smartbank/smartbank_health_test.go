package smartbank_test

import (
	"testing"

	"github.com/aussiebroadwan/smartbank/pkg/bankapi"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	c := setupContainer(t)
	client := bankapi.NewClient(c.BaseURL)

	health, err := client.Livez(t.Context())
	assertHealthy(t, health, err)

	health, err = client.Readyz(t.Context())
	assertHealthy(t, health, err)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
}

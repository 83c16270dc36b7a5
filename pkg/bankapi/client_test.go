package bankapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/smartbank/pkg/httpx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_WriteError(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	ErrKYCAlreadyReviewed.WriteError(rec)

	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.JSONEq(t, `{"detail":"KYC already reviewed"}`, rec.Body.String())
}

func TestAPIError_Is(t *testing.T) {
	t.Parallel()

	decoded := &APIError{StatusCode: http.StatusNotFound, Detail: "KYC not found"}
	require.ErrorIs(t, decoded, ErrKYCNotFound)
	require.NotErrorIs(t, decoded, ErrUserNotFound)
	require.NotErrorIs(t, decoded, errors.New("KYC not found"))
}

func TestClient_DecodesErrors(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		ErrInvalidCredentials.WriteError(w)
	})
	mux.HandleFunc("GET /users/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>upstream down</html>"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL + "/")
	ctx := context.Background()

	_, err := c.Login(ctx, "a@b.co", "pw")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = c.Profile(ctx, "tok")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, "HTTP 502: Bad Gateway", apiErr.Detail)
}

func TestClient_SendsBearerToken(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("PUT /kyc/{id}/approve", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "01ABC", r.PathValue("id"))
		httpx.WriteJSON(w, http.StatusOK, MessageResponse{Message: "KYC approved successfully"})
	})
	mux.HandleFunc("GET /kyc/pending", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, []PendingKYC{{KYCID: "01ABC", UserEmail: "a@b.co"}})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	ctx := context.Background()

	msg, err := c.Approve(ctx, "tok", "01ABC")
	require.NoError(t, err)
	require.Equal(t, "KYC approved successfully", msg.Message)

	pending, err := c.ListPending(ctx, "tok")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, "a@b.co", pending[0].UserEmail)
}

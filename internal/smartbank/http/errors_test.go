package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/smartbank/internal/smartbank/service"
	"github.com/aussiebroadwan/smartbank/pkg/bankapi"
	"github.com/stretchr/testify/require"
)

func TestWriteServiceError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{"invalid input", fmt.Errorf("%w: name is required", service.ErrInvalidInput), http.StatusBadRequest, "name is required"},
		{"duplicate email", service.ErrEmailAlreadyExists, http.StatusBadRequest, "Email already exists"},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{"forbidden", fmt.Errorf("%w: nope", service.ErrForbidden), http.StatusForbidden, "Only auditors can approve KYC"},
		{"user not found", service.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"kyc not found", service.ErrKYCNotFound, http.StatusNotFound, "KYC not found"},
		{"already reviewed", service.ErrKYCAlreadyReviewed, http.StatusConflict, "KYC already reviewed"},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			writeServiceError(rec, req, tt.err, bankapi.ErrOnlyAuditorsApprove)

			require.Equal(t, tt.status, rec.Code)
			require.JSONEq(t, `{"detail":"`+tt.detail+`"}`, rec.Body.String())
		})
	}

	t.Run("forbidden without endpoint detail", func(t *testing.T) {
		rec := httptest.NewRecorder()
		writeServiceError(rec, httptest.NewRequest(http.MethodGet, "/", nil), service.ErrForbidden, nil)
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.JSONEq(t, `{"detail":"Forbidden"}`, rec.Body.String())
	})
}

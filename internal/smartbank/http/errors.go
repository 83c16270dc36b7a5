package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/smartbank/internal/smartbank/service"
	"github.com/aussiebroadwan/smartbank/pkg/bankapi"
	"github.com/aussiebroadwan/smartbank/pkg/httpx"
	"github.com/aussiebroadwan/smartbank/pkg/slogx"
)

// writeServiceError renders a service error as an API error. forbidden is the
// endpoint specific 403; unknown errors are logged and surface as a bare 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, forbidden *bankapi.APIError) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		invalidInput(err).WriteError(w)
	case errors.Is(err, service.ErrEmailAlreadyExists):
		bankapi.ErrEmailAlreadyExists.WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		bankapi.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrForbidden):
		if forbidden == nil {
			forbidden = bankapi.NewAPIError(http.StatusForbidden, "Forbidden")
		}
		forbidden.WriteError(w)
	case errors.Is(err, service.ErrUserNotFound):
		bankapi.ErrUserNotFound.WriteError(w)
	case errors.Is(err, service.ErrKYCNotFound):
		bankapi.ErrKYCNotFound.WriteError(w)
	case errors.Is(err, service.ErrKYCAlreadyReviewed):
		bankapi.ErrKYCAlreadyReviewed.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		bankapi.ErrInternalServer.WriteError(w)
	}
}

// invalidInput keeps the field description and drops the sentinel prefix.
func invalidInput(err error) *bankapi.APIError {
	detail := strings.TrimPrefix(err.Error(), service.ErrInvalidInput.Error()+": ")
	return bankapi.NewAPIError(http.StatusBadRequest, detail)
}

// decodeBody decodes the JSON request body or writes a 400.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := httpx.DecodeJSON(r, v); err != nil {
		slogx.FromContext(r.Context()).Debug("bad request body", "err", err)
		bankapi.ErrInvalidBody.WriteError(w)
		return false
	}
	return true
}

// actorFrom reads the caller placed in the context by the access guard.
func actorFrom(w http.ResponseWriter, r *http.Request) (service.Actor, bool) {
	id, ok := httpx.IdentityFromContext(r.Context())
	if !ok {
		bankapi.ErrNotAuthenticated.WriteError(w)
		return service.Actor{}, false
	}
	return service.Actor{UserID: id.UserID, Email: id.Email, Role: id.Role}, true
}

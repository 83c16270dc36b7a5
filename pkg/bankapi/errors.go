package bankapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/smartbank/pkg/httpx"
)

// APIError is a non-2xx API outcome. The server writes it with WriteError
// and the client decodes it back from the response.
type APIError struct {
	StatusCode int    `json:"-"`
	Detail     string `json:"detail"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Detail)
}

// Is matches on status and detail so a decoded error compares equal to the
// predefined one it came from.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode && e.Detail == t.Detail
}

func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteDetail(w, e.StatusCode, e.Detail)
}

func NewAPIError(statusCode int, detail string) *APIError {
	return &APIError{StatusCode: statusCode, Detail: detail}
}

var (
	ErrEmailAlreadyExists = &APIError{http.StatusBadRequest, "Email already exists"}
	ErrInvalidCredentials = &APIError{http.StatusUnauthorized, "Invalid credentials"}
	ErrNotAuthenticated   = &APIError{http.StatusUnauthorized, httpx.DetailNotAuthenticated}
	ErrInvalidToken       = &APIError{http.StatusUnauthorized, httpx.DetailInvalidToken}
	ErrUserNotFound       = &APIError{http.StatusNotFound, "User not found"}

	ErrOnlyCustomersUpload = &APIError{http.StatusForbidden, "Only customers can upload KYC"}
	ErrOnlyCustomersView   = &APIError{http.StatusForbidden, "Only customers can view their KYC submissions"}
	ErrOnlyAuditorsPending = &APIError{http.StatusForbidden, "Only auditors can view pending KYCs"}
	ErrOnlyAuditorsApprove = &APIError{http.StatusForbidden, "Only auditors can approve KYC"}
	ErrOnlyAuditorsReject  = &APIError{http.StatusForbidden, "Only auditors can reject KYC"}
	ErrOnlyAuditorsAudit   = &APIError{http.StatusForbidden, "Only auditors can view audit logs"}
	ErrKYCNotFound         = &APIError{http.StatusNotFound, "KYC not found"}
	ErrKYCAlreadyReviewed  = &APIError{http.StatusConflict, "KYC already reviewed"}

	ErrInvalidBody    = &APIError{http.StatusBadRequest, "Invalid request body"}
	ErrRouteNotFound  = &APIError{http.StatusNotFound, "Not Found"}
	ErrInternalServer = &APIError{http.StatusInternalServerError, "Internal server error"}
)

// parseErrorResponse turns a non-2xx response body into an *APIError. Bodies
// that are not {"detail": "..."} fall back to the status text.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Detail != "" {
		return &APIError{StatusCode: resp.StatusCode, Detail: errResp.Detail}
	}
	return &APIError{
		StatusCode: resp.StatusCode,
		Detail:     fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}

package http

import (
	"net/http"

	"github.com/aussiebroadwan/smartbank/internal/smartbank/domain"
	"github.com/aussiebroadwan/smartbank/internal/smartbank/service"
	"github.com/aussiebroadwan/smartbank/pkg/bankapi"
	"github.com/aussiebroadwan/smartbank/pkg/httpx"
)

type ProfileHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Current user profile
//	@Description	Returns the stored account of the authenticated caller, including the mirrored KYC status.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	bankapi.ProfileResponse	"id, email, name, phone, role, kyc_status, created_at"
//	@Failure		401	{object}	bankapi.ErrorResponse	"Not authenticated or invalid token"
//	@Failure		404	{object}	bankapi.ErrorResponse	"User not found"
//	@Failure		500	{object}	bankapi.ErrorResponse	"Internal server error"
//	@Router			/users/me [get].
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	user, err := h.UserService.GetProfile(r.Context(), actor)
	if err != nil {
		writeServiceError(w, r, err, nil)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, profileResponse(user))
}

func profileResponse(u domain.User) bankapi.ProfileResponse {
	return bankapi.ProfileResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		Role:      string(u.Role),
		KYCStatus: string(u.KYCStatus),
		CreatedAt: u.CreatedAt,
	}
}

type AuditTrailHandler struct {
	KYCService *service.KYCService
}

// ServeHTTP godoc
//
//	@Summary		Audit trail of a user
//	@Description	Review decisions recorded against the user, oldest first. Auditors only.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"User ID"
//	@Success		200	{array}		bankapi.AuditEntry		"Audit entries"
//	@Failure		401	{object}	bankapi.ErrorResponse	"Not authenticated or invalid token"
//	@Failure		403	{object}	bankapi.ErrorResponse	"Only auditors can view audit logs"
//	@Failure		500	{object}	bankapi.ErrorResponse	"Internal server error"
//	@Router			/users/{id}/audit [get].
func (h *AuditTrailHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	entries, err := h.KYCService.AuditTrail(r.Context(), actor, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, bankapi.ErrOnlyAuditorsAudit)
		return
	}

	resp := make([]bankapi.AuditEntry, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, bankapi.AuditEntry{
			ID:        e.ID,
			UserID:    e.UserID,
			ActorID:   e.ActorID,
			ActorRole: string(e.ActorRole),
			Action:    string(e.Action),
			Timestamp: e.Timestamp,
			Details:   e.Details,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

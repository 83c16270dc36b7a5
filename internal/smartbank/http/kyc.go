package http

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/smartbank/internal/smartbank/domain"
	"github.com/aussiebroadwan/smartbank/internal/smartbank/service"
	"github.com/aussiebroadwan/smartbank/pkg/bankapi"
	"github.com/aussiebroadwan/smartbank/pkg/httpx"
)

type KYCUploadHandler struct {
	KYCService *service.KYCService
}

// ServeHTTP godoc
//
//	@Summary		Upload a KYC document
//	@Description	Submit an identity document for review. Marks the caller's KYC status SUBMITTED.
//	@Description	A customer may submit again at any time; each upload is a new document.
//	@Tags			KYC
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		bankapi.KYCUploadRequest	true	"Document"
//	@Success		200		{object}	bankapi.KYCUploadResponse	"message, kyc_id, status"
//	@Failure		400		{object}	bankapi.ErrorResponse		"Invalid input"
//	@Failure		401		{object}	bankapi.ErrorResponse		"Not authenticated or invalid token"
//	@Failure		403		{object}	bankapi.ErrorResponse		"Only customers can upload KYC"
//	@Failure		404		{object}	bankapi.ErrorResponse		"User not found"
//	@Failure		500		{object}	bankapi.ErrorResponse		"Internal server error"
//	@Router			/kyc/upload [post].
func (h *KYCUploadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	var req bankapi.KYCUploadRequest
	if !decodeBody(w, r, &req) {
		return
	}

	doc, err := h.KYCService.Upload(r.Context(), actor, service.UploadInput{
		DocumentType:   req.DocumentType,
		DocumentNumber: req.DocumentNumber,
		DocumentData:   req.DocumentData,
	})
	if err != nil {
		writeServiceError(w, r, err, bankapi.ErrOnlyCustomersUpload)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, bankapi.KYCUploadResponse{
		Message: "KYC uploaded successfully",
		KYCID:   doc.ID,
		Status:  string(doc.Status),
	})
}

type KYCMineHandler struct {
	KYCService *service.KYCService
}

// ServeHTTP godoc
//
//	@Summary		List own KYC submissions
//	@Description	The caller's documents, newest first. The document payload is not returned.
//	@Tags			KYC
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		bankapi.KYCDocument		"Submissions"
//	@Failure		401	{object}	bankapi.ErrorResponse	"Not authenticated or invalid token"
//	@Failure		403	{object}	bankapi.ErrorResponse	"Only customers can view their KYC submissions"
//	@Failure		500	{object}	bankapi.ErrorResponse	"Internal server error"
//	@Router			/kyc/me [get].
func (h *KYCMineHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	docs, err := h.KYCService.ListMine(r.Context(), actor)
	if err != nil {
		writeServiceError(w, r, err, bankapi.ErrOnlyCustomersView)
		return
	}

	resp := make([]bankapi.KYCDocument, 0, len(docs))
	for _, d := range docs {
		resp = append(resp, bankapi.KYCDocument{
			ID:             d.ID,
			DocumentType:   d.DocumentType,
			DocumentNumber: d.DocumentNumber,
			Status:         string(d.Status),
			SubmittedAt:    d.SubmittedAt,
			ReviewedAt:     d.ReviewedAt,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

type KYCPendingHandler struct {
	KYCService *service.KYCService
}

// ServeHTTP godoc
//
//	@Summary		List pending KYC documents
//	@Description	Submitted documents awaiting review, oldest first, at most 100.
//	@Tags			KYC
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		bankapi.PendingKYC		"Review queue"
//	@Failure		401	{object}	bankapi.ErrorResponse	"Not authenticated or invalid token"
//	@Failure		403	{object}	bankapi.ErrorResponse	"Only auditors can view pending KYCs"
//	@Failure		500	{object}	bankapi.ErrorResponse	"Internal server error"
//	@Router			/kyc/pending [get].
func (h *KYCPendingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	pending, err := h.KYCService.ListPending(r.Context(), actor)
	if err != nil {
		writeServiceError(w, r, err, bankapi.ErrOnlyAuditorsPending)
		return
	}

	resp := make([]bankapi.PendingKYC, 0, len(pending))
	for _, p := range pending {
		resp = append(resp, bankapi.PendingKYC{
			KYCID:          p.KYCID,
			UserID:         p.UserID,
			UserName:       p.UserName,
			UserEmail:      p.UserEmail,
			DocumentType:   p.DocumentType,
			DocumentNumber: p.DocumentNumber,
			SubmittedAt:    p.SubmittedAt,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

type KYCApproveHandler struct {
	KYCService *service.KYCService
}

// ServeHTTP godoc
//
//	@Summary		Approve a KYC document
//	@Description	Move a SUBMITTED document to APPROVED, mirror the status onto its owner and record an audit entry.
//	@Tags			KYC
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"KYC document ID"
//	@Success		200	{object}	bankapi.MessageResponse	"KYC approved successfully"
//	@Failure		401	{object}	bankapi.ErrorResponse	"Not authenticated or invalid token"
//	@Failure		403	{object}	bankapi.ErrorResponse	"Only auditors can approve KYC"
//	@Failure		404	{object}	bankapi.ErrorResponse	"KYC not found"
//	@Failure		409	{object}	bankapi.ErrorResponse	"KYC already reviewed"
//	@Failure		500	{object}	bankapi.ErrorResponse	"Internal server error"
//	@Router			/kyc/{id}/approve [put].
func (h *KYCApproveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	serveReview(w, r, h.KYCService.Approve, "KYC approved successfully", bankapi.ErrOnlyAuditorsApprove)
}

type KYCRejectHandler struct {
	KYCService *service.KYCService
}

// ServeHTTP godoc
//
//	@Summary		Reject a KYC document
//	@Description	Move a SUBMITTED document to REJECTED, mirror the status onto its owner and record an audit entry.
//	@Tags			KYC
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"KYC document ID"
//	@Success		200	{object}	bankapi.MessageResponse	"KYC rejected successfully"
//	@Failure		401	{object}	bankapi.ErrorResponse	"Not authenticated or invalid token"
//	@Failure		403	{object}	bankapi.ErrorResponse	"Only auditors can reject KYC"
//	@Failure		404	{object}	bankapi.ErrorResponse	"KYC not found"
//	@Failure		409	{object}	bankapi.ErrorResponse	"KYC already reviewed"
//	@Failure		500	{object}	bankapi.ErrorResponse	"Internal server error"
//	@Router			/kyc/{id}/reject [put].
func (h *KYCRejectHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	serveReview(w, r, h.KYCService.Reject, "KYC rejected successfully", bankapi.ErrOnlyAuditorsReject)
}

type reviewFunc func(ctx context.Context, actor service.Actor, kycID string) (domain.KYCDocument, error)

func serveReview(w http.ResponseWriter, r *http.Request, review reviewFunc, message string, forbidden *bankapi.APIError) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	if _, err := review(r.Context(), actor, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, forbidden)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, bankapi.MessageResponse{Message: message})
}

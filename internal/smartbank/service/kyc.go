package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/smartbank/internal/smartbank/domain"
	"github.com/aussiebroadwan/smartbank/internal/smartbank/store"
	"github.com/aussiebroadwan/smartbank/pkg/idx"
	"github.com/aussiebroadwan/smartbank/pkg/slogx"
)

// MaxPendingKYC caps the pending review queue returned in one call.
const MaxPendingKYC = 100

type KYCService struct {
	Store   store.Store
	Metrics Recorder

	// Now defaults to time.Now.
	Now func() time.Time
}

type UploadInput struct {
	DocumentType   string
	DocumentNumber string
	DocumentData   string
}

// Upload stores a new SUBMITTED document for the calling customer and marks
// the customer's KYC status SUBMITTED. A customer may upload again at any
// time; each upload is a separate document.
func (s *KYCService) Upload(ctx context.Context, actor Actor, in UploadInput) (domain.KYCDocument, error) {
	if domain.Role(actor.Role) != domain.RoleCustomer {
		return domain.KYCDocument{}, fmt.Errorf("%w: only customers can upload", ErrForbidden)
	}
	if err := required(
		field{"document_type", in.DocumentType},
		field{"document_number", in.DocumentNumber},
		field{"document_data", in.DocumentData},
	); err != nil {
		return domain.KYCDocument{}, err
	}

	submittedAt := now(s.Now)
	doc := domain.KYCDocument{
		ID:             idx.NewAt(submittedAt).String(),
		UserID:         actor.UserID,
		DocumentType:   in.DocumentType,
		DocumentNumber: in.DocumentNumber,
		DocumentData:   in.DocumentData,
		Status:         domain.DocumentSubmitted,
		SubmittedAt:    submittedAt,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.KYCDocuments().CreateKYCDocument(ctx, doc); err != nil {
			return err
		}
		return tx.Users().UpdateKYCStatus(ctx, actor.UserID, domain.KYCStatusSubmitted)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.KYCDocument{}, ErrUserNotFound
		}
		return domain.KYCDocument{}, fmt.Errorf("upload kyc: %w", err)
	}

	slogx.FromContext(ctx).Info("kyc uploaded",
		slog.String("kyc_id", doc.ID),
		slog.String("document_type", doc.DocumentType),
	)
	return doc, nil
}

// ListPending returns the oldest SUBMITTED documents, at most MaxPendingKYC.
func (s *KYCService) ListPending(ctx context.Context, actor Actor) ([]domain.PendingKYC, error) {
	if domain.Role(actor.Role) != domain.RoleAuditor {
		return nil, fmt.Errorf("%w: only auditors can list pending kyc", ErrForbidden)
	}
	return s.Store.KYCDocuments().ListPendingKYCDocuments(ctx, MaxPendingKYC)
}

// ListMine returns the caller's own documents, newest first.
func (s *KYCService) ListMine(ctx context.Context, actor Actor) ([]domain.KYCDocument, error) {
	if domain.Role(actor.Role) != domain.RoleCustomer {
		return nil, fmt.Errorf("%w: only customers have kyc submissions", ErrForbidden)
	}
	return s.Store.KYCDocuments().ListKYCDocumentsByUser(ctx, actor.UserID)
}

// Approve moves a SUBMITTED document to APPROVED.
func (s *KYCService) Approve(ctx context.Context, actor Actor, kycID string) (domain.KYCDocument, error) {
	return s.review(ctx, actor, kycID, domain.DocumentApproved, domain.AuditKYCApproved)
}

// Reject moves a SUBMITTED document to REJECTED.
func (s *KYCService) Reject(ctx context.Context, actor Actor, kycID string) (domain.KYCDocument, error) {
	return s.review(ctx, actor, kycID, domain.DocumentRejected, domain.AuditKYCRejected)
}

// review applies a terminal decision. The document update, the owner's
// status mirror and the audit entry commit together or not at all.
func (s *KYCService) review(
	ctx context.Context,
	actor Actor,
	kycID string,
	to domain.DocumentStatus,
	action domain.AuditAction,
) (domain.KYCDocument, error) {
	l := slogx.FromContext(ctx)

	if domain.Role(actor.Role) != domain.RoleAuditor {
		return domain.KYCDocument{}, fmt.Errorf("%w: only auditors can review kyc", ErrForbidden)
	}
	if _, err := idx.Parse(kycID); err != nil {
		return domain.KYCDocument{}, ErrKYCNotFound
	}

	reviewedAt := now(s.Now)
	var doc domain.KYCDocument

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		doc, err = tx.KYCDocuments().GetKYCDocumentByID(ctx, kycID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrKYCNotFound
			}
			return err
		}
		if doc.Status.Terminal() {
			return ErrKYCAlreadyReviewed
		}

		err = tx.KYCDocuments().ReviewKYCDocument(ctx, doc.ID, to, actor.UserID, reviewedAt)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// Lost a race with another reviewer.
				return ErrKYCAlreadyReviewed
			}
			return err
		}

		if err := tx.Users().UpdateKYCStatus(ctx, doc.UserID, to.KYCStatus()); err != nil {
			return fmt.Errorf("mirror kyc status: %w", err)
		}

		return tx.AuditLogs().AppendAuditEntry(ctx, domain.AuditEntry{
			ID:        idx.NewAt(reviewedAt).String(),
			UserID:    doc.UserID,
			ActorID:   actor.UserID,
			ActorRole: domain.Role(actor.Role),
			Action:    action,
			Timestamp: reviewedAt,
			Details:   map[string]string{"kyc_id": doc.ID},
		})
	})
	if err != nil {
		if errors.Is(err, ErrKYCNotFound) || errors.Is(err, ErrKYCAlreadyReviewed) {
			l.Info("kyc review refused", slog.String("kyc_id", kycID), slog.String("reason", err.Error()))
			return domain.KYCDocument{}, err
		}
		return domain.KYCDocument{}, fmt.Errorf("review kyc: %w", err)
	}

	doc.Status = to
	doc.ReviewedBy = &actor.UserID
	doc.ReviewedAt = &reviewedAt

	recorderOrNop(s.Metrics).KYCDecision(string(action))
	l.Info("kyc reviewed",
		slog.String("kyc_id", doc.ID),
		slog.String("subject_id", doc.UserID),
		slog.String("action", string(action)),
	)
	return doc, nil
}

// AuditTrail returns the audit entries recorded against a user.
func (s *KYCService) AuditTrail(ctx context.Context, actor Actor, userID string) ([]domain.AuditEntry, error) {
	if domain.Role(actor.Role) != domain.RoleAuditor {
		return nil, fmt.Errorf("%w: only auditors can read the audit trail", ErrForbidden)
	}
	return s.Store.AuditLogs().ListAuditEntriesByUser(ctx, userID)
}

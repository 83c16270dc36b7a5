package sqlrepo

import (
	"context"
	"time"

	"github.com/aussiebroadwan/smartbank/internal/smartbank/domain"
	"github.com/aussiebroadwan/smartbank/internal/smartbank/store/drivers/gen"
)

type kycDocumentsRepo struct {
	q    *gen.Queries
	errs errorMapper
}

func (r *kycDocumentsRepo) CreateKYCDocument(ctx context.Context, d domain.KYCDocument) error {
	err := r.q.CreateKycDocument(ctx, gen.CreateKycDocumentParams{
		ID:             d.ID,
		UserID:         d.UserID,
		DocumentType:   d.DocumentType,
		DocumentNumber: d.DocumentNumber,
		DocumentData:   d.DocumentData,
		Status:         string(d.Status),
		SubmittedAt:    d.SubmittedAt.UTC(),
	})
	return r.errs.constraint(err)
}

func (r *kycDocumentsRepo) GetKYCDocumentByID(ctx context.Context, id string) (domain.KYCDocument, error) {
	row, err := r.q.GetKycDocumentByID(ctx, id)
	if err != nil {
		return domain.KYCDocument{}, mapNotFound(err)
	}
	return gen.MapKYCDocument(row), nil
}

func (r *kycDocumentsRepo) ListPendingKYCDocuments(ctx context.Context, limit int) ([]domain.PendingKYC, error) {
	rows, err := r.q.ListPendingKycDocuments(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.PendingKYC, 0, len(rows))
	for _, row := range rows {
		out = append(out, gen.MapPendingKYC(row))
	}
	return out, nil
}

func (r *kycDocumentsRepo) ReviewKYCDocument(
	ctx context.Context,
	id string,
	status domain.DocumentStatus,
	reviewerID string,
	reviewedAt time.Time,
) error {
	return requireAffected(r.q.ReviewKycDocument(ctx, gen.ReviewKycDocumentParams{
		Status:     string(status),
		ReviewedBy: reviewerID,
		ReviewedAt: reviewedAt.UTC(),
		ID:         id,
	}))
}

func (r *kycDocumentsRepo) ListKYCDocumentsByUser(ctx context.Context, userID string) ([]domain.KYCDocument, error) {
	rows, err := r.q.ListKycDocumentsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.KYCDocument, 0, len(rows))
	for _, row := range rows {
		out = append(out, gen.MapKYCDocument(row))
	}
	return out, nil
}

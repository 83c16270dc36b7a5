package gen

import (
	"context"
	"time"
)

const kycColumns = `id, user_id, document_type, document_number, document_data, status, submitted_at, reviewed_by, reviewed_at`

func scanKycDocument(row interface{ Scan(...any) error }) (KycDocument, error) {
	var d KycDocument
	err := row.Scan(
		&d.ID,
		&d.UserID,
		&d.DocumentType,
		&d.DocumentNumber,
		&d.DocumentData,
		&d.Status,
		&d.SubmittedAt,
		&d.ReviewedBy,
		&d.ReviewedAt,
	)
	return d, err
}

const createKycDocument = `
INSERT INTO kyc_documents (id, user_id, document_type, document_number, document_data, status, submitted_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`

type CreateKycDocumentParams struct {
	ID             string
	UserID         string
	DocumentType   string
	DocumentNumber string
	DocumentData   string
	Status         string
	SubmittedAt    time.Time
}

func (q *Queries) CreateKycDocument(ctx context.Context, arg CreateKycDocumentParams) error {
	_, err := q.db.ExecContext(ctx, q.rebind(createKycDocument),
		arg.ID,
		arg.UserID,
		arg.DocumentType,
		arg.DocumentNumber,
		arg.DocumentData,
		arg.Status,
		arg.SubmittedAt,
	)
	return err
}

const getKycDocumentByID = `SELECT ` + kycColumns + ` FROM kyc_documents WHERE id = ?`

func (q *Queries) GetKycDocumentByID(ctx context.Context, id string) (KycDocument, error) {
	return scanKycDocument(q.db.QueryRowContext(ctx, q.rebind(getKycDocumentByID), id))
}

const listPendingKycDocuments = `
SELECT k.id, k.user_id, u.name, u.email, k.document_type, k.document_number, k.submitted_at
FROM kyc_documents k
JOIN users u ON u.id = k.user_id
WHERE k.status = 'SUBMITTED'
ORDER BY k.submitted_at ASC, k.id ASC
LIMIT ?`

func (q *Queries) ListPendingKycDocuments(ctx context.Context, limit int) ([]PendingKycRow, error) {
	rows, err := q.db.QueryContext(ctx, q.rebind(listPendingKycDocuments), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []PendingKycRow
	for rows.Next() {
		var i PendingKycRow
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.UserName,
			&i.UserEmail,
			&i.DocumentType,
			&i.DocumentNumber,
			&i.SubmittedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const reviewKycDocument = `
UPDATE kyc_documents
SET status = ?, reviewed_by = ?, reviewed_at = ?
WHERE id = ? AND status = 'SUBMITTED'`

type ReviewKycDocumentParams struct {
	Status     string
	ReviewedBy string
	ReviewedAt time.Time
	ID         string
}

// ReviewKycDocument returns the number of rows changed.
func (q *Queries) ReviewKycDocument(ctx context.Context, arg ReviewKycDocumentParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, q.rebind(reviewKycDocument),
		arg.Status,
		arg.ReviewedBy,
		arg.ReviewedAt,
		arg.ID,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const listKycDocumentsByUser = `
SELECT ` + kycColumns + ` FROM kyc_documents
WHERE user_id = ?
ORDER BY submitted_at DESC, id DESC`

func (q *Queries) ListKycDocumentsByUser(ctx context.Context, userID string) ([]KycDocument, error) {
	rows, err := q.db.QueryContext(ctx, q.rebind(listKycDocumentsByUser), userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []KycDocument
	for rows.Next() {
		d, err := scanKycDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

package gen

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aussiebroadwan/smartbank/internal/smartbank/domain"
)

func MapUser(row User) domain.User {
	return domain.User{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Name:         row.Name,
		Phone:        row.Phone,
		Role:         domain.Role(row.Role),
		KYCStatus:    domain.KYCStatus(row.KycStatus),
		CreatedAt:    row.CreatedAt.UTC(),
	}
}

func MapKYCDocument(row KycDocument) domain.KYCDocument {
	return domain.KYCDocument{
		ID:             row.ID,
		UserID:         row.UserID,
		DocumentType:   row.DocumentType,
		DocumentNumber: row.DocumentNumber,
		DocumentData:   row.DocumentData,
		Status:         domain.DocumentStatus(row.Status),
		SubmittedAt:    row.SubmittedAt.UTC(),
		ReviewedBy:     mapNullStringPtr(row.ReviewedBy),
		ReviewedAt:     mapNullTimePtr(row.ReviewedAt),
	}
}

func MapPendingKYC(row PendingKycRow) domain.PendingKYC {
	return domain.PendingKYC{
		KYCID:          row.ID,
		UserID:         row.UserID,
		UserName:       row.UserName,
		UserEmail:      row.UserEmail,
		DocumentType:   row.DocumentType,
		DocumentNumber: row.DocumentNumber,
		SubmittedAt:    row.SubmittedAt.UTC(),
	}
}

// AuditParams encodes e for insertion. Details are stored as a JSON object.
func AuditParams(e domain.AuditEntry) (AppendAuditLogParams, error) {
	details := e.Details
	if details == nil {
		details = map[string]string{}
	}
	raw, err := json.Marshal(details)
	if err != nil {
		return AppendAuditLogParams{}, fmt.Errorf("encode audit details: %w", err)
	}
	return AppendAuditLogParams{
		ID:        e.ID,
		UserID:    e.UserID,
		ActorID:   e.ActorID,
		ActorRole: string(e.ActorRole),
		Action:    string(e.Action),
		Timestamp: e.Timestamp.UTC(),
		Details:   string(raw),
	}, nil
}

func MapAuditEntry(row AuditLog) (domain.AuditEntry, error) {
	details := map[string]string{}
	if row.Details != "" {
		if err := json.Unmarshal([]byte(row.Details), &details); err != nil {
			return domain.AuditEntry{}, fmt.Errorf("decode audit details for %s: %w", row.ID, err)
		}
	}
	return domain.AuditEntry{
		ID:        row.ID,
		UserID:    row.UserID,
		ActorID:   row.ActorID,
		ActorRole: domain.Role(row.ActorRole),
		Action:    domain.AuditAction(row.Action),
		Timestamp: row.Timestamp.UTC(),
		Details:   details,
	}, nil
}

func mapNullStringPtr(ns sql.NullString) *string {
	if ns.Valid {
		val := ns.String
		return &val
	}
	return nil
}

func mapNullTimePtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		val := nt.Time.UTC()
		return &val
	}
	return nil
}

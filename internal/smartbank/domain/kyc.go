package domain

import "time"

// DocumentStatus is the review state of a single KYC document. SUBMITTED is
// the only state that can change; APPROVED and REJECTED are terminal.
type DocumentStatus string

const (
	DocumentSubmitted DocumentStatus = "SUBMITTED"
	DocumentApproved  DocumentStatus = "APPROVED"
	DocumentRejected  DocumentStatus = "REJECTED"
)

// Terminal reports whether no further transition is allowed from s.
func (s DocumentStatus) Terminal() bool {
	return s == DocumentApproved || s == DocumentRejected
}

// KYCStatus is the user-level status that mirrors s.
func (s DocumentStatus) KYCStatus() KYCStatus {
	return KYCStatus(s)
}

type KYCDocument struct {
	ID             string
	UserID         string
	DocumentType   string
	DocumentNumber string
	DocumentData   string
	Status         DocumentStatus
	SubmittedAt    time.Time
	ReviewedBy     *string
	ReviewedAt     *time.Time
}

// PendingKYC is a submitted document joined with the identity of its owner,
// as shown to reviewers.
type PendingKYC struct {
	KYCID          string
	UserID         string
	UserName       string
	UserEmail      string
	DocumentType   string
	DocumentNumber string
	SubmittedAt    time.Time
}

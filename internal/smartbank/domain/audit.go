package domain

import "time"

type AuditAction string

const (
	AuditKYCApproved AuditAction = "KYC_APPROVED"
	AuditKYCRejected AuditAction = "KYC_REJECTED"
)

// AuditEntry records a reviewer decision. Entries are append-only.
type AuditEntry struct {
	ID        string
	UserID    string // subject of the action
	ActorID   string
	ActorRole Role
	Action    AuditAction
	Timestamp time.Time
	Details   map[string]string
}

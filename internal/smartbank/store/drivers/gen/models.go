package gen

import (
	"database/sql"
	"time"
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Phone        string
	Role         string
	KycStatus    string
	CreatedAt    time.Time
}

type KycDocument struct {
	ID             string
	UserID         string
	DocumentType   string
	DocumentNumber string
	DocumentData   string
	Status         string
	SubmittedAt    time.Time
	ReviewedBy     sql.NullString
	ReviewedAt     sql.NullTime
}

type AuditLog struct {
	ID        string
	UserID    string
	ActorID   string
	ActorRole string
	Action    string
	Timestamp time.Time
	Details   string // JSON object
}

type PendingKycRow struct {
	ID             string
	UserID         string
	UserName       string
	UserEmail      string
	DocumentType   string
	DocumentNumber string
	SubmittedAt    time.Time
}

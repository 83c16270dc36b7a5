package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/smartbank/internal/smartbank/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. Repositories are reached through it so that a transaction
// scoped Store hands out repositories bound to the same transaction.
type Store interface {
	Users() Users
	KYCDocuments() KYCDocuments
	AuditLogs() AuditLogs

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user. A duplicate email yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// UpdateKYCStatus overwrites the user's mirrored KYC status.
	UpdateKYCStatus(ctx context.Context, userID string, status domain.KYCStatus) error

	// UpdateRole is an operator tool; no API endpoint reaches it.
	UpdateRole(ctx context.Context, userID string, role domain.Role) error

	Count(ctx context.Context) (int64, error)
}

type KYCDocuments interface {
	CreateKYCDocument(ctx context.Context, d domain.KYCDocument) error

	GetKYCDocumentByID(ctx context.Context, id string) (domain.KYCDocument, error)

	// ListPendingKYCDocuments returns up to limit SUBMITTED documents, oldest
	// first, joined with their owner's name and email.
	ListPendingKYCDocuments(ctx context.Context, limit int) ([]domain.PendingKYC, error)

	// ReviewKYCDocument moves a SUBMITTED document to status. It returns
	// ErrNotFound when no SUBMITTED document with that id exists.
	ReviewKYCDocument(
		ctx context.Context,
		id string,
		status domain.DocumentStatus,
		reviewerID string,
		reviewedAt time.Time,
	) error

	// ListKYCDocumentsByUser returns a user's documents, newest first.
	ListKYCDocumentsByUser(ctx context.Context, userID string) ([]domain.KYCDocument, error)
}

type AuditLogs interface {
	AppendAuditEntry(ctx context.Context, e domain.AuditEntry) error

	// ListAuditEntriesByUser returns entries whose subject is userID, oldest first.
	ListAuditEntriesByUser(ctx context.Context, userID string) ([]domain.AuditEntry, error)
}

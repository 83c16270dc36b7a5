package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aussiebroadwan/smartbank/internal/smartbank/domain"
	"github.com/aussiebroadwan/smartbank/internal/smartbank/store"
	"github.com/aussiebroadwan/smartbank/internal/smartbank/store/drivers/postgres"
	"github.com/aussiebroadwan/smartbank/pkg/idx"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startPostgres runs a throwaway postgres container and returns its DSN.
func startPostgres(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in -short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "smartbank",
				"POSTGRES_PASSWORD": "smartbank",
				"POSTGRES_DB":       "smartbank",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://smartbank:smartbank@%s:%s/smartbank?sslmode=disable", host, port.Port())
}

func TestPostgresStore(t *testing.T) {
	dsn := startPostgres(t)
	ctx := context.Background()

	s, err := postgres.Open(ctx, dsn)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.ApplyMigrations(), "migrations must be idempotent")

	now := time.Now().UTC().Truncate(time.Microsecond)
	customer := domain.User{
		ID: idx.New().String(), Email: "user1@test.com", PasswordHash: "hash",
		Name: "User One", Phone: "0400", Role: domain.RoleCustomer,
		KYCStatus: domain.KYCStatusPending, CreatedAt: now,
	}
	auditor := domain.User{
		ID: idx.New().String(), Email: "auditor@test.com", PasswordHash: "hash",
		Name: "Auditor", Phone: "0401", Role: domain.RoleAuditor,
		KYCStatus: domain.KYCStatusPending, CreatedAt: now,
	}
	require.NoError(t, s.Users().CreateUser(ctx, customer))
	require.NoError(t, s.Users().CreateUser(ctx, auditor))

	dup := customer
	dup.ID = idx.New().String()
	require.ErrorIs(t, s.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)

	doc := domain.KYCDocument{
		ID: idx.New().String(), UserID: customer.ID, DocumentType: "passport",
		DocumentNumber: "P1", DocumentData: "data", Status: domain.DocumentSubmitted, SubmittedAt: now,
	}

	err = s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.KYCDocuments().CreateKYCDocument(ctx, doc); err != nil {
			return err
		}
		return tx.Users().UpdateKYCStatus(ctx, customer.ID, domain.KYCStatusSubmitted)
	})
	require.NoError(t, err)

	pending, err := s.KYCDocuments().ListPendingKYCDocuments(ctx, 100)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, "user1@test.com", pending[0].UserEmail)
	require.Equal(t, now, pending[0].SubmittedAt)

	require.NoError(t, s.KYCDocuments().ReviewKYCDocument(ctx, doc.ID, domain.DocumentApproved, auditor.ID, now))
	require.ErrorIs(t,
		s.KYCDocuments().ReviewKYCDocument(ctx, doc.ID, domain.DocumentRejected, auditor.ID, now),
		store.ErrNotFound,
	)

	entry := domain.AuditEntry{
		ID: idx.New().String(), UserID: customer.ID, ActorID: auditor.ID,
		ActorRole: domain.RoleAuditor, Action: domain.AuditKYCApproved, Timestamp: now,
		Details: map[string]string{"kyc_id": doc.ID},
	}
	require.NoError(t, s.AuditLogs().AppendAuditEntry(ctx, entry))

	entries, err := s.AuditLogs().ListAuditEntriesByUser(ctx, customer.ID)
	require.NoError(t, err)
	require.Equal(t, []domain.AuditEntry{entry}, entries)

	_, err = s.DB().ExecContext(ctx, `DELETE FROM audit_logs`)
	require.Error(t, err, "audit log must reject deletes")
}

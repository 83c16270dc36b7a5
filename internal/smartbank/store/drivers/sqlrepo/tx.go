package sqlrepo

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/smartbank/internal/smartbank/store"
	"github.com/aussiebroadwan/smartbank/internal/smartbank/store/drivers/gen"
)

type txStore struct {
	tx   *sql.Tx
	q    *gen.Queries
	errs errorMapper
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // outer DB stays open

// Ping is a no-op for transactions; the connection is already held.
func (t *txStore) Ping(ctx context.Context) error {
	return nil
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users { return &usersRepo{q: t.q, errs: t.errs} }
func (t *txStore) KYCDocuments() store.KYCDocuments {
	return &kycDocumentsRepo{q: t.q, errs: t.errs}
}
func (t *txStore) AuditLogs() store.AuditLogs { return &auditLogsRepo{q: t.q, errs: t.errs} }

func (t *txStore) ApplyMigrations() error { return nil } // apply before starting a tx

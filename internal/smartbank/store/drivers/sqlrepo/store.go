// Package sqlrepo implements store.Store over database/sql. The sqlite and
// postgres drivers supply the connection, the schema migrations and the
// mapping of their constraint errors; everything else is shared.
package sqlrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aussiebroadwan/smartbank/internal/smartbank/store"
	"github.com/aussiebroadwan/smartbank/internal/smartbank/store/drivers/gen"
)

type Options struct {
	Dialect gen.Dialect

	// MapConstraint turns a driver unique violation into store.ErrAlreadyExists
	// and returns any other error unchanged.
	MapConstraint func(error) error

	// Migrate brings the schema up to date.
	Migrate func(db *sql.DB) error
}

type Store struct {
	db      *sql.DB
	q       *gen.Queries
	errs    errorMapper
	migrate func(db *sql.DB) error
}

var _ store.Store = (*Store)(nil)

func New(db *sql.DB, opts Options) *Store {
	return &Store{
		db:      db,
		q:       gen.New(db, opts.Dialect),
		errs:    errorMapper{mapConstraint: opts.MapConstraint},
		migrate: opts.Migrate,
	}
}

// DB exposes the underlying handle for drivers and tests.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) ApplyMigrations() error {
	if s.migrate == nil {
		return nil
	}
	return s.migrate(s.db)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &txStore{tx: tx, q: s.q.WithTx(tx), errs: s.errs}, nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Users() store.Users { return &usersRepo{q: s.q, errs: s.errs} }
func (s *Store) KYCDocuments() store.KYCDocuments {
	return &kycDocumentsRepo{q: s.q, errs: s.errs}
}
func (s *Store) AuditLogs() store.AuditLogs { return &auditLogsRepo{q: s.q, errs: s.errs} }

type errorMapper struct {
	mapConstraint func(error) error
}

func (m errorMapper) constraint(err error) error {
	if err == nil || m.mapConstraint == nil {
		return err
	}
	return m.mapConstraint(err)
}

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// requireAffected maps an update that touched nothing onto ErrNotFound.
func requireAffected(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

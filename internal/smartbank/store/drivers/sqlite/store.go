package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/aussiebroadwan/smartbank/internal/smartbank/store"
	"github.com/aussiebroadwan/smartbank/internal/smartbank/store/drivers/gen"
	"github.com/aussiebroadwan/smartbank/internal/smartbank/store/drivers/sqlrepo"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Store struct {
	*sqlrepo.Store
}

// NewStore opens the database at dsn. ":memory:" gives a private database
// that lives as long as the Store.
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", withParams(dsn))
	if err != nil {
		return nil, err
	}

	// Every new connection to :memory: is a fresh empty database.
	if isMemory(dsn) {
		db.SetMaxOpenConns(1)
	}

	// Enforce FKs. The DSN pragma covers pooled connections opened later.
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		Store: sqlrepo.New(db, sqlrepo.Options{
			Dialect:       gen.SQLite,
			MapConstraint: mapConstraint,
			Migrate:       applyMigrations,
		}),
	}, nil
}

// withParams makes sure every connection parses times the same way and
// enforces foreign keys.
func withParams(dsn string) string {
	if !strings.Contains(dsn, "_time_format=") {
		dsn = appendParam(dsn, "_time_format=sqlite")
	}
	if !strings.Contains(dsn, "foreign_keys") {
		dsn = appendParam(dsn, "_pragma=foreign_keys(1)")
	}
	return dsn
}

func appendParam(dsn, param string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + param
}

func isMemory(dsn string) bool {
	return strings.HasPrefix(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// mapConstraint turns a unique or primary key violation into ErrAlreadyExists.
func mapConstraint(err error) error {
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return store.ErrAlreadyExists
		}
	}
	return err
}

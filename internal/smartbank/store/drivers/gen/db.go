// Package gen holds the SQL shared by the database/sql based drivers. Each
// query is written once with ? placeholders and rebound for the dialect the
// Queries value was built for.
package gen

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
)

type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

type Dialect int

const (
	// SQLite accepts ? placeholders as written.
	SQLite Dialect = iota
	// Postgres needs ordinal $N placeholders.
	Postgres
)

type Queries struct {
	db      DBTX
	dialect Dialect
}

func New(db DBTX, dialect Dialect) *Queries {
	return &Queries{db: db, dialect: dialect}
}

// WithTx returns a Queries bound to tx.
func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx, dialect: q.dialect}
}

func (q *Queries) rebind(query string) string {
	if q.dialect != Postgres {
		return query
	}
	return Rebind(query)
}

// Rebind rewrites ? placeholders as $1, $2, ... Queries in this package
// never contain a literal question mark.
func Rebind(query string) string {
	var (
		b strings.Builder
		n int
	)
	b.Grow(len(query) + 8)
	for _, r := range query {
		if r != '?' {
			b.WriteRune(r)
			continue
		}
		n++
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}

package gen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRebind(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"SELECT 1", "SELECT 1"},
		{"SELECT * FROM users WHERE id = ?", "SELECT * FROM users WHERE id = $1"},
		{"UPDATE t SET a = ?, b = ? WHERE id = ?", "UPDATE t SET a = $1, b = $2 WHERE id = $3"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Rebind(tt.in))
	}
}

func TestQueriesRebindPerDialect(t *testing.T) {
	require.Equal(t, getUserByID, New(nil, SQLite).rebind(getUserByID))
	require.Contains(t, New(nil, Postgres).rebind(reviewKycDocument), "WHERE id = $4 AND status = 'SUBMITTED'")
}

package gen

import (
	"context"
	"time"
)

const appendAuditLog = `
INSERT INTO audit_logs (id, user_id, actor_id, actor_role, action, occurred_at, details)
VALUES (?, ?, ?, ?, ?, ?, ?)`

type AppendAuditLogParams struct {
	ID        string
	UserID    string
	ActorID   string
	ActorRole string
	Action    string
	Timestamp time.Time
	Details   string
}

func (q *Queries) AppendAuditLog(ctx context.Context, arg AppendAuditLogParams) error {
	_, err := q.db.ExecContext(ctx, q.rebind(appendAuditLog),
		arg.ID,
		arg.UserID,
		arg.ActorID,
		arg.ActorRole,
		arg.Action,
		arg.Timestamp,
		arg.Details,
	)
	return err
}

const listAuditLogsByUser = `
SELECT id, user_id, actor_id, actor_role, action, occurred_at, details
FROM audit_logs
WHERE user_id = ?
ORDER BY occurred_at ASC, id ASC`

func (q *Queries) ListAuditLogsByUser(ctx context.Context, userID string) ([]AuditLog, error) {
	rows, err := q.db.QueryContext(ctx, q.rebind(listAuditLogsByUser), userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []AuditLog
	for rows.Next() {
		var i AuditLog
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.ActorID,
			&i.ActorRole,
			&i.Action,
			&i.Timestamp,
			&i.Details,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

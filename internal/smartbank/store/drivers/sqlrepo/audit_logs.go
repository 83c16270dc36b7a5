package sqlrepo

import (
	"context"

	"github.com/aussiebroadwan/smartbank/internal/smartbank/domain"
	"github.com/aussiebroadwan/smartbank/internal/smartbank/store/drivers/gen"
)

type auditLogsRepo struct {
	q    *gen.Queries
	errs errorMapper
}

func (r *auditLogsRepo) AppendAuditEntry(ctx context.Context, e domain.AuditEntry) error {
	params, err := gen.AuditParams(e)
	if err != nil {
		return err
	}
	return r.errs.constraint(r.q.AppendAuditLog(ctx, params))
}

func (r *auditLogsRepo) ListAuditEntriesByUser(ctx context.Context, userID string) ([]domain.AuditEntry, error) {
	rows, err := r.q.ListAuditLogsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.AuditEntry, 0, len(rows))
	for _, row := range rows {
		e, err := gen.MapAuditEntry(row)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

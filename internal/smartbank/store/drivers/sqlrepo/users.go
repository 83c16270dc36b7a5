package sqlrepo

import (
	"context"

	"github.com/aussiebroadwan/smartbank/internal/smartbank/domain"
	"github.com/aussiebroadwan/smartbank/internal/smartbank/store/drivers/gen"
)

type usersRepo struct {
	q    *gen.Queries
	errs errorMapper
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	err := r.q.CreateUser(ctx, gen.CreateUserParams{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		Phone:        u.Phone,
		Role:         string(u.Role),
		KycStatus:    string(u.KYCStatus),
		CreatedAt:    u.CreatedAt.UTC(),
	})
	return r.errs.constraint(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row, err := r.q.GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return gen.MapUser(row), nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row, err := r.q.GetUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return gen.MapUser(row), nil
}

func (r *usersRepo) UpdateKYCStatus(ctx context.Context, userID string, status domain.KYCStatus) error {
	return requireAffected(r.q.UpdateUserKycStatus(ctx, string(status), userID))
}

func (r *usersRepo) UpdateRole(ctx context.Context, userID string, role domain.Role) error {
	return requireAffected(r.q.UpdateUserRole(ctx, string(role), userID))
}

func (r *usersRepo) Count(ctx context.Context) (int64, error) {
	return r.q.CountUsers(ctx)
}

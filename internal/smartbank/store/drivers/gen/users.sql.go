package gen

import (
	"context"
	"time"
)

const userColumns = `id, email, password_hash, name, phone, role, kyc_status, created_at`

func scanUser(row interface{ Scan(...any) error }) (User, error) {
	var u User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.Phone,
		&u.Role,
		&u.KycStatus,
		&u.CreatedAt,
	)
	return u, err
}

const createUser = `
INSERT INTO users (id, email, password_hash, name, phone, role, kyc_status, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

type CreateUserParams struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Phone        string
	Role         string
	KycStatus    string
	CreatedAt    time.Time
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) error {
	_, err := q.db.ExecContext(ctx, q.rebind(createUser),
		arg.ID,
		arg.Email,
		arg.PasswordHash,
		arg.Name,
		arg.Phone,
		arg.Role,
		arg.KycStatus,
		arg.CreatedAt,
	)
	return err
}

const getUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = ?`

func (q *Queries) GetUserByID(ctx context.Context, id string) (User, error) {
	return scanUser(q.db.QueryRowContext(ctx, q.rebind(getUserByID), id))
}

const getUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = ?`

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	return scanUser(q.db.QueryRowContext(ctx, q.rebind(getUserByEmail), email))
}

const updateUserKycStatus = `UPDATE users SET kyc_status = ? WHERE id = ?`

// UpdateUserKycStatus returns the number of rows changed.
func (q *Queries) UpdateUserKycStatus(ctx context.Context, status, id string) (int64, error) {
	res, err := q.db.ExecContext(ctx, q.rebind(updateUserKycStatus), status, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const updateUserRole = `UPDATE users SET role = ? WHERE id = ?`

func (q *Queries) UpdateUserRole(ctx context.Context, role, id string) (int64, error) {
	res, err := q.db.ExecContext(ctx, q.rebind(updateUserRole), role, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const countUsers = `SELECT COUNT(*) FROM users`

func (q *Queries) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countUsers).Scan(&n)
	return n, err
}

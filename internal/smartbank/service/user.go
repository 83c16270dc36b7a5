package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aussiebroadwan/smartbank/internal/smartbank/domain"
	"github.com/aussiebroadwan/smartbank/internal/smartbank/store"
	"github.com/aussiebroadwan/smartbank/pkg/cryptox"
	"github.com/aussiebroadwan/smartbank/pkg/idx"
	"github.com/aussiebroadwan/smartbank/pkg/jwtx"
	"github.com/aussiebroadwan/smartbank/pkg/slogx"
)

type UserService struct {
	Store   store.Store
	Tokens  jwtx.Signer
	Hasher  cryptox.Hasher
	Metrics Recorder

	// Now defaults to time.Now.
	Now func() time.Time

	dummyOnce sync.Once
	dummy     string
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

// Register creates a customer account with KYC status PENDING. The role is
// always customer; auditors are promoted out of band. Any non-empty password
// is accepted as is, whitespace included.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	l := slogx.FromContext(ctx)

	email, err := normalizeEmail(in.Email)
	if err != nil {
		return domain.User{}, err
	}
	if in.Password == "" {
		return domain.User{}, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	if err := required(
		field{"name", in.Name},
		field{"phone", in.Phone},
	); err != nil {
		return domain.User{}, err
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: hash,
		Name:         in.Name,
		Phone:        in.Phone,
		Role:         domain.RoleCustomer,
		KYCStatus:    domain.KYCStatusPending,
		CreatedAt:    now(s.Now),
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailAlreadyExists
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	l.Info("user registered", slog.String("user_id", user.ID))
	return user, nil
}

// Login checks the credentials and issues an access token. Unknown emails
// and wrong passwords, blank ones included, are indistinguishable to the
// caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	l := slogx.FromContext(ctx)
	metrics := recorderOrNop(s.Metrics)

	normalized, err := normalizeEmail(email)
	if err != nil {
		return "", domain.User{}, err
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, normalized)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return "", domain.User{}, fmt.Errorf("lookup user: %w", err)
		}
		// Burn the same bcrypt work as a real check.
		cryptox.VerifyPassword(password, s.dummyHash())
		metrics.LoginAttempt(false)
		l.Info("login failed", slog.String("reason", "unknown_email"))
		return "", domain.User{}, ErrInvalidCredentials
	}

	if !cryptox.VerifyPassword(password, user.PasswordHash) {
		metrics.LoginAttempt(false)
		l.Info("login failed", slog.String("reason", "bad_password"), slog.String("user_id", user.ID))
		return "", domain.User{}, ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(user.Email, user.ID, string(user.Role))
	if err != nil {
		return "", domain.User{}, fmt.Errorf("issue token: %w", err)
	}

	metrics.LoginAttempt(true)
	l.Info("login succeeded", slog.String("user_id", user.ID), slog.String("role", string(user.Role)))
	return token, user, nil
}

// GetProfile returns the stored user for the caller.
func (s *UserService) GetProfile(ctx context.Context, actor Actor) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// dummyHash is hashed at the service's cost so an unknown email costs the
// same as a wrong password.
func (s *UserService) dummyHash() string {
	s.dummyOnce.Do(func() {
		s.dummy, _ = s.Hasher.Hash("smartbank-timing-equalizer")
	})
	return s.dummy
}

// now returns the current time in UTC truncated to what every driver can
// store losslessly.
func now(clock func() time.Time) time.Time {
	if clock == nil {
		clock = time.Now
	}
	return clock().UTC().Truncate(time.Microsecond)
}

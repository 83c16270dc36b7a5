package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/smartbank/internal/smartbank/domain"
	"github.com/aussiebroadwan/smartbank/internal/smartbank/store/drivers/sqlite"
	"github.com/aussiebroadwan/smartbank/pkg/cryptox"
	"github.com/aussiebroadwan/smartbank/pkg/jwtx"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

// fastHasher keeps the suite quick, production uses bcrypt.DefaultCost.
var fastHasher = cryptox.Hasher{Cost: bcrypt.MinCost}

// fakeClock advances one second per reading so ordering by time is stable.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

type countingRecorder struct {
	logins    map[bool]int
	decisions map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{logins: map[bool]int{}, decisions: map[string]int{}}
}

func (r *countingRecorder) LoginAttempt(success bool) { r.logins[success]++ }
func (r *countingRecorder) KYCDecision(action string) { r.decisions[action]++ }

type fixture struct {
	store   *sqlite.Store
	tokens  *jwtx.HS256
	users   *UserService
	kyc     *KYCService
	metrics *countingRecorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })

	tokens, err := jwtx.NewHS256(testSecret, "smartbank", time.Hour)
	require.NoError(t, err)

	clock := &fakeClock{t: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	metrics := newCountingRecorder()

	return &fixture{
		store:   s,
		tokens:  tokens,
		metrics: metrics,
		users:   &UserService{Store: s, Tokens: tokens, Hasher: fastHasher, Metrics: metrics, Now: clock.Now},
		kyc:     &KYCService{Store: s, Metrics: metrics, Now: clock.Now},
	}
}

// register creates a user and, for auditors, promotes them the way an
// operator would.
func (f *fixture) register(t *testing.T, email string, role domain.Role) (domain.User, Actor) {
	t.Helper()
	ctx := context.Background()

	u, err := f.users.Register(ctx, RegisterInput{
		Email:    email,
		Password: "password123",
		Name:     "Name " + email,
		Phone:    "0400000000",
	})
	require.NoError(t, err)

	if role != domain.RoleCustomer {
		require.NoError(t, f.store.Users().UpdateRole(ctx, u.ID, role))
		u.Role = role
	}
	return u, Actor{UserID: u.ID, Email: u.Email, Role: string(u.Role)}
}

func (f *fixture) upload(t *testing.T, actor Actor, number string) domain.KYCDocument {
	t.Helper()

	doc, err := f.kyc.Upload(context.Background(), actor, UploadInput{
		DocumentType:   "passport",
		DocumentNumber: number,
		DocumentData:   "base64data",
	})
	require.NoError(t, err)
	return doc
}

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/aussiebroadwan/smartbank/internal/smartbank/domain"
	"github.com/stretchr/testify/require"
)

func TestUpload(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("customer upload marks the user submitted", func(t *testing.T) {
		f := newFixture(t)
		u, actor := f.register(t, "user1@test.com", domain.RoleCustomer)

		doc := f.upload(t, actor, "P123")
		require.NotEmpty(t, doc.ID)
		require.Equal(t, u.ID, doc.UserID)
		require.Equal(t, domain.DocumentSubmitted, doc.Status)
		require.Nil(t, doc.ReviewedBy)
		require.Nil(t, doc.ReviewedAt)

		stored, err := f.store.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, domain.KYCStatusSubmitted, stored.KYCStatus)
	})

	t.Run("re-upload after rejection starts over", func(t *testing.T) {
		f := newFixture(t)
		u, customer := f.register(t, "user1@test.com", domain.RoleCustomer)
		_, auditor := f.register(t, "auditor@test.com", domain.RoleAuditor)

		first := f.upload(t, customer, "P1")
		_, err := f.kyc.Reject(ctx, auditor, first.ID)
		require.NoError(t, err)

		second := f.upload(t, customer, "P2")
		require.NotEqual(t, first.ID, second.ID)

		stored, err := f.store.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, domain.KYCStatusSubmitted, stored.KYCStatus)

		mine, err := f.kyc.ListMine(ctx, customer)
		require.NoError(t, err)
		require.Len(t, mine, 2)
		require.Equal(t, second.ID, mine[0].ID)
		require.Equal(t, domain.DocumentRejected, mine[1].Status)
	})

	t.Run("auditors cannot upload", func(t *testing.T) {
		f := newFixture(t)
		_, auditor := f.register(t, "auditor@test.com", domain.RoleAuditor)

		_, err := f.kyc.Upload(ctx, auditor, UploadInput{
			DocumentType: "passport", DocumentNumber: "P1", DocumentData: "d",
		})
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("missing fields", func(t *testing.T) {
		f := newFixture(t)
		_, actor := f.register(t, "user1@test.com", domain.RoleCustomer)

		for _, in := range []UploadInput{
			{DocumentNumber: "P1", DocumentData: "d"},
			{DocumentType: "passport", DocumentData: "d"},
			{DocumentType: "passport", DocumentNumber: "P1", DocumentData: " "},
		} {
			_, err := f.kyc.Upload(ctx, actor, in)
			require.ErrorIs(t, err, ErrInvalidInput)
		}

		mine, err := f.kyc.ListMine(ctx, actor)
		require.NoError(t, err)
		require.Empty(t, mine)
	})

	t.Run("deleted user", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.kyc.Upload(ctx, Actor{UserID: "01HZZZZZZZZZZZZZZZZZZZZZZZ", Role: "customer"}, UploadInput{
			DocumentType: "passport", DocumentNumber: "P1", DocumentData: "d",
		})
		require.Error(t, err)

		pending, err := f.store.KYCDocuments().ListPendingKYCDocuments(ctx, MaxPendingKYC)
		require.NoError(t, err)
		require.Empty(t, pending)
	})
}

func TestListPending(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("oldest first with owner identity", func(t *testing.T) {
		f := newFixture(t)
		_, alice := f.register(t, "alice@test.com", domain.RoleCustomer)
		_, bob := f.register(t, "bob@test.com", domain.RoleCustomer)
		_, auditor := f.register(t, "auditor@test.com", domain.RoleAuditor)

		a := f.upload(t, alice, "A1")
		b := f.upload(t, bob, "B1")

		pending, err := f.kyc.ListPending(ctx, auditor)
		require.NoError(t, err)
		require.Len(t, pending, 2)
		require.Equal(t, a.ID, pending[0].KYCID)
		require.Equal(t, "alice@test.com", pending[0].UserEmail)
		require.Equal(t, "Name alice@test.com", pending[0].UserName)
		require.Equal(t, b.ID, pending[1].KYCID)
		require.Equal(t, "B1", pending[1].DocumentNumber)
	})

	t.Run("reviewed documents drop out", func(t *testing.T) {
		f := newFixture(t)
		_, alice := f.register(t, "alice@test.com", domain.RoleCustomer)
		_, auditor := f.register(t, "auditor@test.com", domain.RoleAuditor)

		a := f.upload(t, alice, "A1")
		_, err := f.kyc.Approve(ctx, auditor, a.ID)
		require.NoError(t, err)

		pending, err := f.kyc.ListPending(ctx, auditor)
		require.NoError(t, err)
		require.Empty(t, pending)
	})

	t.Run("capped", func(t *testing.T) {
		f := newFixture(t)
		_, alice := f.register(t, "alice@test.com", domain.RoleCustomer)
		_, auditor := f.register(t, "auditor@test.com", domain.RoleAuditor)

		var first string
		for i := range MaxPendingKYC + 5 {
			doc := f.upload(t, alice, fmt.Sprintf("N%03d", i))
			if i == 0 {
				first = doc.ID
			}
		}

		pending, err := f.kyc.ListPending(ctx, auditor)
		require.NoError(t, err)
		require.Len(t, pending, MaxPendingKYC)
		require.Equal(t, first, pending[0].KYCID)
	})

	t.Run("customers are refused", func(t *testing.T) {
		f := newFixture(t)
		_, alice := f.register(t, "alice@test.com", domain.RoleCustomer)

		_, err := f.kyc.ListPending(ctx, alice)
		require.ErrorIs(t, err, ErrForbidden)
	})
}

func TestReview(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name   string
		review func(*KYCService, context.Context, Actor, string) (domain.KYCDocument, error)
		status domain.DocumentStatus
		user   domain.KYCStatus
		action domain.AuditAction
	}{
		{"approve", (*KYCService).Approve, domain.DocumentApproved, domain.KYCStatusApproved, domain.AuditKYCApproved},
		{"reject", (*KYCService).Reject, domain.DocumentRejected, domain.KYCStatusRejected, domain.AuditKYCRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			u, customer := f.register(t, "user1@test.com", domain.RoleCustomer)
			reviewer, auditor := f.register(t, "auditor@test.com", domain.RoleAuditor)
			doc := f.upload(t, customer, "P123")

			got, err := tt.review(f.kyc, ctx, auditor, doc.ID)
			require.NoError(t, err)
			require.Equal(t, tt.status, got.Status)
			require.NotNil(t, got.ReviewedBy)
			require.Equal(t, reviewer.ID, *got.ReviewedBy)
			require.NotNil(t, got.ReviewedAt)

			stored, err := f.store.KYCDocuments().GetKYCDocumentByID(ctx, doc.ID)
			require.NoError(t, err)
			require.Equal(t, tt.status, stored.Status)
			require.Equal(t, got.ReviewedAt.UTC(), stored.ReviewedAt.UTC())

			owner, err := f.store.Users().GetUserByID(ctx, u.ID)
			require.NoError(t, err)
			require.Equal(t, tt.user, owner.KYCStatus)

			entries, err := f.kyc.AuditTrail(ctx, auditor, u.ID)
			require.NoError(t, err)
			require.Len(t, entries, 1)
			require.Equal(t, tt.action, entries[0].Action)
			require.Equal(t, reviewer.ID, entries[0].ActorID)
			require.Equal(t, domain.RoleAuditor, entries[0].ActorRole)
			require.Equal(t, map[string]string{"kyc_id": doc.ID}, entries[0].Details)
			require.Equal(t, 1, f.metrics.decisions[string(tt.action)])

			// A second decision on the same document is refused and leaves no trace.
			_, err = f.kyc.Approve(ctx, auditor, doc.ID)
			require.ErrorIs(t, err, ErrKYCAlreadyReviewed)
			_, err = f.kyc.Reject(ctx, auditor, doc.ID)
			require.ErrorIs(t, err, ErrKYCAlreadyReviewed)

			entries, err = f.kyc.AuditTrail(ctx, auditor, u.ID)
			require.NoError(t, err)
			require.Len(t, entries, 1)

			owner, err = f.store.Users().GetUserByID(ctx, u.ID)
			require.NoError(t, err)
			require.Equal(t, tt.user, owner.KYCStatus)
		})
	}
}

func TestReview_Refusals(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t)
	u, customer := f.register(t, "user1@test.com", domain.RoleCustomer)
	_, auditor := f.register(t, "auditor@test.com", domain.RoleAuditor)
	doc := f.upload(t, customer, "P123")

	t.Run("unknown document", func(t *testing.T) {
		_, err := f.kyc.Approve(ctx, auditor, "01HZZZZZZZZZZZZZZZZZZZZZZZ")
		require.ErrorIs(t, err, ErrKYCNotFound)
		_, err = f.kyc.Reject(ctx, auditor, "does-not-exist")
		require.ErrorIs(t, err, ErrKYCNotFound)
	})

	t.Run("customers cannot review", func(t *testing.T) {
		_, err := f.kyc.Approve(ctx, customer, doc.ID)
		require.ErrorIs(t, err, ErrForbidden)
		_, err = f.kyc.Reject(ctx, customer, doc.ID)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("audit trail is auditor only", func(t *testing.T) {
		_, err := f.kyc.AuditTrail(ctx, customer, u.ID)
		require.ErrorIs(t, err, ErrForbidden)
	})

	stored, err := f.store.KYCDocuments().GetKYCDocumentByID(ctx, doc.ID)
	require.NoError(t, err)
	require.Equal(t, domain.DocumentSubmitted, stored.Status)

	entries, err := f.kyc.AuditTrail(ctx, auditor, u.ID)
	require.NoError(t, err)
	require.Empty(t, entries)
}

// The role is read from the token, not the store. A customer promoted after
// login keeps acting as a customer until they log in again.
func TestRoleFromTokenIsTrusted(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t)
	u, customer := f.register(t, "user1@test.com", domain.RoleCustomer)

	token, _, err := f.users.Login(ctx, "user1@test.com", "password123")
	require.NoError(t, err)

	require.NoError(t, f.store.Users().UpdateRole(ctx, u.ID, domain.RoleAuditor))

	res := f.tokens.Validate(token)
	require.True(t, res.OK())
	stale := Actor{UserID: res.Claims.UserID, Email: res.Claims.Email(), Role: res.Claims.Role}

	_, err = f.kyc.ListPending(ctx, stale)
	require.ErrorIs(t, err, ErrForbidden)

	// Still a customer as far as the token goes.
	f.upload(t, customer, "P1")

	token, _, err = f.users.Login(ctx, "user1@test.com", "password123")
	require.NoError(t, err)
	res = f.tokens.Validate(token)
	require.Equal(t, "auditor", res.Claims.Role)
}

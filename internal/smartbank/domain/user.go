package domain

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAuditor  Role = "auditor"
)

func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleAuditor
}

// KYCStatus is the verification state mirrored onto a user. It follows the
// status of the user's most recent document, with PENDING meaning nothing
// has been submitted yet.
type KYCStatus string

const (
	KYCStatusPending   KYCStatus = "PENDING"
	KYCStatusSubmitted KYCStatus = "SUBMITTED"
	KYCStatusApproved  KYCStatus = "APPROVED"
	KYCStatusRejected  KYCStatus = "REJECTED"
)

type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt encoded
	Name         string
	Phone        string
	Role         Role
	KYCStatus    KYCStatus
	CreatedAt    time.Time
}

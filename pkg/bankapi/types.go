package bankapi

import "time"

// TokenTypeBearer is the token_type returned by login. Lowercase to match
// what existing clients already compare against.
const TokenTypeBearer = "bearer"

// ============================================================================
// Auth
// ============================================================================

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

type RegisterResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Email   string `json:"email"`
	Role    string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`

	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int `json:"expires_in,omitempty"`
}

// ============================================================================
// Users
// ============================================================================

type ProfileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	KYCStatus string    `json:"kyc_status"`
	CreatedAt time.Time `json:"created_at"`
}

type AuditEntry struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	ActorID   string            `json:"actor_id"`
	ActorRole string            `json:"actor_role"`
	Action    string            `json:"action"`
	Timestamp time.Time         `json:"timestamp"`
	Details   map[string]string `json:"details"`
}

// ============================================================================
// KYC
// ============================================================================

type KYCUploadRequest struct {
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number"`
	DocumentData   string `json:"document_data"`
}

type KYCUploadResponse struct {
	Message string `json:"message"`
	KYCID   string `json:"kyc_id"`
	Status  string `json:"status"`
}

// PendingKYC is one row of the reviewer queue.
type PendingKYC struct {
	KYCID          string    `json:"kyc_id"`
	UserID         string    `json:"user_id"`
	UserName       string    `json:"user_name"`
	UserEmail      string    `json:"user_email"`
	DocumentType   string    `json:"document_type"`
	DocumentNumber string    `json:"document_number"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

// KYCDocument is a customer's view of one of their own submissions. The
// document payload is not echoed back.
type KYCDocument struct {
	ID             string     `json:"id"`
	DocumentType   string     `json:"document_type"`
	DocumentNumber string     `json:"document_number"`
	Status         string     `json:"status"`
	SubmittedAt    time.Time  `json:"submitted_at"`
	ReviewedAt     *time.Time `json:"reviewed_at,omitempty"`
}

// ============================================================================
// Misc
// ============================================================================

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}

// BannerResponse is served at the API root.
type BannerResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

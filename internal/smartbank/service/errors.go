package service

import "errors"

var (
	// ErrInvalidInput wraps a description of the offending field.
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrUserNotFound       = errors.New("user not found")
	ErrKYCNotFound        = errors.New("kyc not found")
	ErrKYCAlreadyReviewed = errors.New("kyc already reviewed")
)

// Actor is the authenticated caller on whose behalf a service method runs.
// The role is the one carried by the caller's token.
type Actor struct {
	UserID string
	Email  string
	Role   string
}

// Recorder receives business events for metrics. A nil Recorder is valid.
type Recorder interface {
	LoginAttempt(success bool)
	KYCDecision(action string)
}

type nopRecorder struct{}

func (nopRecorder) LoginAttempt(bool)  {}
func (nopRecorder) KYCDecision(string) {}

func recorderOrNop(r Recorder) Recorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}

package jwtx

import "errors"

// Verifier validates a token and reports what it found.
type Verifier interface {
	Validate(token string) Result
}

// Status is the outcome of validating a token. Callers present every
// non-Valid status the same way to clients; the distinction exists for logs.
type Status int

const (
	Valid Status = iota
	Expired
	Malformed
	BadSignature
)

func (s Status) String() string {
	switch s {
	case Valid:
		return "valid"
	case Expired:
		return "expired"
	case Malformed:
		return "malformed"
	case BadSignature:
		return "bad_signature"
	default:
		return "unknown"
	}
}

var (
	ErrMalformed    = errors.New("jwtx: malformed token")
	ErrInvalidSig   = errors.New("jwtx: invalid signature")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// Result carries the claims of a valid token, or the reason it was
// rejected. Claims are zero unless Status is Valid.
type Result struct {
	Status Status
	Claims Claims
	cause  error
}

// OK reports whether the token validated.
func (r Result) OK() bool { return r.Status == Valid }

// Err maps the status to a sentinel error, wrapping the underlying parser
// error when there is one. It returns nil for valid tokens.
func (r Result) Err() error {
	var sentinel error
	switch r.Status {
	case Valid:
		return nil
	case Expired:
		sentinel = ErrExpired
	case BadSignature:
		sentinel = ErrInvalidSig
	default:
		sentinel = ErrMalformed
	}

	if r.cause == nil {
		return sentinel
	}
	return errors.Join(sentinel, r.cause)
}

func invalid(status Status, cause error) Result {
	return Result{Status: status, cause: cause}
}

package service

import (
	"fmt"
	"net/mail"
	"strings"
)

// normalizeEmail trims and lowercases an address and checks it is a bare
// addr-spec (no display name, no angle brackets).
func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return "", fmt.Errorf("%w: email is not a valid email address", ErrInvalidInput)
	}
	if at := strings.LastIndexByte(email, '@'); !strings.Contains(email[at+1:], ".") {
		return "", fmt.Errorf("%w: email domain must contain a dot", ErrInvalidInput)
	}
	return email, nil
}

type field struct {
	name  string
	value string
}

// required checks that each field is non-blank, in order.
func required(fields ...field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidInput, f.name)
		}
	}
	return nil
}

package bankapi

import (
	"context"
	"net/http"
	"net/url"
)

// Register creates a customer account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	return call[RegisterResponse](ctx, c, http.MethodPost, "/auth/register", "", req, http.StatusCreated)
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	req := LoginRequest{Email: email, Password: password}
	return call[TokenResponse](ctx, c, http.MethodPost, "/auth/login", "", req, http.StatusOK)
}

// Profile returns the caller's own account.
func (c *Client) Profile(ctx context.Context, token string) (*ProfileResponse, error) {
	return call[ProfileResponse](ctx, c, http.MethodGet, "/users/me", token, nil, http.StatusOK)
}

// AuditTrail returns the review history recorded against a user. Auditors only.
func (c *Client) AuditTrail(ctx context.Context, token, userID string) ([]AuditEntry, error) {
	out, err := call[[]AuditEntry](ctx, c, http.MethodGet, "/users/"+url.PathEscape(userID)+"/audit", token, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

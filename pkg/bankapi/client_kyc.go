package bankapi

import (
	"context"
	"net/http"
	"net/url"
)

// UploadKYC submits a document for review. Customers only.
func (c *Client) UploadKYC(ctx context.Context, token string, req KYCUploadRequest) (*KYCUploadResponse, error) {
	return call[KYCUploadResponse](ctx, c, http.MethodPost, "/kyc/upload", token, req, http.StatusOK)
}

// MyKYC lists the caller's submissions, newest first. Customers only.
func (c *Client) MyKYC(ctx context.Context, token string) ([]KYCDocument, error) {
	out, err := call[[]KYCDocument](ctx, c, http.MethodGet, "/kyc/me", token, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// ListPending returns the review queue, oldest first. Auditors only.
func (c *Client) ListPending(ctx context.Context, token string) ([]PendingKYC, error) {
	out, err := call[[]PendingKYC](ctx, c, http.MethodGet, "/kyc/pending", token, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// Approve accepts a submitted document. Auditors only.
func (c *Client) Approve(ctx context.Context, token, kycID string) (*MessageResponse, error) {
	return call[MessageResponse](ctx, c, http.MethodPut, "/kyc/"+url.PathEscape(kycID)+"/approve", token, nil, http.StatusOK)
}

// Reject refuses a submitted document. Auditors only.
func (c *Client) Reject(ctx context.Context, token, kycID string) (*MessageResponse, error) {
	return call[MessageResponse](ctx, c, http.MethodPut, "/kyc/"+url.PathEscape(kycID)+"/reject", token, nil, http.StatusOK)
}

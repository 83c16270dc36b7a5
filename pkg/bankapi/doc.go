/*
Package bankapi holds the wire contract of the SmartBank KYC API and a small
client for it.

The request and response types are shared by the server handlers and by
callers, so both sides agree on field names by construction. Errors travel
as {"detail": "..."} bodies and surface on the client as *APIError:

	client := bankapi.NewClient("http://localhost:8080")

	_, err := client.Register(ctx, bankapi.RegisterRequest{
		Email:    "user1@test.com",
		Password: "password123",
		Name:     "User One",
		Phone:    "0400000001",
	})

	tok, err := client.Login(ctx, "user1@test.com", "password123")

	kyc, err := client.UploadKYC(ctx, tok.AccessToken, bankapi.KYCUploadRequest{
		DocumentType:   "passport",
		DocumentNumber: "P123",
		DocumentData:   "base64data",
	})

Auditors review with ListPending, Approve and Reject. A refused call can be
matched on its status:

	var apiErr *bankapi.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict {
		// already reviewed
	}
*/
package bankapi

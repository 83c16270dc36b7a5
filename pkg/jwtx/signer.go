package jwtx

// Signer issues access tokens.
type Signer interface {
	Alg() string
	Issue(email, userID, role string) (string, error)
}

package service

import "crypto/subtle"

// Authenticator gates the admin surface behind a single shared secret. The
// comparison is constant-time; the secret itself is configuration, not a
// hashed credential store.
type Authenticator struct {
	secret []byte
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

func (a *Authenticator) Authenticate(password string) bool {
	return subtle.ConstantTimeCompare([]byte(password), a.secret) == 1
}

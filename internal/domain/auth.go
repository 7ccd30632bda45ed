package domain

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidCredentials is returned when a login attempt fails. The same error
// covers unknown email and wrong password so the response does not leak which
// part was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// TokenIssuer issues bearer tokens for an authenticated subject.
type TokenIssuer interface {
	Issue(subject, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated subject.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// AuthService authenticates the configured admin and issues tokens for the
// event management endpoints.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}

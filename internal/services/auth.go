package services

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"eventbook/internal/domain"
)

type authService struct {
	adminEmail        string
	adminPasswordHash string
	issuer            domain.TokenIssuer
	tokenExpiry       time.Duration
}

// NewAuthService creates an AuthService for the single configured admin
// account. adminPasswordHash is a bcrypt hash.
func NewAuthService(adminEmail, adminPasswordHash string, issuer domain.TokenIssuer, tokenExpiry time.Duration) domain.AuthService {
	return &authService{
		adminEmail:        strings.ToLower(strings.TrimSpace(adminEmail)),
		adminPasswordHash: adminPasswordHash,
		issuer:            issuer,
		tokenExpiry:       tokenExpiry,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if s.adminEmail == "" || s.adminPasswordHash == "" {
		return "", domain.ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(email), []byte(s.adminEmail)) != 1 {
		return "", domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	return s.issuer.Issue("admin", email, s.tokenExpiry)
}

package services

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/hallopetra/formbuilder-go/config"
	"github.com/hallopetra/formbuilder-go/middleware"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is deliberately generic: the same error for a wrong
// email and a wrong password, so nothing can be enumerated.
var ErrInvalidCredentials = errors.New("Ungültige E-Mail oder Passwort")

const sessionDuration = 24 * time.Hour

type AuthService struct{}

func NewAuthService() *AuthService {
	return &AuthService{}
}

// Login authenticates the single configured operator account and returns a
// signed session token valid for 24 hours.
func (s *AuthService) Login(email, password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(email), []byte(config.AdminEmail)) != 1 {
		return "", ErrInvalidCredentials
	}

	if config.AdminPasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(config.AdminPasswordHash), []byte(password)); err != nil {
			return "", ErrInvalidCredentials
		}
	} else if subtle.ConstantTimeCompare([]byte(password), []byte(config.AdminPassword)) != 1 {
		return "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(email, sessionDuration)
	if err != nil {
		return "", err
	}
	return token, nil
}

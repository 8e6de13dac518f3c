package auth

import (
	"context"
	"crypto/subtle"
	"strings"

	apperrors "event-voting-backend/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier checks an admin email and password.
// It returns apperrors.ErrInvalidCredentials when they do not match.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) error
}

// StaticVerifier checks passwords against the ADMIN_USERS list
type StaticVerifier struct {
	users map[string]string
}

// NewStaticVerifier creates a verifier over parsed admin users
func NewStaticVerifier(users map[string]string) *StaticVerifier {
	return &StaticVerifier{users: users}
}

// Verify implements CredentialVerifier
func (v *StaticVerifier) Verify(_ context.Context, email, password string) error {
	stored, ok := v.users[normalizeEmail(email)]
	if !ok {
		return apperrors.ErrInvalidCredentials
	}
	if !checkPassword(stored, password) {
		return apperrors.ErrInvalidCredentials
	}
	return nil
}

// checkPassword compares against a bcrypt hash when stored starts with "$2", otherwise in constant time
func checkPassword(stored, given string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

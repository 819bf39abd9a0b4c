package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/fairwaylabs/teetime/internal/domain"
)

// DevVerifier is the development bypass login: a single demo user with a
// bcrypt-hashed password, selected by configuration. It sits behind the
// same IdentityVerifier capability as LINE, at a lower trust level, and
// is never constructed unless explicitly enabled.
type DevVerifier struct {
	username     string
	passwordHash []byte
}

// NewDevVerifier creates a dev verifier for one demo user.
func NewDevVerifier(username, passwordHash string) *DevVerifier {
	return &DevVerifier{
		username:     username,
		passwordHash: []byte(passwordHash),
	}
}

// Exchange validates a "username:password" grant against the demo user.
// Implements IdentityVerifier.
func (v *DevVerifier) Exchange(_ context.Context, grant string) (*Identity, error) {
	username, password, ok := strings.Cut(grant, ":")
	if !ok || username != v.username {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return &Identity{
		ProviderID:  "dev:" + username,
		DisplayName: username,
	}, nil
}

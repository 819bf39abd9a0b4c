package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/fairwaylabs/teetime/internal/domain"
)

// DefaultSessionTTL is used when no TTL is configured.
const DefaultSessionTTL = 8 * time.Hour

// Claims is the signed session claim attached to admin requests. It binds
// an authenticated username to its tenant; the claim itself is the whole
// server-side session, nothing else is stored.
type Claims struct {
	jwt.RegisteredClaims
	TenantID string `json:"tenant_id"`
	Username string `json:"username"`
}

// TokenVerifier verifies a raw session token and returns its claims.
// The admin guard and handlers depend on this capability, not on a
// concrete implementation.
type TokenVerifier interface {
	Verify(raw string) (*Claims, error)
}

// SessionConfig holds session configuration.
type SessionConfig struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

// SessionService issues and verifies HS256-signed session tokens.
type SessionService struct {
	config SessionConfig
}

// NewSessionService creates a new session service.
func NewSessionService(config SessionConfig) *SessionService {
	if config.TTL == 0 {
		config.TTL = DefaultSessionTTL
	}
	return &SessionService{config: config}
}

// TTL returns the session token lifetime.
func (s *SessionService) TTL() time.Duration {
	return s.config.TTL
}

// Issue creates a signed session token for a tenant-bound username.
func (s *SessionService) Issue(tenantID uuid.UUID, username string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    s.config.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TTL)),
			ID:        uuid.New().String(),
		},
		TenantID: tenantID.String(),
		Username: username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.config.Secret)
}

// Verify parses and validates a session token, checking signature and
// expiry. Implements TokenVerifier.
func (s *SessionService) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.config.Secret, nil
	})
	if err != nil {
		if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
			return nil, domain.ErrSessionExpired
		}
		return nil, domain.ErrInvalidToken
	}
	if !token.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

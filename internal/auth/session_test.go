package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fairwaylabs/teetime/internal/domain"
)

func newTestService(ttl time.Duration) *SessionService {
	return NewSessionService(SessionConfig{
		Secret: []byte("test-secret-key-for-session-tests"),
		Issuer: "teetime-test",
		TTL:    ttl,
	})
}

func TestSessionService_IssueAndVerify(t *testing.T) {
	svc := newTestService(time.Hour)
	tenantID := uuid.New()

	token, err := svc.Issue(tenantID, "owner")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	if claims.TenantID != tenantID.String() {
		t.Errorf("TenantID = %q, want %q", claims.TenantID, tenantID.String())
	}
	if claims.Username != "owner" {
		t.Errorf("Username = %q, want %q", claims.Username, "owner")
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		t.Error("ExpiresAt should be in the future")
	}
}

func TestSessionService_ExpiredToken(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, err := svc.Issue(uuid.New(), "owner")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	_, err = svc.Verify(token)
	if !errors.Is(err, domain.ErrSessionExpired) {
		t.Errorf("Verify error = %v, want ErrSessionExpired", err)
	}
}

func TestSessionService_WrongSecret(t *testing.T) {
	svc := newTestService(time.Hour)
	token, err := svc.Issue(uuid.New(), "owner")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	other := NewSessionService(SessionConfig{
		Secret: []byte("a-different-secret"),
		Issuer: "teetime-test",
		TTL:    time.Hour,
	})

	if _, err := other.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("Verify error = %v, want ErrInvalidToken", err)
	}
}

func TestSessionService_GarbageToken(t *testing.T) {
	svc := newTestService(time.Hour)

	tests := []string{"", "not-a-jwt", "a.b.c"}
	for _, raw := range tests {
		if _, err := svc.Verify(raw); err == nil {
			t.Errorf("Verify(%q) should fail", raw)
		}
	}
}

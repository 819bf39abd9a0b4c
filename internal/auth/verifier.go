package auth

import "context"

// Identity is a verified external identity.
type Identity struct {
	// ProviderID is the stable external identity key: the LINE user ID,
	// or "dev:<username>" for the development bypass.
	ProviderID string
	// DisplayName is the human-readable name reported by the provider.
	DisplayName string
}

// IdentityVerifier validates an authorization grant issued by an external
// login flow and returns the verified identity. Implementations: LINE
// Login (grant is the OAuth authorization code) and the development bypass
// (grant is "username:password").
type IdentityVerifier interface {
	Exchange(ctx context.Context, grant string) (*Identity, error)
}

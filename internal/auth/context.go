package auth

import "context"

type contextKey string

// claimsKey is the context key for verified session claims.
const claimsKey contextKey = "session_claims"

// ContextWithClaims returns a copy of ctx carrying verified session claims.
func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext extracts verified session claims from the request context.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok
}

// Package tenant resolves the acting tenant for a request and enforces
// that it is active. This is the isolation boundary: every handler goes
// through one of the two resolve paths before touching tenant data.
package tenant

import (
	"context"
	"errors"
	"net/url"

	"github.com/google/uuid"

	"github.com/fairwaylabs/teetime/internal/auth"
	"github.com/fairwaylabs/teetime/internal/domain"
)

// ValidationError is a user-facing tenant validation failure. Callers
// convert it into a validation-error response; it never carries internal
// database detail.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Details returns the field-scoped message map for the validation envelope.
func (e *ValidationError) Details() map[string]string {
	return map[string]string{e.Field: e.Message}
}

// Store is the read capability the resolver needs. Inactive tenants must
// be reported as not found.
type Store interface {
	GetActiveByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
}

// Resolver produces a validated, active tenant for the current request.
// Every resolve performs a fresh read; tenant state is never cached, so a
// deactivation takes effect on the next request.
type Resolver struct {
	tenants Store
}

// NewResolver creates a new resolver.
func NewResolver(tenants Store) *Resolver {
	return &Resolver{tenants: tenants}
}

// FromSession resolves the tenant bound to the session claims in ctx.
// Administrative routes use this path; the admin guard puts the claims in
// the context before any handler runs.
func (r *Resolver) FromSession(ctx context.Context) (*domain.Tenant, error) {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return nil, &ValidationError{Field: "tenant", Message: "Unauthenticated"}
	}

	id, err := uuid.Parse(claims.TenantID)
	if err != nil {
		return nil, &ValidationError{Field: "tenant", Message: "Tenant not found"}
	}

	return r.lookup(ctx, id)
}

// FromRequest resolves the tenant named by the tenant_id query parameter.
// Public routes use this path.
func (r *Resolver) FromRequest(ctx context.Context, values url.Values) (*domain.Tenant, error) {
	raw := values.Get("tenant_id")
	if raw == "" {
		return nil, &ValidationError{Field: "tenant_id", Message: "Tenant ID is required"}
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, &ValidationError{Field: "tenant_id", Message: "Tenant ID is invalid"}
	}

	return r.lookup(ctx, id)
}

func (r *Resolver) lookup(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	t, err := r.tenants.GetActiveByID(ctx, id)
	if errors.Is(err, domain.ErrTenantNotFound) {
		return nil, &ValidationError{Field: "tenant", Message: "Tenant not found"}
	}
	if err != nil {
		// Infrastructure failure: surfaced as-is for the caller's
		// catch-all, never into a response body.
		return nil, err
	}
	return t, nil
}

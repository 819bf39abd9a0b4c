package tenant

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairwaylabs/teetime/internal/auth"
	"github.com/fairwaylabs/teetime/internal/domain"
)

// fakeStore serves active tenants from a map and counts reads.
type fakeStore struct {
	tenants map[uuid.UUID]*domain.Tenant
	err     error
	reads   int
}

func (f *fakeStore) GetActiveByID(_ context.Context, id uuid.UUID) (*domain.Tenant, error) {
	f.reads++
	if f.err != nil {
		return nil, f.err
	}
	t, ok := f.tenants[id]
	if !ok || !t.IsActive {
		return nil, domain.ErrTenantNotFound
	}
	return t, nil
}

func activeTenant() *domain.Tenant {
	return &domain.Tenant{
		ID:        uuid.New(),
		Name:      "Fairway Golf School",
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func ctxWithClaims(tenantID string) context.Context {
	return auth.ContextWithClaims(context.Background(), &auth.Claims{
		TenantID: tenantID,
		Username: "owner",
	})
}

func TestFromSession_NoClaims(t *testing.T) {
	r := NewResolver(&fakeStore{})

	_, err := r.FromSession(context.Background())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "tenant", verr.Field)
	assert.Equal(t, "Unauthenticated", verr.Message)
}

func TestFromSession_ActiveTenant(t *testing.T) {
	want := activeTenant()
	store := &fakeStore{tenants: map[uuid.UUID]*domain.Tenant{want.ID: want}}
	r := NewResolver(store)

	got, err := r.FromSession(ctxWithClaims(want.ID.String()))

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, store.reads, "exactly one read per resolve")
}

func TestFromSession_InactiveTenant(t *testing.T) {
	inactive := activeTenant()
	inactive.IsActive = false
	store := &fakeStore{tenants: map[uuid.UUID]*domain.Tenant{inactive.ID: inactive}}
	r := NewResolver(store)

	_, err := r.FromSession(ctxWithClaims(inactive.ID.String()))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{"tenant": "Tenant not found"}, verr.Details())
}

func TestFromSession_MalformedTenantID(t *testing.T) {
	r := NewResolver(&fakeStore{})

	_, err := r.FromSession(ctxWithClaims("not-a-uuid"))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "tenant", verr.Field)
}

func TestFromRequest_MissingTenantID(t *testing.T) {
	r := NewResolver(&fakeStore{})

	for _, values := range []url.Values{{}, {"tenant_id": {""}}} {
		_, err := r.FromRequest(context.Background(), values)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, map[string]string{"tenant_id": "Tenant ID is required"}, verr.Details())
	}
}

func TestFromRequest_InvalidTenantID(t *testing.T) {
	r := NewResolver(&fakeStore{})

	_, err := r.FromRequest(context.Background(), url.Values{"tenant_id": {"zzz"}})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "tenant_id", verr.Field)
}

func TestFromRequest_Idempotent(t *testing.T) {
	want := activeTenant()
	store := &fakeStore{tenants: map[uuid.UUID]*domain.Tenant{want.ID: want}}
	r := NewResolver(store)
	values := url.Values{"tenant_id": {want.ID.String()}}

	first, err := r.FromRequest(context.Background(), values)
	require.NoError(t, err)
	second, err := r.FromRequest(context.Background(), values)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same identifier and unchanged state must yield equal tenants")
	assert.Equal(t, 2, store.reads, "no caching between resolves")
}

func TestFromRequest_InfrastructureErrorPassesThrough(t *testing.T) {
	infra := errors.New("connection refused")
	r := NewResolver(&fakeStore{err: infra})

	_, err := r.FromRequest(context.Background(), url.Values{"tenant_id": {uuid.New().String()}})

	require.ErrorIs(t, err, infra)
	var verr *ValidationError
	assert.False(t, errors.As(err, &verr), "infrastructure errors must not be typed as validation errors")
}

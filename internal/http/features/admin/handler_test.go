package admin

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairwaylabs/teetime/internal/auth"
	"github.com/fairwaylabs/teetime/internal/domain"
	"github.com/fairwaylabs/teetime/internal/tenant"
)

// fakeTenantStore serves one active tenant.
type fakeTenantStore struct {
	tenant *domain.Tenant
}

func (f *fakeTenantStore) GetActiveByID(_ context.Context, id uuid.UUID) (*domain.Tenant, error) {
	if f.tenant != nil && f.tenant.ID == id && f.tenant.IsActive {
		return f.tenant, nil
	}
	return nil, domain.ErrTenantNotFound
}

// newTestHandler wires a handler resolving against a fake store. The
// repositories stay nil; the paths under test fail before reaching them.
func newTestHandler(store *fakeTenantStore) *Handler {
	return NewHandler(Config{
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Resolver: tenant.NewResolver(store),
	})
}

func withClaims(r *http.Request, tenantID uuid.UUID) *http.Request {
	ctx := auth.ContextWithClaims(r.Context(), &auth.Claims{
		TenantID: tenantID.String(),
		Username: "owner",
	})
	return r.WithContext(ctx)
}

type envelope struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&e))
	return e
}

func TestHandlers_Unauthenticated(t *testing.T) {
	h := newTestHandler(&fakeTenantStore{})

	handlers := map[string]http.HandlerFunc{
		"ListReservations":  h.ListReservations,
		"ListUsers":         h.ListUsers,
		"ListStaff":         h.ListStaff,
		"ListBusinessHours": h.ListBusinessHours,
		"ListMenus":         h.ListMenus,
		"GetTenant":         h.GetTenant,
	}
	for name, fn := range handlers {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/x", nil)
			rec := httptest.NewRecorder()
			fn(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			e := decode(t, rec)
			assert.Equal(t, "Validation failed", e.Error)
			assert.Equal(t, "Unauthenticated", e.Details["tenant"])
		})
	}
}

func TestHandlers_DeactivatedTenantSession(t *testing.T) {
	// Claims from before a deactivation still resolve freshly, so the
	// request fails on its next round trip.
	inactive := &domain.Tenant{ID: uuid.New(), Name: "Closed School", IsActive: false}
	h := newTestHandler(&fakeTenantStore{tenant: inactive})

	req := withClaims(httptest.NewRequest(http.MethodGet, "/api/admin/reservations", nil), inactive.ID)
	rec := httptest.NewRecorder()
	h.ListReservations(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Tenant not found", decode(t, rec).Details["tenant"])
}

func TestListReservations_InvalidDates(t *testing.T) {
	active := &domain.Tenant{ID: uuid.New(), Name: "Fairway Golf School", IsActive: true}
	h := newTestHandler(&fakeTenantStore{tenant: active})

	tests := []struct {
		query string
		field string
	}{
		{"from=2026-13-01", "from"},
		{"from=yesterday", "from"},
		{"to=2026-01-32", "to"},
	}
	for _, tt := range tests {
		req := withClaims(httptest.NewRequest(http.MethodGet, "/api/admin/reservations?"+tt.query, nil), active.ID)
		rec := httptest.NewRecorder()
		h.ListReservations(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Date must be YYYY-MM-DD", decode(t, rec).Details[tt.field])
	}
}

func TestCreateReservation_ValidationErrors(t *testing.T) {
	active := &domain.Tenant{ID: uuid.New(), Name: "Fairway Golf School", IsActive: true}
	h := newTestHandler(&fakeTenantStore{tenant: active})

	req := withClaims(httptest.NewRequest(http.MethodPost, "/api/admin/reservations",
		strings.NewReader(`{"status":"done"}`)), active.ID)
	rec := httptest.NewRecorder()
	h.CreateReservation(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	d := decode(t, rec).Details
	assert.Equal(t, "User ID is required", d["user_id"])
	assert.Equal(t, "Menu ID is required", d["menu_id"])
	assert.Equal(t, "Start time is required", d["starts_at"])
	assert.Equal(t, "Status must be pending, confirmed, or cancelled", d["status"])
}

func TestCreateStaff_NameRequired(t *testing.T) {
	active := &domain.Tenant{ID: uuid.New(), Name: "Fairway Golf School", IsActive: true}
	h := newTestHandler(&fakeTenantStore{tenant: active})

	req := withClaims(httptest.NewRequest(http.MethodPost, "/api/admin/staff",
		strings.NewReader(`{}`)), active.ID)
	rec := httptest.NewRecorder()
	h.CreateStaff(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Name is required", decode(t, rec).Details["name"])
}

func TestUpsertBusinessHour_ValidationErrors(t *testing.T) {
	active := &domain.Tenant{ID: uuid.New(), Name: "Fairway Golf School", IsActive: true}
	h := newTestHandler(&fakeTenantStore{tenant: active})

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"day out of range", `{"day_of_week":7,"open_time":"09:00","close_time":"18:00"}`, "day_of_week"},
		{"negative day", `{"day_of_week":-1,"open_time":"09:00","close_time":"18:00"}`, "day_of_week"},
		{"bad open time", `{"day_of_week":1,"open_time":"25:00","close_time":"18:00"}`, "open_time"},
		{"bad close time", `{"day_of_week":1,"open_time":"09:00","close_time":"6pm"}`, "close_time"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := withClaims(httptest.NewRequest(http.MethodPut, "/api/admin/business-hours",
				strings.NewReader(tt.body)), active.ID)
			rec := httptest.NewRecorder()
			h.UpsertBusinessHour(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decode(t, rec).Details, tt.field)
		})
	}
}

func TestUpsertBusinessHour_ClosedDaySkipsTimes(t *testing.T) {
	// A closed day needs no times, so validation must not demand them.
	req := &BusinessHourRequest{DayOfWeek: 0, IsClosed: true}
	assert.Empty(t, req.validate())
}

func TestMenuRequest_Validate(t *testing.T) {
	tests := []struct {
		name string
		req  MenuRequest
		want []string
	}{
		{"valid", MenuRequest{Name: "Private Lesson", DurationMinutes: 60, PriceYen: 8000}, nil},
		{"free is allowed", MenuRequest{Name: "Trial", DurationMinutes: 30}, nil},
		{"missing name", MenuRequest{DurationMinutes: 60}, []string{"name"}},
		{"zero duration", MenuRequest{Name: "x"}, []string{"duration_minutes"}},
		{"negative price", MenuRequest{Name: "x", DurationMinutes: 60, PriceYen: -1}, []string{"price_yen"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := tt.req.validate()
			assert.Len(t, details, len(tt.want))
			for _, field := range tt.want {
				assert.Contains(t, details, field)
			}
		})
	}
}

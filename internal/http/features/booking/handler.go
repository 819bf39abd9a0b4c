package booking

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/fairwaylabs/teetime/internal/domain"
	"github.com/fairwaylabs/teetime/internal/http/features/common"
	"github.com/fairwaylabs/teetime/internal/httputil"
	"github.com/fairwaylabs/teetime/internal/repository"
	"github.com/fairwaylabs/teetime/internal/tenant"
)

// Handler serves the public booking flow. Every route resolves its tenant
// from the tenant_id query parameter before touching data.
type Handler struct {
	logger       *slog.Logger
	resolver     *tenant.Resolver
	db           *sql.DB
	tenants      *repository.TenantsRepository
	users        *repository.UsersRepository
	menus        *repository.LessonMenusRepository
	hours        *repository.BusinessHoursRepository
	reservations *repository.ReservationsRepository
}

// Config holds booking handler dependencies.
type Config struct {
	Logger       *slog.Logger
	Resolver     *tenant.Resolver
	DB           *sql.DB
	Tenants      *repository.TenantsRepository
	Users        *repository.UsersRepository
	Menus        *repository.LessonMenusRepository
	Hours        *repository.BusinessHoursRepository
	Reservations *repository.ReservationsRepository
}

// NewHandler creates a new booking handler.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:       cfg.Logger,
		resolver:     cfg.Resolver,
		db:           cfg.DB,
		tenants:      cfg.Tenants,
		users:        cfg.Users,
		menus:        cfg.Menus,
		hours:        cfg.Hours,
		reservations: cfg.Reservations,
	}
}

// Menus lists the active lesson menus of a tenant.
// GET /api/public/menus?tenant_id=...
func (h *Handler) Menus(w http.ResponseWriter, r *http.Request) {
	t, err := h.resolver.FromRequest(r.Context(), r.URL.Query())
	if err != nil {
		common.RespondError(h.logger, w, err)
		return
	}

	menus, err := h.menus.ListByTenant(r.Context(), t.ID, true)
	if err != nil {
		common.RespondError(h.logger, w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, menus)
}

// BusinessHours lists a tenant's opening hours.
// GET /api/public/business-hours?tenant_id=...
func (h *Handler) BusinessHours(w http.ResponseWriter, r *http.Request) {
	t, err := h.resolver.FromRequest(r.Context(), r.URL.Query())
	if err != nil {
		common.RespondError(h.logger, w, err)
		return
	}

	hours, err := h.hours.ListByTenant(r.Context(), t.ID)
	if err != nil {
		common.RespondError(h.logger, w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, hours)
}

// BookedSlot is an occupied interval on the availability view.
type BookedSlot struct {
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
}

// AvailabilityResponse describes one day of a tenant's calendar.
type AvailabilityResponse struct {
	Date        string       `json:"date"`
	IsClosed    bool         `json:"is_closed"`
	OpenTime    string       `json:"open_time,omitempty"`
	CloseTime   string       `json:"close_time,omitempty"`
	BookedSlots []BookedSlot `json:"booked_slots"`
}

// Availability returns the opening hours and occupied slots for one day.
// Slot selection is left to the client; this route only reports facts.
// GET /api/public/availability?tenant_id=...&date=YYYY-MM-DD
func (h *Handler) Availability(w http.ResponseWriter, r *http.Request) {
	t, err := h.resolver.FromRequest(r.Context(), r.URL.Query())
	if err != nil {
		common.RespondError(h.logger, w, err)
		return
	}

	day, err := time.Parse("2006-01-02", r.URL.Query().Get("date"))
	if err != nil {
		httputil.ValidationFailed(w, map[string]string{"date": "Date must be YYYY-MM-DD"})
		return
	}

	resp := AvailabilityResponse{
		Date:        day.Format("2006-01-02"),
		BookedSlots: []BookedSlot{},
	}

	hoursRow, err := h.hours.GetForWeekday(r.Context(), t.ID, int(day.Weekday()))
	if errors.Is(err, domain.ErrBusinessHourNotFound) {
		resp.IsClosed = true
		httputil.JSON(w, http.StatusOK, resp)
		return
	}
	if err != nil {
		common.RespondError(h.logger, w, err)
		return
	}
	if hoursRow.IsClosed {
		resp.IsClosed = true
		httputil.JSON(w, http.StatusOK, resp)
		return
	}

	resp.OpenTime = hoursRow.OpenTime
	resp.CloseTime = hoursRow.CloseTime

	reservations, err := h.reservations.ListByRange(r.Context(), t.ID, day, day.Add(24*time.Hour))
	if err != nil {
		common.RespondError(h.logger, w, err)
		return
	}
	for _, res := range reservations {
		if res.Status == domain.ReservationCancelled {
			continue
		}
		resp.BookedSlots = append(resp.BookedSlots, BookedSlot{StartsAt: res.StartsAt, EndsAt: res.EndsAt})
	}

	httputil.JSON(w, http.StatusOK, resp)
}

// CreateReservationRequest is the public booking request. A returning LINE
// customer sends line_user_id so bookings land on the same user row.
type CreateReservationRequest struct {
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	LINEUserID string    `json:"line_user_id"`
	MenuID     uuid.UUID `json:"menu_id"`
	StartsAt   time.Time `json:"starts_at"`
	Notes      string    `json:"notes"`
}

func (req *CreateReservationRequest) validate() map[string]string {
	details := map[string]string{}
	if req.Name == "" {
		details["name"] = "Name is required"
	}
	if req.MenuID == uuid.Nil {
		details["menu_id"] = "Menu ID is required"
	}
	if req.StartsAt.IsZero() {
		details["starts_at"] = "Start time is required"
	}
	return details
}

// CreateReservation books a pending lesson for a customer.
// POST /api/public/reservations?tenant_id=...
func (h *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	t, err := h.resolver.FromRequest(r.Context(), r.URL.Query())
	if err != nil {
		common.RespondError(h.logger, w, err)
		return
	}

	var req CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if details := req.validate(); len(details) > 0 {
		httputil.ValidationFailed(w, details)
		return
	}

	menu, err := h.menus.GetByID(r.Context(), t.ID, req.MenuID)
	if err != nil {
		common.RespondError(h.logger, w, err)
		return
	}

	now := time.Now()

	// A known LINE customer books onto their existing row; everyone else
	// gets a fresh one.
	var user *domain.User
	createUser := true
	if req.LINEUserID != "" {
		existing, err := h.users.GetByProviderID(r.Context(), t.ID, req.LINEUserID)
		switch {
		case err == nil:
			user = existing
			createUser = false
		case errors.Is(err, domain.ErrUserNotFound):
		default:
			common.RespondError(h.logger, w, err)
			return
		}
	}
	if createUser {
		user = &domain.User{
			ID:        uuid.New(),
			TenantID:  t.ID,
			Name:      req.Name,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if req.LINEUserID != "" {
			user.ProviderID = &req.LINEUserID
		}
		if req.Email != "" {
			user.Email = &req.Email
		}
		if req.Phone != "" {
			user.Phone = &req.Phone
		}
	}

	reservation := &domain.Reservation{
		ID:        uuid.New(),
		TenantID:  t.ID,
		UserID:    user.ID,
		MenuID:    menu.ID,
		StartsAt:  req.StartsAt,
		EndsAt:    req.StartsAt.Add(time.Duration(menu.DurationMinutes) * time.Minute),
		Status:    domain.ReservationPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Notes != "" {
		reservation.Notes = &req.Notes
	}

	tx, err := h.db.BeginTx(r.Context(), nil)
	if err != nil {
		common.RespondError(h.logger, w, err)
		return
	}
	defer tx.Rollback()

	if createUser {
		if err := h.users.CreateTx(r.Context(), tx, user); err != nil {
			common.RespondError(h.logger, w, err)
			return
		}
	}
	if err := h.reservations.CreateTx(r.Context(), tx, reservation); err != nil {
		common.RespondError(h.logger, w, err)
		return
	}
	if err := tx.Commit(); err != nil {
		common.RespondError(h.logger, w, err)
		return
	}

	httputil.JSON(w, http.StatusCreated, reservation)
}

// SignupRequest creates a tenant with its first administrator.
type SignupRequest struct {
	TenantName string `json:"tenant_name"`
	AdminName  string `json:"admin_name"`
	LINEUserID string `json:"line_user_id"`
}

// Signup is the administrative signup flow: one new tenant plus its first
// admin user, created together.
// POST /api/public/signup
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	details := map[string]string{}
	if req.TenantName == "" {
		details["tenant_name"] = "Tenant name is required"
	}
	if req.AdminName == "" {
		details["admin_name"] = "Admin name is required"
	}
	if len(details) > 0 {
		httputil.ValidationFailed(w, details)
		return
	}

	now := time.Now()
	newTenant := &domain.Tenant{
		ID:        uuid.New(),
		Name:      req.TenantName,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	admin := &domain.User{
		ID:        uuid.New(),
		TenantID:  newTenant.ID,
		Name:      req.AdminName,
		IsAdmin:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.LINEUserID != "" {
		admin.ProviderID = &req.LINEUserID
	}

	tx, err := h.db.BeginTx(r.Context(), nil)
	if err != nil {
		common.RespondError(h.logger, w, err)
		return
	}
	defer tx.Rollback()

	if err := h.tenants.CreateTx(r.Context(), tx, newTenant); err != nil {
		common.RespondError(h.logger, w, err)
		return
	}
	if err := h.users.CreateTx(r.Context(), tx, admin); err != nil {
		common.RespondError(h.logger, w, err)
		return
	}
	if err := tx.Commit(); err != nil {
		common.RespondError(h.logger, w, err)
		return
	}

	httputil.JSON(w, http.StatusCreated, map[string]any{
		"tenant": newTenant,
		"admin":  admin,
	})
}

package admin

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fairwaylabs/teetime/internal/domain"
	"github.com/fairwaylabs/teetime/internal/http/features/common"
	"github.com/fairwaylabs/teetime/internal/httputil"
)

// ListReservations lists reservations within a date range.
// GET /api/admin/reservations?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) ListReservations(w http.ResponseWriter, r *http.Request) {
	t, ok := h.resolveTenant(w, r)
	if !ok {
		return
	}

	// Default window: today through four weeks out.
	from := time.Now().Truncate(24 * time.Hour)
	to := from.Add(28 * 24 * time.Hour)

	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			httputil.ValidationFailed(w, map[string]string{"from": "Date must be YYYY-MM-DD"})
			return
		}
		from = parsed
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			httputil.ValidationFailed(w, map[string]string{"to": "Date must be YYYY-MM-DD"})
			return
		}
		to = parsed
	}

	list, err := h.reservations.ListByRange(r.Context(), t.ID, from, to)
	if err != nil {
		common.RespondError(h.logger, w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, list)
}

// GetReservation returns one reservation.
// GET /api/admin/reservations/{id}
func (h *Handler) GetReservation(w http.ResponseWriter, r *http.Request) {
	t, ok := h.resolveTenant(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.NotFound(w, "Reservation")
		return
	}

	res, err := h.reservations.GetByID(r.Context(), t.ID, id)
	if err != nil {
		common.RespondError(h.logger, w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, res)
}

// AdminReservationRequest is the admin-side reservation create/update body.
type AdminReservationRequest struct {
	UserID   uuid.UUID  `json:"user_id"`
	StaffID  *uuid.UUID `json:"staff_id"`
	MenuID   uuid.UUID  `json:"menu_id"`
	StartsAt time.Time  `json:"starts_at"`
	Status   string     `json:"status"`
	Notes    string     `json:"notes"`
}

func (req *AdminReservationRequest) validate() map[string]string {
	details := map[string]string{}
	if req.UserID == uuid.Nil {
		details["user_id"] = "User ID is required"
	}
	if req.MenuID == uuid.Nil {
		details["menu_id"] = "Menu ID is required"
	}
	if req.StartsAt.IsZero() {
		details["starts_at"] = "Start time is required"
	}
	if req.Status != "" && !domain.ValidReservationStatus(req.Status) {
		details["status"] = "Status must be pending, confirmed, or cancelled"
	}
	return details
}

// CreateReservation books a lesson on behalf of a customer.
// POST /api/admin/reservations
func (h *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	t, ok := h.resolveTenant(w, r)
	if !ok {
		return
	}

	var req AdminReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if details := req.validate(); len(details) > 0 {
		httputil.ValidationFailed(w, details)
		return
	}

	// The customer and menu must belong to the acting tenant.
	if _, err := h.users.GetByID(r.Context(), t.ID, req.UserID); err != nil {
		common.RespondError(h.logger, w, err)
		return
	}
	menu, err := h.menus.GetByID(r.Context(), t.ID, req.MenuID)
	if err != nil {
		common.RespondError(h.logger, w, err)
		return
	}

	status := req.Status
	if status == "" {
		status = domain.ReservationConfirmed
	}

	now := time.Now()
	res := &domain.Reservation{
		ID:        uuid.New(),
		TenantID:  t.ID,
		UserID:    req.UserID,
		StaffID:   req.StaffID,
		MenuID:    menu.ID,
		StartsAt:  req.StartsAt,
		EndsAt:    req.StartsAt.Add(time.Duration(menu.DurationMinutes) * time.Minute),
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Notes != "" {
		res.Notes = &req.Notes
	}

	if err := h.reservations.Create(r.Context(), res); err != nil {
		common.RespondError(h.logger, w, err)
		return
	}
	httputil.JSON(w, http.StatusCreated, res)
}

// UpdateReservation reschedules or restatuses a reservation.
// PUT /api/admin/reservations/{id}
func (h *Handler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	t, ok := h.resolveTenant(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.NotFound(w, "Reservation")
		return
	}

	var req AdminReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if details := req.validate(); len(details) > 0 {
		httputil.ValidationFailed(w, details)
		return
	}

	res, err := h.reservations.GetByID(r.Context(), t.ID, id)
	if err != nil {
		common.RespondError(h.logger, w, err)
		return
	}
	menu, err := h.menus.GetByID(r.Context(), t.ID, req.MenuID)
	if err != nil {
		common.RespondError(h.logger, w, err)
		return
	}

	res.StaffID = req.StaffID
	res.MenuID = menu.ID
	res.StartsAt = req.StartsAt
	res.EndsAt = req.StartsAt.Add(time.Duration(menu.DurationMinutes) * time.Minute)
	if req.Status != "" {
		res.Status = req.Status
	}
	if req.Notes != "" {
		res.Notes = &req.Notes
	}

	if err := h.reservations.Update(r.Context(), res); err != nil {
		common.RespondError(h.logger, w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, res)
}

// CancelReservation marks a reservation cancelled.
// DELETE /api/admin/reservations/{id}
func (h *Handler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	t, ok := h.resolveTenant(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.NotFound(w, "Reservation")
		return
	}

	if err := h.reservations.Cancel(r.Context(), t.ID, id); err != nil {
		common.RespondError(h.logger, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

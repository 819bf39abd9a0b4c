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

// MenuRequest is the lesson menu create/update body.
type MenuRequest struct {
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	PriceYen        int    `json:"price_yen"`
	IsActive        *bool  `json:"is_active"`
}

func (req *MenuRequest) validate() map[string]string {
	details := map[string]string{}
	if req.Name == "" {
		details["name"] = "Name is required"
	}
	if req.DurationMinutes <= 0 {
		details["duration_minutes"] = "Duration must be positive"
	}
	if req.PriceYen < 0 {
		details["price_yen"] = "Price must not be negative"
	}
	return details
}

// ListMenus lists all lesson menus of the acting tenant, inactive included.
// GET /api/admin/menus
func (h *Handler) ListMenus(w http.ResponseWriter, r *http.Request) {
	t, ok := h.resolveTenant(w, r)
	if !ok {
		return
	}

	list, err := h.menus.ListByTenant(r.Context(), t.ID, false)
	if err != nil {
		common.RespondError(h.logger, w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, list)
}

// CreateMenu adds a lesson menu.
// POST /api/admin/menus
func (h *Handler) CreateMenu(w http.ResponseWriter, r *http.Request) {
	t, ok := h.resolveTenant(w, r)
	if !ok {
		return
	}

	var req MenuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if details := req.validate(); len(details) > 0 {
		httputil.ValidationFailed(w, details)
		return
	}

	now := time.Now()
	m := &domain.LessonMenu{
		ID:              uuid.New(),
		TenantID:        t.ID,
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		PriceYen:        req.PriceYen,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}

	if err := h.menus.Create(r.Context(), m); err != nil {
		common.RespondError(h.logger, w, err)
		return
	}
	httputil.JSON(w, http.StatusCreated, m)
}

// UpdateMenu updates a lesson menu.
// PUT /api/admin/menus/{id}
func (h *Handler) UpdateMenu(w http.ResponseWriter, r *http.Request) {
	t, ok := h.resolveTenant(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.NotFound(w, "Lesson menu")
		return
	}

	var req MenuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if details := req.validate(); len(details) > 0 {
		httputil.ValidationFailed(w, details)
		return
	}

	m, err := h.menus.GetByID(r.Context(), t.ID, id)
	if err != nil {
		common.RespondError(h.logger, w, err)
		return
	}

	m.Name = req.Name
	m.DurationMinutes = req.DurationMinutes
	m.PriceYen = req.PriceYen
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}

	if err := h.menus.Update(r.Context(), m); err != nil {
		common.RespondError(h.logger, w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, m)
}

// DeleteMenu removes a lesson menu.
// DELETE /api/admin/menus/{id}
func (h *Handler) DeleteMenu(w http.ResponseWriter, r *http.Request) {
	t, ok := h.resolveTenant(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.NotFound(w, "Lesson menu")
		return
	}

	if err := h.menus.Delete(r.Context(), t.ID, id); err != nil {
		common.RespondError(h.logger, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

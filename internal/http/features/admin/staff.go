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

// StaffRequest is the staff create/update body.
type StaffRequest struct {
	Name     string `json:"name"`
	IsActive *bool  `json:"is_active"`
}

// ListStaff lists the instructors of the acting tenant.
// GET /api/admin/staff
func (h *Handler) ListStaff(w http.ResponseWriter, r *http.Request) {
	t, ok := h.resolveTenant(w, r)
	if !ok {
		return
	}

	list, err := h.staff.ListByTenant(r.Context(), t.ID)
	if err != nil {
		common.RespondError(h.logger, w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, list)
}

// CreateStaff adds an instructor.
// POST /api/admin/staff
func (h *Handler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	t, ok := h.resolveTenant(w, r)
	if !ok {
		return
	}

	var req StaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		httputil.ValidationFailed(w, map[string]string{"name": "Name is required"})
		return
	}

	now := time.Now()
	s := &domain.Staff{
		ID:        uuid.New(),
		TenantID:  t.ID,
		Name:      req.Name,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.IsActive != nil {
		s.IsActive = *req.IsActive
	}

	if err := h.staff.Create(r.Context(), s); err != nil {
		common.RespondError(h.logger, w, err)
		return
	}
	httputil.JSON(w, http.StatusCreated, s)
}

// UpdateStaff renames or toggles an instructor.
// PUT /api/admin/staff/{id}
func (h *Handler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	t, ok := h.resolveTenant(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.NotFound(w, "Staff")
		return
	}

	var req StaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		httputil.ValidationFailed(w, map[string]string{"name": "Name is required"})
		return
	}

	s, err := h.staff.GetByID(r.Context(), t.ID, id)
	if err != nil {
		common.RespondError(h.logger, w, err)
		return
	}

	s.Name = req.Name
	if req.IsActive != nil {
		s.IsActive = *req.IsActive
	}

	if err := h.staff.Update(r.Context(), s); err != nil {
		common.RespondError(h.logger, w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, s)
}

// DeleteStaff removes an instructor.
// DELETE /api/admin/staff/{id}
func (h *Handler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	t, ok := h.resolveTenant(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.NotFound(w, "Staff")
		return
	}

	if err := h.staff.Delete(r.Context(), t.ID, id); err != nil {
		common.RespondError(h.logger, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

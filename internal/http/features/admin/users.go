package admin

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fairwaylabs/teetime/internal/http/features/common"
	"github.com/fairwaylabs/teetime/internal/httputil"
)

// ListUsers lists the customers of the acting tenant.
// GET /api/admin/users
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	t, ok := h.resolveTenant(w, r)
	if !ok {
		return
	}

	users, err := h.users.ListByTenant(r.Context(), t.ID)
	if err != nil {
		common.RespondError(h.logger, w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, users)
}

// GetUser returns one customer.
// GET /api/admin/users/{id}
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	t, ok := h.resolveTenant(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.NotFound(w, "User")
		return
	}

	user, err := h.users.GetByID(r.Context(), t.ID, id)
	if err != nil {
		common.RespondError(h.logger, w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, user)
}

// UpdateUserRequest is the customer update body.
type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// UpdateUser updates a customer's contact details.
// PUT /api/admin/users/{id}
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	t, ok := h.resolveTenant(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.NotFound(w, "User")
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		httputil.ValidationFailed(w, map[string]string{"name": "Name is required"})
		return
	}

	user, err := h.users.GetByID(r.Context(), t.ID, id)
	if err != nil {
		common.RespondError(h.logger, w, err)
		return
	}

	user.Name = req.Name
	if req.Email != "" {
		user.Email = &req.Email
	}
	if req.Phone != "" {
		user.Phone = &req.Phone
	}

	if err := h.users.Update(r.Context(), user); err != nil {
		common.RespondError(h.logger, w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, user)
}

// DeleteUser removes a customer.
// DELETE /api/admin/users/{id}
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	t, ok := h.resolveTenant(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.NotFound(w, "User")
		return
	}

	if err := h.users.Delete(r.Context(), t.ID, id); err != nil {
		common.RespondError(h.logger, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package admin

import (
	"net/http"

	"github.com/fairwaylabs/teetime/internal/http/features/common"
	"github.com/fairwaylabs/teetime/internal/httputil"
)

// GetTenant returns the acting tenant's profile.
// GET /api/admin/tenant
func (h *Handler) GetTenant(w http.ResponseWriter, r *http.Request) {
	t, ok := h.resolveTenant(w, r)
	if !ok {
		return
	}
	httputil.JSON(w, http.StatusOK, t)
}

// DeactivateTenant soft-deletes the acting tenant. From the next request
// on, resolution fails for it everywhere; rows stay in place.
// DELETE /api/admin/tenant
func (h *Handler) DeactivateTenant(w http.ResponseWriter, r *http.Request) {
	t, ok := h.resolveTenant(w, r)
	if !ok {
		return
	}

	if err := h.tenants.Deactivate(r.Context(), t.ID); err != nil {
		common.RespondError(h.logger, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

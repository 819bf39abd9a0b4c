package admin

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fairwaylabs/teetime/internal/domain"
	"github.com/fairwaylabs/teetime/internal/http/features/common"
	"github.com/fairwaylabs/teetime/internal/httputil"
)

var timeOfDayRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// BusinessHourRequest sets the hours for one weekday.
type BusinessHourRequest struct {
	DayOfWeek int    `json:"day_of_week"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	IsClosed  bool   `json:"is_closed"`
}

func (req *BusinessHourRequest) validate() map[string]string {
	details := map[string]string{}
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		details["day_of_week"] = "Day of week must be 0 (Sunday) through 6 (Saturday)"
	}
	if !req.IsClosed {
		if !timeOfDayRe.MatchString(req.OpenTime) {
			details["open_time"] = "Open time must be HH:MM"
		}
		if !timeOfDayRe.MatchString(req.CloseTime) {
			details["close_time"] = "Close time must be HH:MM"
		}
	}
	return details
}

// ListBusinessHours lists the configured weekdays of the acting tenant.
// GET /api/admin/business-hours
func (h *Handler) ListBusinessHours(w http.ResponseWriter, r *http.Request) {
	t, ok := h.resolveTenant(w, r)
	if !ok {
		return
	}

	list, err := h.hours.ListByTenant(r.Context(), t.ID)
	if err != nil {
		common.RespondError(h.logger, w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, list)
}

// UpsertBusinessHour sets the hours for one weekday.
// PUT /api/admin/business-hours
func (h *Handler) UpsertBusinessHour(w http.ResponseWriter, r *http.Request) {
	t, ok := h.resolveTenant(w, r)
	if !ok {
		return
	}

	var req BusinessHourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if details := req.validate(); len(details) > 0 {
		httputil.ValidationFailed(w, details)
		return
	}

	hour := &domain.BusinessHour{
		ID:        uuid.New(),
		TenantID:  t.ID,
		DayOfWeek: req.DayOfWeek,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
		IsClosed:  req.IsClosed,
	}

	if err := h.hours.Upsert(r.Context(), hour); err != nil {
		common.RespondError(h.logger, w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, hour)
}

// DeleteBusinessHour clears the hours for one weekday.
// DELETE /api/admin/business-hours/{id}
func (h *Handler) DeleteBusinessHour(w http.ResponseWriter, r *http.Request) {
	t, ok := h.resolveTenant(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.NotFound(w, "Business hour")
		return
	}

	if err := h.hours.Delete(r.Context(), t.ID, id); err != nil {
		common.RespondError(h.logger, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

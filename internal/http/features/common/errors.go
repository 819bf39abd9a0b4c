package common

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fairwaylabs/teetime/internal/domain"
	"github.com/fairwaylabs/teetime/internal/httputil"
	"github.com/fairwaylabs/teetime/internal/tenant"
)

// RespondError maps an error to its response envelope: tenant validation
// errors first (400 with field-scoped details), then known not-found
// sentinels (404), then the catch-all (logged, generic 500 with no
// internal detail leaked).
func RespondError(logger *slog.Logger, w http.ResponseWriter, err error) {
	var verr *tenant.ValidationError
	if errors.As(err, &verr) {
		httputil.ValidationFailed(w, verr.Details())
		return
	}

	switch {
	case errors.Is(err, domain.ErrTenantNotFound):
		httputil.NotFound(w, "Tenant")
	case errors.Is(err, domain.ErrUserNotFound):
		httputil.NotFound(w, "User")
	case errors.Is(err, domain.ErrStaffNotFound):
		httputil.NotFound(w, "Staff")
	case errors.Is(err, domain.ErrMenuNotFound):
		httputil.NotFound(w, "Lesson menu")
	case errors.Is(err, domain.ErrBusinessHourNotFound):
		httputil.NotFound(w, "Business hour")
	case errors.Is(err, domain.ErrReservationNotFound):
		httputil.NotFound(w, "Reservation")
	default:
		logger.Error("request failed", "error", err)
		httputil.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}

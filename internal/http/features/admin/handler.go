package admin

import (
	"log/slog"
	"net/http"

	"github.com/fairwaylabs/teetime/internal/domain"
	"github.com/fairwaylabs/teetime/internal/http/features/common"
	"github.com/fairwaylabs/teetime/internal/repository"
	"github.com/fairwaylabs/teetime/internal/tenant"
)

// Handler serves the tenant-scoped admin API. Every route resolves its
// tenant from the session claims before touching data, so no read or
// write can cross a tenant boundary.
type Handler struct {
	logger       *slog.Logger
	resolver     *tenant.Resolver
	tenants      *repository.TenantsRepository
	users        *repository.UsersRepository
	staff        *repository.StaffRepository
	hours        *repository.BusinessHoursRepository
	menus        *repository.LessonMenusRepository
	reservations *repository.ReservationsRepository
}

// Config holds admin handler dependencies.
type Config struct {
	Logger       *slog.Logger
	Resolver     *tenant.Resolver
	Tenants      *repository.TenantsRepository
	Users        *repository.UsersRepository
	Staff        *repository.StaffRepository
	Hours        *repository.BusinessHoursRepository
	Menus        *repository.LessonMenusRepository
	Reservations *repository.ReservationsRepository
}

// NewHandler creates a new admin handler.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:       cfg.Logger,
		resolver:     cfg.Resolver,
		tenants:      cfg.Tenants,
		users:        cfg.Users,
		staff:        cfg.Staff,
		hours:        cfg.Hours,
		menus:        cfg.Menus,
		reservations: cfg.Reservations,
	}
}

// resolveTenant resolves the acting tenant or writes the error envelope.
func (h *Handler) resolveTenant(w http.ResponseWriter, r *http.Request) (*domain.Tenant, bool) {
	t, err := h.resolver.FromSession(r.Context())
	if err != nil {
		common.RespondError(h.logger, w, err)
		return nil, false
	}
	return t, true
}

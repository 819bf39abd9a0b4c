package http

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/fairwaylabs/teetime/internal/auth"
	"github.com/fairwaylabs/teetime/internal/config"
	"github.com/fairwaylabs/teetime/internal/http/features/admin"
	"github.com/fairwaylabs/teetime/internal/http/features/booking"
	"github.com/fairwaylabs/teetime/internal/http/features/login"
	"github.com/fairwaylabs/teetime/internal/http/features/pages"
	"github.com/fairwaylabs/teetime/internal/http/middleware"
	"github.com/fairwaylabs/teetime/internal/httputil"
	"github.com/fairwaylabs/teetime/internal/metrics"
	"github.com/fairwaylabs/teetime/internal/repository"
	"github.com/fairwaylabs/teetime/internal/tenant"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Logger      *slog.Logger
	DB          *sql.DB
	Sessions    *auth.SessionService
	LINE        *auth.LINEService     // nil when LINE Login is not configured
	Dev         auth.IdentityVerifier // nil unless the dev bypass is enabled
	DevTenantID string

	Tenants      *repository.TenantsRepository
	Users        *repository.UsersRepository
	Staff        *repository.StaffRepository
	Hours        *repository.BusinessHoursRepository
	Menus        *repository.LessonMenusRepository
	Reservations *repository.ReservationsRepository

	TemplatesDir       string
	CookieSecure       bool
	MaxRequestBodySize int64
	LoginRatePerMinute int
	BookRatePerMinute  int
	SecurityHeaders    config.SecurityHeadersConfig
	DevLoginEnabled    bool
}

// NewRouter creates the HTTP router with all routes registered.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	guardCfg := middleware.DefaultGuardConfig()
	cookieCfg := httputil.DefaultCookieConfig()
	cookieCfg.Secure = cfg.CookieSecure

	// Apply global middleware. The admin guard runs before any handler
	// and self-selects by path prefix.
	r.Use(middleware.Recover(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeaders(cfg.SecurityHeaders))
	r.Use(middleware.RequestSizeLimit(cfg.MaxRequestBodySize))
	r.Use(middleware.AdminGuard(guardCfg, cfg.Sessions))

	// Health check and metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	resolver := tenant.NewResolver(cfg.Tenants)

	// Auth routes
	loginHandler := login.NewHandler(login.Config{
		Logger:       cfg.Logger,
		Sessions:     cfg.Sessions,
		LINE:         cfg.LINE,
		Dev:          cfg.Dev,
		DevTenantID:  cfg.DevTenantID,
		Users:        cfg.Users,
		CookieConfig: cookieCfg,
		LoginPath:    guardCfg.LoginPath,
		Dashboard:    guardCfg.UIPrefix,
	})
	if cfg.LINE != nil {
		r.Get("/auth/line/login", loginHandler.LINEStart)
		r.Get("/auth/line/callback", loginHandler.LINECallback)
	}
	if cfg.Dev != nil {
		r.With(httprate.LimitByIP(cfg.LoginRatePerMinute, time.Minute)).
			Post("/auth/dev/login", loginHandler.DevLogin)
	}
	r.Post("/auth/logout", loginHandler.Logout)

	// Public booking API
	bookingHandler := booking.NewHandler(booking.Config{
		Logger:       cfg.Logger,
		Resolver:     resolver,
		DB:           cfg.DB,
		Tenants:      cfg.Tenants,
		Users:        cfg.Users,
		Menus:        cfg.Menus,
		Hours:        cfg.Hours,
		Reservations: cfg.Reservations,
	})
	r.Route("/api/public", func(r chi.Router) {
		r.Get("/menus", bookingHandler.Menus)
		r.Get("/business-hours", bookingHandler.BusinessHours)
		r.Get("/availability", bookingHandler.Availability)
		r.Group(func(r chi.Router) {
			r.Use(httprate.LimitByIP(cfg.BookRatePerMinute, time.Minute))
			r.Post("/reservations", bookingHandler.CreateReservation)
			r.Post("/signup", bookingHandler.Signup)
		})
	})

	// Admin API (guarded by prefix)
	adminHandler := admin.NewHandler(admin.Config{
		Logger:       cfg.Logger,
		Resolver:     resolver,
		Tenants:      cfg.Tenants,
		Users:        cfg.Users,
		Staff:        cfg.Staff,
		Hours:        cfg.Hours,
		Menus:        cfg.Menus,
		Reservations: cfg.Reservations,
	})
	r.Route("/api/admin", func(r chi.Router) {
		r.Get("/tenant", adminHandler.GetTenant)
		r.Delete("/tenant", adminHandler.DeactivateTenant)

		r.Get("/reservations", adminHandler.ListReservations)
		r.Post("/reservations", adminHandler.CreateReservation)
		r.Get("/reservations/{id}", adminHandler.GetReservation)
		r.Put("/reservations/{id}", adminHandler.UpdateReservation)
		r.Delete("/reservations/{id}", adminHandler.CancelReservation)

		r.Get("/users", adminHandler.ListUsers)
		r.Get("/users/{id}", adminHandler.GetUser)
		r.Put("/users/{id}", adminHandler.UpdateUser)
		r.Delete("/users/{id}", adminHandler.DeleteUser)

		r.Get("/staff", adminHandler.ListStaff)
		r.Post("/staff", adminHandler.CreateStaff)
		r.Put("/staff/{id}", adminHandler.UpdateStaff)
		r.Delete("/staff/{id}", adminHandler.DeleteStaff)

		r.Get("/business-hours", adminHandler.ListBusinessHours)
		r.Put("/business-hours", adminHandler.UpsertBusinessHour)
		r.Delete("/business-hours/{id}", adminHandler.DeleteBusinessHour)

		r.Get("/menus", adminHandler.ListMenus)
		r.Post("/menus", adminHandler.CreateMenu)
		r.Put("/menus/{id}", adminHandler.UpdateMenu)
		r.Delete("/menus/{id}", adminHandler.DeleteMenu)
	})

	// Admin pages
	pagesHandler, err := pages.NewHandler(cfg.TemplatesDir, cfg.DevLoginEnabled)
	if err != nil {
		cfg.Logger.Error("failed to load page templates", "error", err)
	} else {
		r.Get("/admin/login", pagesHandler.Login)
		r.Get("/admin", pagesHandler.Dashboard)
	}

	// Every terminal outcome goes through the envelope, 405s included.
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httputil.MethodNotAllowed(w, allowedMethods(r))
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.NotFound(w, "Route")
	})

	return r
}

// allowedMethods probes the routing tree for the methods a path accepts.
func allowedMethods(r *http.Request) []string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return nil
	}
	var allowed []string
	for _, method := range []string{
		http.MethodGet, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete,
	} {
		tctx := chi.NewRouteContext()
		if rctx.Routes.Match(tctx, method, r.URL.Path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fairwaylabs/teetime/internal/auth"
	"github.com/fairwaylabs/teetime/internal/config"
	httpserver "github.com/fairwaylabs/teetime/internal/http"
	"github.com/fairwaylabs/teetime/internal/metrics"
	"github.com/fairwaylabs/teetime/internal/repository"
)

func main() {
	// Load .env file if present (ignore error if not found)
	_ = godotenv.Load()

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Connect to database
	db, err := repository.NewDB(repository.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	logger.Info("connected to database")

	// Apply schema migrations
	if err := repository.RunMigrations(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Register Prometheus metrics
	metrics.Init()

	// Initialize repositories
	tenantsRepo := repository.NewTenantsRepository(db)
	usersRepo := repository.NewUsersRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	hoursRepo := repository.NewBusinessHoursRepository(db)
	menusRepo := repository.NewLessonMenusRepository(db)
	reservationsRepo := repository.NewReservationsRepository(db)

	// Initialize session service
	sessionService := auth.NewSessionService(auth.SessionConfig{
		Secret: []byte(cfg.SessionSecret),
		Issuer: cfg.SessionIssuer,
		TTL:    cfg.SessionTTL,
	})

	// Initialize LINE Login if configured
	var lineService *auth.LINEService
	if cfg.HasLINE() {
		lineService = auth.NewLINEService(auth.LINEConfig{
			ChannelID:     cfg.LINEChannelID,
			ChannelSecret: cfg.LINEChannelSecret,
			RedirectURI:   cfg.LINERedirectURI,
		})
		logger.Info("LINE Login enabled")
	}

	// Initialize dev bypass login if explicitly enabled
	var devVerifier auth.IdentityVerifier
	if cfg.DevLoginEnabled {
		devVerifier = auth.NewDevVerifier(cfg.DevLoginUsername, cfg.DevLoginPasswordHash)
		logger.Warn("development bypass login enabled; do not run this in production")
	}

	// Create router
	router := httpserver.NewRouter(httpserver.RouterConfig{
		Logger:             logger,
		DB:                 db,
		Sessions:           sessionService,
		LINE:               lineService,
		Dev:                devVerifier,
		DevTenantID:        cfg.DevLoginTenantID,
		Tenants:            tenantsRepo,
		Users:              usersRepo,
		Staff:              staffRepo,
		Hours:              hoursRepo,
		Menus:              menusRepo,
		Reservations:       reservationsRepo,
		TemplatesDir:       "web/templates",
		CookieSecure:       cfg.CookieSecure,
		MaxRequestBodySize: cfg.MaxRequestBodySize,
		LoginRatePerMinute: cfg.LoginRatePerMinute,
		BookRatePerMinute:  cfg.BookRatePerMinute,
		SecurityHeaders:    cfg.SecurityHeaders,
		DevLoginEnabled:    cfg.DevLoginEnabled,
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.ServerAddr, cfg.ServerPort)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("starting server", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	logger.Info("server stopped")
}

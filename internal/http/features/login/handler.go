package login

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/fairwaylabs/teetime/internal/auth"
	"github.com/fairwaylabs/teetime/internal/httputil"
	"github.com/fairwaylabs/teetime/internal/repository"
)

// Handler handles admin login and logout.
type Handler struct {
	logger       *slog.Logger
	sessions     *auth.SessionService
	line         *auth.LINEService
	dev          auth.IdentityVerifier
	devTenantID  string
	users        *repository.UsersRepository
	cookieConfig httputil.CookieConfig
	loginPath    string
	dashboard    string
}

// Config holds login handler dependencies.
type Config struct {
	Logger       *slog.Logger
	Sessions     *auth.SessionService
	LINE         *auth.LINEService // nil when LINE Login is not configured
	Dev          auth.IdentityVerifier
	DevTenantID  string
	Users        *repository.UsersRepository
	CookieConfig httputil.CookieConfig
	LoginPath    string
	Dashboard    string
}

// NewHandler creates a new login handler.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:       cfg.Logger,
		sessions:     cfg.Sessions,
		line:         cfg.LINE,
		dev:          cfg.Dev,
		devTenantID:  cfg.DevTenantID,
		users:        cfg.Users,
		cookieConfig: cfg.CookieConfig,
		loginPath:    cfg.LoginPath,
		dashboard:    cfg.Dashboard,
	}
}

// LINEStart begins the LINE Login flow.
// GET /auth/line/login
func (h *Handler) LINEStart(w http.ResponseWriter, r *http.Request) {
	state, err := randomState()
	if err != nil {
		httputil.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httputil.SetStateCookie(w, state, h.cookieConfig)
	http.Redirect(w, r, h.line.AuthURL(state), http.StatusFound)
}

// LINECallback completes the LINE Login flow. The LINE profile binds the
// identity to a tenant through the admin user row; the issued session
// claim carries that tenant.
// GET /auth/line/callback
func (h *Handler) LINECallback(w http.ResponseWriter, r *http.Request) {
	state, ok := httputil.GetStateFromCookie(w, r, h.cookieConfig)
	if !ok || state == "" || state != r.URL.Query().Get("state") {
		http.Redirect(w, r, h.loginPath+"?error=state", http.StatusFound)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Redirect(w, r, h.loginPath+"?error=denied", http.StatusFound)
		return
	}

	identity, err := h.line.Exchange(r.Context(), code)
	if err != nil {
		h.logger.Error("LINE code exchange failed", "error", err)
		http.Redirect(w, r, h.loginPath+"?error=exchange", http.StatusFound)
		return
	}

	admin, err := h.users.GetAdminByProviderID(r.Context(), identity.ProviderID)
	if err != nil {
		h.logger.Warn("LINE identity has no admin account", "provider_id", identity.ProviderID)
		http.Redirect(w, r, h.loginPath+"?error=unauthorized", http.StatusFound)
		return
	}

	token, err := h.sessions.Issue(admin.TenantID, admin.Name)
	if err != nil {
		h.logger.Error("session issue failed", "error", err)
		http.Redirect(w, r, h.loginPath+"?error=session", http.StatusFound)
		return
	}

	httputil.SetSessionCookie(w, token, h.sessions.TTL(), h.cookieConfig)
	http.Redirect(w, r, h.dashboard, http.StatusFound)
}

// DevLoginRequest is the development bypass login request.
type DevLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// DevLogin authenticates against the development bypass verifier. The
// route is only registered when the bypass is enabled by configuration.
// POST /auth/dev/login
func (h *Handler) DevLogin(w http.ResponseWriter, r *http.Request) {
	var req DevLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	details := map[string]string{}
	if req.Username == "" {
		details["username"] = "Username is required"
	}
	if req.Password == "" {
		details["password"] = "Password is required"
	}
	if len(details) > 0 {
		httputil.ValidationFailed(w, details)
		return
	}

	identity, err := h.dev.Exchange(r.Context(), req.Username+":"+req.Password)
	if err != nil {
		httputil.Unauthorized(w)
		return
	}

	tenantID, err := uuid.Parse(h.devTenantID)
	if err != nil {
		h.logger.Error("dev login tenant id is malformed", "error", err)
		httputil.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := h.sessions.Issue(tenantID, identity.DisplayName)
	if err != nil {
		h.logger.Error("session issue failed", "error", err)
		httputil.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httputil.SetSessionCookie(w, token, h.sessions.TTL(), h.cookieConfig)
	httputil.JSON(w, http.StatusOK, map[string]string{"redirect": h.dashboard})
}

// Logout clears the session cookie.
// POST /auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	httputil.ClearSessionCookie(w, h.cookieConfig)
	w.WriteHeader(http.StatusNoContent)
}

func randomState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/fairwaylabs/teetime/internal/auth"
	"github.com/fairwaylabs/teetime/internal/httputil"
)

// GuardConfig names the guarded path prefixes and the login page.
type GuardConfig struct {
	// UIPrefix guards server-rendered admin pages; failures redirect.
	UIPrefix string
	// APIPrefix guards the admin JSON API; failures get the 401 envelope.
	APIPrefix string
	// LoginPath is always reachable, claim state notwithstanding.
	LoginPath string
}

// DefaultGuardConfig returns the standard admin prefixes.
func DefaultGuardConfig() GuardConfig {
	return GuardConfig{
		UIPrefix:  "/admin",
		APIPrefix: "/api/admin",
		LoginPath: "/admin/login",
	}
}

// AdminGuard gate-keeps administrative routes. It runs once per request,
// before any handler, and holds no state between requests; the signed
// claim in the session cookie is the whole session.
//
// Per request: the login path always passes. A guarded path passes only
// with a verified, unexpired claim, which is then attached to the request
// context. Unguarded paths pass untouched.
func AdminGuard(cfg GuardConfig, verifier auth.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path

			// The login page must stay reachable or an unauthenticated
			// visit would redirect forever.
			if path == cfg.LoginPath {
				next.ServeHTTP(w, r)
				return
			}

			isUI := underPrefix(path, cfg.UIPrefix)
			isAPI := underPrefix(path, cfg.APIPrefix)
			if !isUI && !isAPI {
				next.ServeHTTP(w, r)
				return
			}

			claims, ok := verifyRequest(r, verifier)
			if !ok {
				if isAPI {
					httputil.Unauthorized(w)
				} else {
					http.Redirect(w, r, cfg.LoginPath, http.StatusFound)
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.ContextWithClaims(r.Context(), claims)))
		})
	}
}

func verifyRequest(r *http.Request, verifier auth.TokenVerifier) (*auth.Claims, bool) {
	raw, ok := httputil.GetSessionFromCookie(r)
	if !ok {
		return nil, false
	}

	claims, err := verifier.Verify(raw)
	if err != nil {
		return nil, false
	}

	// The verifier already checks expiry; re-check here so an expired
	// claim can never pass regardless of verifier implementation.
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, false
	}

	return claims, true
}

func underPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

package login

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fairwaylabs/teetime/internal/auth"
	"github.com/fairwaylabs/teetime/internal/httputil"
)

const (
	testUsername = "demo"
	testPassword = "correct horse"
)

func newTestHandler(t *testing.T, tenantID string) (*Handler, *auth.SessionService) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	sessions := auth.NewSessionService(auth.SessionConfig{
		Secret: []byte("test-secret"),
		Issuer: "teetime-test",
		TTL:    time.Hour,
	})
	h := NewHandler(Config{
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Sessions:     sessions,
		Dev:          auth.NewDevVerifier(testUsername, string(hash)),
		DevTenantID:  tenantID,
		CookieConfig: httputil.DefaultCookieConfig(),
		LoginPath:    "/admin/login",
		Dashboard:    "/admin",
	})
	return h, sessions
}

func devLogin(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/dev/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.DevLogin(rec, req)
	return rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == "admin_session" {
			return c
		}
	}
	return nil
}

func TestDevLogin_Success(t *testing.T) {
	tenantID := uuid.New()
	h, sessions := newTestHandler(t, tenantID.String())

	rec := devLogin(h, `{"username":"demo","password":"correct horse"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "/admin", body["redirect"])

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie, "successful login must set the session cookie")
	assert.True(t, cookie.HttpOnly)

	claims, err := sessions.Verify(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, tenantID.String(), claims.TenantID)
	assert.Equal(t, testUsername, claims.Username)
}

func TestDevLogin_WrongPassword(t *testing.T) {
	h, _ := newTestHandler(t, uuid.NewString())

	rec := devLogin(h, `{"username":"demo","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, sessionCookie(rec), "failed login must not set a cookie")
}

func TestDevLogin_UnknownUsername(t *testing.T) {
	h, _ := newTestHandler(t, uuid.NewString())

	rec := devLogin(h, `{"username":"intruder","password":"correct horse"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDevLogin_MissingFields(t *testing.T) {
	h, _ := newTestHandler(t, uuid.NewString())

	rec := devLogin(h, `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Validation failed", body.Error)
	assert.Equal(t, "Username is required", body.Details["username"])
	assert.Equal(t, "Password is required", body.Details["password"])
}

func TestDevLogin_MalformedBody(t *testing.T) {
	h, _ := newTestHandler(t, uuid.NewString())

	rec := devLogin(h, `{broken`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDevLogin_MalformedTenantID(t *testing.T) {
	// A bad DEV_LOGIN_TENANT_ID is an operator mistake, not a client one.
	h, _ := newTestHandler(t, "not-a-uuid")

	rec := devLogin(h, `{"username":"demo","password":"correct horse"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLogout_ClearsCookie(t *testing.T) {
	h, _ := newTestHandler(t, uuid.NewString())

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Less(t, cookie.MaxAge, 0, "logout must expire the cookie")
	assert.Empty(t, cookie.Value)
}

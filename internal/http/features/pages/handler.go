package pages

import (
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/fairwaylabs/teetime/internal/auth"
)

// Handler handles admin page rendering.
type Handler struct {
	templates       *template.Template
	devLoginEnabled bool
}

// NewHandler creates a new pages handler.
func NewHandler(templatesDir string, devLoginEnabled bool) (*Handler, error) {
	tmpl, err := template.ParseGlob(filepath.Join(templatesDir, "*.html"))
	if err != nil {
		return nil, err
	}

	return &Handler{
		templates:       tmpl,
		devLoginEnabled: devLoginEnabled,
	}, nil
}

// PageData holds data for template rendering.
type PageData struct {
	Title           string
	Username        string
	DevLoginEnabled bool
}

// Login renders the admin login page.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	h.render(w, "login.html", PageData{
		Title:           "Sign In",
		DevLoginEnabled: h.devLoginEnabled,
	})
}

// Dashboard renders the dashboard shell. The guard has already attached
// verified claims by the time this runs.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	data := PageData{Title: "Dashboard"}
	if claims, ok := auth.ClaimsFromContext(r.Context()); ok {
		data.Username = claims.Username
	}
	h.render(w, "dashboard.html", data)
}

func (h *Handler) render(w http.ResponseWriter, tmpl string, data PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, tmpl, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

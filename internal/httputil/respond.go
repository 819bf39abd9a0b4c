package httputil

import (
	"encoding/json"
	"net/http"
	"strings"
)

// The envelope field names below (error, details, allowedMethods) are a
// frozen client contract; do not rename.

type errorResponse struct {
	Error string `json:"error"`
}

type validationResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details"`
}

type methodNotAllowedResponse struct {
	Error          string   `json:"error"`
	AllowedMethods []string `json:"allowedMethods"`
}

// JSON writes a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes a generic error envelope.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, errorResponse{Error: message})
}

// ValidationFailed writes the validation envelope with HTTP 400.
// details maps field names to human-readable messages and must be non-empty.
func ValidationFailed(w http.ResponseWriter, details map[string]string) {
	JSON(w, http.StatusBadRequest, validationResponse{
		Error:   "Validation failed",
		Details: details,
	})
}

// NotFound writes the not-found envelope for a named resource.
func NotFound(w http.ResponseWriter, resource string) {
	Error(w, http.StatusNotFound, resource+" not found")
}

// Unauthorized writes the unauthorized envelope.
func Unauthorized(w http.ResponseWriter) {
	Error(w, http.StatusUnauthorized, "Unauthorized")
}

// MethodNotAllowed writes the method-not-allowed envelope and Allow header.
func MethodNotAllowed(w http.ResponseWriter, allowed []string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	JSON(w, http.StatusMethodNotAllowed, methodNotAllowedResponse{
		Error:          "Method not allowed",
		AllowedMethods: allowed,
	})
}

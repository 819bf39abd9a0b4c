package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func assertExactKeys(t *testing.T, body map[string]any, keys ...string) {
	t.Helper()
	if len(body) != len(keys) {
		t.Errorf("body has %d fields %v, want exactly %v", len(body), body, keys)
	}
	for _, k := range keys {
		if _, ok := body[k]; !ok {
			t.Errorf("body missing field %q", k)
		}
	}
}

func TestJSON_Success(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusCreated, map[string]string{"id": "r1"})

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	body := decodeBody(t, rec)
	if body["id"] != "r1" {
		t.Errorf("id = %v, want r1", body["id"])
	}
}

func TestError_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusInternalServerError, "something broke")

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	body := decodeBody(t, rec)
	assertExactKeys(t, body, "error")
	if body["error"] != "something broke" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestValidationFailed_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationFailed(rec, map[string]string{"tenant_id": "Tenant ID is required"})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	body := decodeBody(t, rec)
	assertExactKeys(t, body, "error", "details")
	if body["error"] != "Validation failed" {
		t.Errorf("error = %v, want %q", body["error"], "Validation failed")
	}
	details, ok := body["details"].(map[string]any)
	if !ok || len(details) == 0 {
		t.Fatalf("details = %v, want non-empty map", body["details"])
	}
	if details["tenant_id"] != "Tenant ID is required" {
		t.Errorf("details.tenant_id = %v", details["tenant_id"])
	}
}

func TestNotFound_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, "Reservation")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	body := decodeBody(t, rec)
	assertExactKeys(t, body, "error")
	if body["error"] != "Reservation not found" {
		t.Errorf("error = %v, want %q", body["error"], "Reservation not found")
	}
}

func TestUnauthorized_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Unauthorized(rec)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	body := decodeBody(t, rec)
	assertExactKeys(t, body, "error")
	if body["error"] != "Unauthorized" {
		t.Errorf("error = %v, want %q", body["error"], "Unauthorized")
	}
}

func TestMethodNotAllowed_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	MethodNotAllowed(rec, []string{"GET", "POST"})

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != "GET, POST" {
		t.Errorf("Allow = %q", allow)
	}
	body := decodeBody(t, rec)
	assertExactKeys(t, body, "error", "allowedMethods")
	if body["error"] != "Method not allowed" {
		t.Errorf("error = %v, want %q", body["error"], "Method not allowed")
	}
	methods, ok := body["allowedMethods"].([]any)
	if !ok || len(methods) != 2 {
		t.Fatalf("allowedMethods = %v", body["allowedMethods"])
	}
}

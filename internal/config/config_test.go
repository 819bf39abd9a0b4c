package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	os.Setenv("SESSION_SECRET", "test-secret-key")
	defer os.Unsetenv("SESSION_SECRET")

	// Clear any other env vars that might interfere
	envVars := []string{
		"SERVER_ADDR", "SERVER_PORT", "DB_HOST", "DB_PORT", "DB_USER",
		"DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "SESSION_TTL",
		"DEV_LOGIN_ENABLED", "COOKIE_SECURE",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ServerAddr != "0.0.0.0" {
		t.Errorf("ServerAddr = %q, want %q", cfg.ServerAddr, "0.0.0.0")
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d, want %d", cfg.ServerPort, 8080)
	}
	if cfg.DBHost != "localhost" {
		t.Errorf("DBHost = %q, want %q", cfg.DBHost, "localhost")
	}
	if cfg.DBSSLMode != "disable" {
		t.Errorf("DBSSLMode = %q, want %q", cfg.DBSSLMode, "disable")
	}
	if cfg.SessionTTL != 8*time.Hour {
		t.Errorf("SessionTTL = %v, want %v", cfg.SessionTTL, 8*time.Hour)
	}
	if cfg.DevLoginEnabled {
		t.Error("DevLoginEnabled should default to false")
	}
	if cfg.HasLINE() {
		t.Error("HasLINE should be false without LINE env vars")
	}
}

func TestLoad_RequiredSessionSecret(t *testing.T) {
	os.Unsetenv("SESSION_SECRET")

	_, err := Load()
	if err == nil {
		t.Error("Load should fail when SESSION_SECRET is not set")
	}
}

func TestLoad_DevLoginRequiresHashAndTenant(t *testing.T) {
	os.Setenv("SESSION_SECRET", "test-secret-key")
	os.Setenv("DEV_LOGIN_ENABLED", "true")
	defer func() {
		os.Unsetenv("SESSION_SECRET")
		os.Unsetenv("DEV_LOGIN_ENABLED")
		os.Unsetenv("DEV_LOGIN_PASSWORD_HASH")
		os.Unsetenv("DEV_LOGIN_TENANT_ID")
	}()

	if _, err := Load(); err == nil {
		t.Error("Load should fail when dev login is enabled without a password hash")
	}

	os.Setenv("DEV_LOGIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")
	if _, err := Load(); err == nil {
		t.Error("Load should fail when dev login is enabled without a tenant id")
	}

	os.Setenv("DEV_LOGIN_TENANT_ID", "7b0d7b72-9a3f-4f58-95a4-f1cbd9a46e55")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.DevLoginEnabled {
		t.Error("DevLoginEnabled = false, want true")
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Setenv("SESSION_SECRET", "custom-secret")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("DB_HOST", "db.example.com")
	os.Setenv("SESSION_TTL", "30m")
	defer func() {
		os.Unsetenv("SESSION_SECRET")
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("DB_HOST")
		os.Unsetenv("SESSION_TTL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ServerPort != 9090 {
		t.Errorf("ServerPort = %d, want %d", cfg.ServerPort, 9090)
	}
	if cfg.DBHost != "db.example.com" {
		t.Errorf("DBHost = %q, want %q", cfg.DBHost, "db.example.com")
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("SessionTTL = %v, want %v", cfg.SessionTTL, 30*time.Minute)
	}
}

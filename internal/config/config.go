package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds application configuration.
type Config struct {
	// Server
	ServerAddr string
	ServerPort int
	AppBaseURL string

	// Database
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Session
	SessionSecret string
	SessionIssuer string
	SessionTTL    time.Duration
	CookieSecure  bool

	// LINE Login
	LINEChannelID     string
	LINEChannelSecret string
	LINERedirectURI   string

	// Development bypass login (off unless explicitly enabled)
	DevLoginEnabled      bool
	DevLoginUsername     string
	DevLoginPasswordHash string
	DevLoginTenantID     string

	// HTTP limits
	MaxRequestBodySize int64
	LoginRatePerMinute int
	BookRatePerMinute  int

	// Security headers
	SecurityHeaders SecurityHeadersConfig
}

// SecurityHeadersConfig controls the security headers middleware.
type SecurityHeadersConfig struct {
	Enabled            bool
	FrameOptions       string
	ContentTypeOptions string
	ReferrerPolicy     string
	HSTSMaxAge         int
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		// Server defaults
		ServerAddr: getEnv("SERVER_ADDR", "0.0.0.0"),
		ServerPort: getEnvInt("SERVER_PORT", 8080),
		AppBaseURL: getEnv("APP_BASE_URL", "http://localhost:8080"),

		// Database defaults
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnvInt("DB_PORT", 5432),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "teetime"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// Session defaults
		SessionSecret: getEnv("SESSION_SECRET", ""),
		SessionIssuer: getEnv("SESSION_ISSUER", "teetime"),
		SessionTTL:    getEnvDuration("SESSION_TTL", 8*time.Hour),
		CookieSecure:  getEnvBool("COOKIE_SECURE", false),

		// LINE Login (optional)
		LINEChannelID:     getEnv("LINE_CHANNEL_ID", ""),
		LINEChannelSecret: getEnv("LINE_CHANNEL_SECRET", ""),
		LINERedirectURI:   getEnv("LINE_REDIRECT_URI", ""),

		// Development bypass login
		DevLoginEnabled:      getEnvBool("DEV_LOGIN_ENABLED", false),
		DevLoginUsername:     getEnv("DEV_LOGIN_USERNAME", "demo"),
		DevLoginPasswordHash: getEnv("DEV_LOGIN_PASSWORD_HASH", ""),
		DevLoginTenantID:     getEnv("DEV_LOGIN_TENANT_ID", ""),

		// HTTP limits
		MaxRequestBodySize: getEnvInt64("MAX_REQUEST_BODY_SIZE", 1<<20),
		LoginRatePerMinute: getEnvInt("LOGIN_RATE_PER_MINUTE", 10),
		BookRatePerMinute:  getEnvInt("BOOK_RATE_PER_MINUTE", 30),

		SecurityHeaders: SecurityHeadersConfig{
			Enabled:            getEnvBool("SECURITY_HEADERS_ENABLED", true),
			FrameOptions:       getEnv("SECURITY_FRAME_OPTIONS", "DENY"),
			ContentTypeOptions: getEnv("SECURITY_CONTENT_TYPE_OPTIONS", "nosniff"),
			ReferrerPolicy:     getEnv("SECURITY_REFERRER_POLICY", "strict-origin-when-cross-origin"),
			HSTSMaxAge:         getEnvInt("SECURITY_HSTS_MAX_AGE", 0),
		},
	}

	// Validate required fields
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}
	if cfg.DevLoginEnabled && cfg.DevLoginPasswordHash == "" {
		return nil, fmt.Errorf("DEV_LOGIN_PASSWORD_HASH is required when DEV_LOGIN_ENABLED is set")
	}
	if cfg.DevLoginEnabled && cfg.DevLoginTenantID == "" {
		return nil, fmt.Errorf("DEV_LOGIN_TENANT_ID is required when DEV_LOGIN_ENABLED is set")
	}

	return cfg, nil
}

// HasLINE returns true if LINE Login is configured.
func (c *Config) HasLINE() bool {
	return c.LINEChannelID != "" && c.LINEChannelSecret != "" && c.LINERedirectURI != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

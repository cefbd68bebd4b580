package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress        string
	DatabaseURI       string
	UploadsDir        string
	JWTSecret         string
	TokenStrategy     string
	TokenTTL          time.Duration
	RazorpayBaseURL   string
	RazorpayKeyID     string
	RazorpayKeySecret string
	Currency          string
	AdminEmail        string
	AdminPassword     string
	ShutdownTimeout   time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultUploadsDir      = "uploads"
	defaultJWTSecret       = "change-me-in-production"
	defaultTokenStrategy   = "jwt"
	defaultTokenTTL        = 24 * time.Hour
	defaultRazorpayBaseURL = "https://api.razorpay.com"
	defaultCurrency        = "INR"
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		UploadsDir:        getString(lookup, "UPLOADS_DIR", defaultUploadsDir),
		JWTSecret:         getString(lookup, "JWT_SECRET", defaultJWTSecret),
		TokenStrategy:     getString(lookup, "TOKEN_STRATEGY", defaultTokenStrategy),
		TokenTTL:          getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		RazorpayBaseURL:   getString(lookup, "RAZORPAY_BASE_URL", defaultRazorpayBaseURL),
		RazorpayKeyID:     getString(lookup, "RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret: getString(lookup, "RAZORPAY_KEY_SECRET", ""),
		Currency:          getString(lookup, "CURRENCY", defaultCurrency),
		AdminEmail:        getString(lookup, "ADMIN_EMAIL", ""),
		AdminPassword:     getString(lookup, "ADMIN_PASSWORD", ""),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("notemart", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	shutdownTimeoutStr := cfg.ShutdownTimeout.String()
	tokenTTLStr := cfg.TokenTTL.String()

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.UploadsDir, "u", cfg.UploadsDir, "Directory for uploaded files")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.TokenStrategy, "token-strategy", cfg.TokenStrategy, "Auth token strategy (jwt or hmac)")
	fs.StringVar(&cfg.RazorpayBaseURL, "gateway-url", cfg.RazorpayBaseURL, "Payment gateway base URL")
	fs.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Auth token lifetime")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	if cfg.TokenStrategy != "jwt" && cfg.TokenStrategy != "hmac" {
		return nil, fmt.Errorf("unknown token strategy %q", cfg.TokenStrategy)
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

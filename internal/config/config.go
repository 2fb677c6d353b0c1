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
	RunAddress      string
	DatabaseURI     string
	AuthSecret      string
	TokenTTL        time.Duration
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultAuthSecret      = "change-me-in-production"
	defaultTokenTTL        = 24 * time.Hour
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		AuthSecret:      getString(lookup, "AUTH_SECRET", defaultAuthSecret),
		TokenTTL:        getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("grubtruck", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		tokenTTLStr        = cfg.TokenTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "Secret for signing auth tokens")
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

	if secretFile, ok := lookup("AUTH_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read auth secret file: %w", err)
		}
		cfg.AuthSecret = string(content)
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

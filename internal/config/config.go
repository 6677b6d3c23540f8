// Package config loads the client configuration from the environment,
// with a best-effort .env file on top for local development.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAPIBaseURL      = "http://localhost:8080/api"
	defaultHTTPTimeout     = 30 * time.Second
	defaultNotificationTTL = 5 * time.Second
	defaultSessionFileName = "session.json"

	envAPIBaseURL  = "OMBANK_API_URL"
	envSessionFile = "OMBANK_SESSION_FILE"
	envHTTPTimeout = "OMBANK_HTTP_TIMEOUT_SECONDS"
)

// Config holds the client's configuration surface.
type Config struct {
	APIBaseURL      string
	SessionFile     string
	HTTPTimeout     time.Duration
	NotificationTTL time.Duration
}

// Load reads configuration from the environment, falling back to defaults.
func Load(logger *slog.Logger) *Config {
	if logger == nil {
		logger = slog.Default()
	}

	// A missing .env file is the normal case outside development.
	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded .env file")
	}

	cfg := &Config{
		APIBaseURL:      defaultAPIBaseURL,
		SessionFile:     defaultSessionFile(logger),
		HTTPTimeout:     defaultHTTPTimeout,
		NotificationTTL: defaultNotificationTTL,
	}

	if v := os.Getenv(envAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envSessionFile); v != "" {
		cfg.SessionFile = v
	}
	if v := os.Getenv(envHTTPTimeout); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil || seconds <= 0 {
			logger.Warn("invalid HTTP timeout, using default",
				"value", v, "default", defaultHTTPTimeout)
		} else {
			cfg.HTTPTimeout = time.Duration(seconds) * time.Second
		}
	}

	logger.Debug("configuration loaded",
		"api_base_url", cfg.APIBaseURL, "session_file", cfg.SessionFile)
	return cfg
}

// defaultSessionFile places the persisted session triple under the user's
// home directory, or the working directory when home is unknown.
func defaultSessionFile(logger *slog.Logger) string {
	home, err := os.UserHomeDir()
	if err != nil {
		logger.Warn("could not determine home directory, storing session locally", "error", err)
		return defaultSessionFileName
	}
	return filepath.Join(home, ".ombank", defaultSessionFileName)
}

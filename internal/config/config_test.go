package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(envAPIBaseURL, "")
	t.Setenv(envSessionFile, "")
	t.Setenv(envHTTPTimeout, "")

	cfg := Load(nil)

	assert.Equal(t, defaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, defaultHTTPTimeout, cfg.HTTPTimeout)
	assert.Equal(t, defaultNotificationTTL, cfg.NotificationTTL)
	assert.NotEmpty(t, cfg.SessionFile)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv(envAPIBaseURL, "https://bank.example.com/api")
	t.Setenv(envSessionFile, "/tmp/teller-session.json")
	t.Setenv(envHTTPTimeout, "5")

	cfg := Load(nil)

	assert.Equal(t, "https://bank.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/teller-session.json", cfg.SessionFile)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
}

func TestLoad_InvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv(envHTTPTimeout, "not-a-number")

	cfg := Load(nil)
	assert.Equal(t, defaultHTTPTimeout, cfg.HTTPTimeout)
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookupDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := FromLookup(lookupFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, "release", cfg.GinMode)
	assert.Empty(t, cfg.CatalogFile)
	assert.Equal(t, "http://localhost:3000", cfg.CORSAllowOrigin)
	assert.Equal(t, DefaultBookingURL, cfg.BookingURL)
	assert.Equal(t, 300, cfg.CacheMaxAge)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, LogConfig{Mode: "production", Level: "info"}, cfg.Log)
}

func TestFromLookupOverrides(t *testing.T) {
	t.Parallel()

	cfg, err := FromLookup(lookupFrom(map[string]string{
		"PORT":              ":9090",
		"GIN_MODE":          "debug",
		"CATALOG_FILE":      "/etc/smilespa/products.yaml",
		"CORS_ALLOW_ORIGIN": "https://smilespawellness.com",
		"BOOKING_URL":       "https://booking.example.com/widget",
		"CACHE_MAX_AGE":     "0",
		"SHUTDOWN_TIMEOUT":  "2500ms",
		"LOG_MODE":          "development",
		"LOG_LEVEL":         "debug",
		"LOG_FILE":          "/var/log/smilespa/api.log",
		"UNRELATED":         "ignored",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, "/etc/smilespa/products.yaml", cfg.CatalogFile)
	assert.Equal(t, "https://smilespawellness.com", cfg.CORSAllowOrigin)
	assert.Equal(t, "https://booking.example.com/widget", cfg.BookingURL)
	assert.Equal(t, 0, cfg.CacheMaxAge)
	assert.Equal(t, 2500*time.Millisecond, cfg.ShutdownTimeout)
	assert.Equal(t, LogConfig{Mode: "development", Level: "debug", File: "/var/log/smilespa/api.log"}, cfg.Log)
}

func TestFromLookupBlankUsesDefault(t *testing.T) {
	t.Parallel()

	cfg, err := FromLookup(lookupFrom(map[string]string{"PORT": "   ", "GIN_MODE": ""}))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "release", cfg.GinMode)
}

func TestFromLookupInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		env     map[string]string
		wantMsg string
	}{
		{name: "PortNotNumber", env: map[string]string{"PORT": "http"}, wantMsg: "PORT"},
		{name: "PortOutOfRange", env: map[string]string{"PORT": "70000"}, wantMsg: "PORT"},
		{name: "GinMode", env: map[string]string{"GIN_MODE": "verbose"}, wantMsg: "GIN_MODE"},
		{name: "LogMode", env: map[string]string{"LOG_MODE": "loud"}, wantMsg: "LOG_MODE"},
		{name: "CacheMaxAge", env: map[string]string{"CACHE_MAX_AGE": "-1"}, wantMsg: "CACHE_MAX_AGE"},
		{name: "TimeoutWithoutUnit", env: map[string]string{"SHUTDOWN_TIMEOUT": "10"}, wantMsg: "SHUTDOWN_TIMEOUT"},
		{name: "RelativeBookingURL", env: map[string]string{"BOOKING_URL": "/book"}, wantMsg: "BOOKING_URL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := FromLookup(lookupFrom(tt.env))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}

	t.Run("ReportsAll", func(t *testing.T) {
		t.Parallel()
		_, err := FromLookup(lookupFrom(map[string]string{"PORT": "x", "GIN_MODE": "y"}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PORT")
		assert.Contains(t, err.Error(), "GIN_MODE")
	})
}

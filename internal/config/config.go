// Package config reads runtime settings from the environment, after loading
// an optional .env file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// ErrInvalidConfig wraps every rejected setting.
var ErrInvalidConfig = errors.New("config: invalid value")

// DefaultBookingURL is the hosted booking widget every "Book" button links to.
const DefaultBookingURL = "https://www.joinblvd.com/b/smilespawellness/widget#/visit-type"

// Config holds all settings for the API process.
type Config struct {
	Port            string
	GinMode         string
	CatalogFile     string
	CORSAllowOrigin string
	BookingURL      string
	CacheMaxAge     int
	ShutdownTimeout time.Duration

	Log LogConfig
}

// LogConfig selects the zap encoder, level and optional rotated file output.
type LogConfig struct {
	Mode  string
	Level string
	File  string
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Port
}

// Load reads .env (when present) and then the process environment.
func Load() (*Config, error) {
	// A missing .env is normal in production
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from any key lookup, such as os.LookupEnv.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := &Config{
		// PORT from some hosts arrives as ":8080"
		Port:            strings.TrimPrefix(get("PORT", "8080"), ":"),
		GinMode:         get("GIN_MODE", "release"),
		CatalogFile:     get("CATALOG_FILE", ""),
		CORSAllowOrigin: get("CORS_ALLOW_ORIGIN", "http://localhost:3000"),
		BookingURL:      get("BOOKING_URL", DefaultBookingURL),
		Log: LogConfig{
			Mode:  get("LOG_MODE", "production"),
			Level: get("LOG_LEVEL", "info"),
			File:  get("LOG_FILE", ""),
		},
	}

	var errs []error

	port, err := cast.ToIntE(cfg.Port)
	if err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("%w: PORT %q", ErrInvalidConfig, cfg.Port))
	}

	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("%w: GIN_MODE %q (want debug, release or test)", ErrInvalidConfig, cfg.GinMode))
	}

	switch cfg.Log.Mode {
	case "development", "production":
	default:
		errs = append(errs, fmt.Errorf("%w: LOG_MODE %q (want development or production)", ErrInvalidConfig, cfg.Log.Mode))
	}

	maxAge, err := cast.ToIntE(get("CACHE_MAX_AGE", "300"))
	if err != nil || maxAge < 0 {
		errs = append(errs, fmt.Errorf("%w: CACHE_MAX_AGE must be a non-negative number of seconds", ErrInvalidConfig))
	}
	cfg.CacheMaxAge = maxAge

	// A bare number would be read as nanoseconds, so a unit is required
	rawTimeout := get("SHUTDOWN_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(rawTimeout)
	if err != nil || timeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: SHUTDOWN_TIMEOUT %q", ErrInvalidConfig, rawTimeout))
	}
	cfg.ShutdownTimeout = timeout

	if u, err := url.Parse(cfg.BookingURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("%w: BOOKING_URL %q is not an absolute URL", ErrInvalidConfig, cfg.BookingURL))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

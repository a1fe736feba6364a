package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kth-tools/kthprofile/internal/logging"
)

const (
	DefaultAPIURL       = "https://api.kth.se"
	DefaultAPIVersion   = "1.1"
	DefaultTimeout      = 30 * time.Second
	DefaultMaxRedirects = 10
	DefaultLogLevel     = "warn"
)

// Config holds everything the lookup needs that would otherwise be an
// implicit library default.
type Config struct {
	APIURL       string
	APIVersion   string
	Timeout      time.Duration
	MaxRedirects int
	LogLevel     string
}

// Default returns the production configuration.
func Default() Config {
	return Config{
		APIURL:       DefaultAPIURL,
		APIVersion:   DefaultAPIVersion,
		Timeout:      DefaultTimeout,
		MaxRedirects: DefaultMaxRedirects,
		LogLevel:     DefaultLogLevel,
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("config: api url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config: api url %q must be absolute", c.APIURL)
	}
	if c.APIVersion == "" {
		return fmt.Errorf("config: api version is empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("config: timeout must be positive, got %s", c.Timeout)
	}
	if c.MaxRedirects < 0 {
		return fmt.Errorf("config: max redirects must not be negative, got %d", c.MaxRedirects)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ProfileURL returns the profile endpoint for identifier. The identifier is
// path-escaped so a "/" or "?" in it cannot change which resource is requested.
func (c Config) ProfileURL(identifier string) string {
	return strings.TrimSuffix(c.APIURL, "/") +
		"/api/profile/" + url.PathEscape(c.APIVersion) +
		"/" + url.PathEscape(identifier)
}

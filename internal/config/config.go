// Package config loads and validates the process configuration. Validation
// is a pure function over a Config value: it returns every field error it
// finds instead of accumulating state, so it is re-entrant and testable in
// isolation.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/tracklight-io/redmine-mcp/internal/constants"
)

// Config holds the validated process configuration.
type Config struct {
	// URL is the base address of the Redmine instance.
	URL string
	// APIKey is the static Redmine API credential.
	APIKey string
	// Timeout bounds each HTTP request.
	Timeout time.Duration
	// Debug enables transport request/response logging.
	Debug bool
}

// FieldError describes one invalid or missing configuration field.
type FieldError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Load reads configuration from the environment (REDMINE_URL,
// REDMINE_API_KEY, REDMINE_TIMEOUT, REDMINE_DEBUG) and an optional YAML
// config file, then validates it. The returned field errors are complete:
// every problem is reported, not just the first.
func Load(cfgFile string) (*Config, []FieldError) {
	v := viper.New()
	v.SetEnvPrefix("REDMINE")
	v.AutomaticEnv()
	v.SetDefault("timeout", constants.DefaultHTTPTimeout)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		// A missing or unreadable explicit config file surfaces as a
		// field error below via the empty values it leaves behind.
		_ = v.ReadInConfig()
	}

	cfg := &Config{
		URL:     strings.TrimRight(v.GetString("url"), "/"),
		APIKey:  v.GetString("api_key"),
		Timeout: v.GetDuration("timeout"),
		Debug:   v.GetBool("debug"),
	}

	return cfg, Validate(cfg)
}

// Validate checks a Config and returns every field error found. It has no
// side effects and no shared state.
func Validate(cfg *Config) []FieldError {
	var errs []FieldError

	switch {
	case cfg.URL == "":
		errs = append(errs, FieldError{Field: "url", Message: "REDMINE_URL is required"})
	default:
		parsed, err := url.Parse(cfg.URL)
		if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
			errs = append(errs, FieldError{Field: "url", Message: fmt.Sprintf("invalid base URL %q", cfg.URL)})
		}
	}

	if cfg.APIKey == "" {
		errs = append(errs, FieldError{Field: "api_key", Message: "REDMINE_API_KEY is required"})
	}

	if cfg.Timeout <= 0 {
		errs = append(errs, FieldError{Field: "timeout", Message: "timeout must be positive"})
	}

	return errs
}

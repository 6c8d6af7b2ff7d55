// Package config loads the server settings from the environment, an optional
// dotenv file and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/olgasafonova/wordpress-mcp-server/internal/base"
	apierrors "github.com/olgasafonova/wordpress-mcp-server/internal/errors"
)

// Setting keys. They double as environment variable names.
const (
	KeyURL       = "WORDPRESS_URL"
	KeyUsername  = "WORDPRESS_USERNAME"
	KeyPassword  = "WORDPRESS_APP_PASSWORD"
	KeyTimeout   = "WORDPRESS_TIMEOUT"
	KeyUserAgent = "WORDPRESS_USER_AGENT"
	KeyLogLevel  = "LOG_LEVEL"
	KeyHTTPAddr  = "MCP_HTTP_ADDR"
	KeyAuthToken = "MCP_AUTH_TOKEN"
)

// DefaultEnvFile is read when present and no other file is named.
const DefaultEnvFile = ".env"

var allKeys = []string{KeyURL, KeyUsername, KeyPassword, KeyTimeout, KeyUserAgent, KeyLogLevel, KeyHTTPAddr, KeyAuthToken}

// Config holds the server settings
type Config struct {
	// BaseURL is the site URL, e.g. https://blog.example.com
	BaseURL string

	// Username owns the application password
	Username string

	// Password is a WordPress application password
	Password string

	// Timeout for API requests
	Timeout time.Duration

	// UserAgent identifies the server to WordPress
	UserAgent string

	// LogLevel is debug, info, warn or error
	LogLevel string

	// HTTPAddr serves streamable HTTP instead of stdio when set
	HTTPAddr string

	// AuthToken, when set, is required as a bearer token on the HTTP transport
	AuthToken string
}

// New returns a viper instance with defaults and environment bindings.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyTimeout, base.DefaultTimeout.String())
	v.SetDefault(KeyUserAgent, base.DefaultUserAgent)
	v.SetDefault(KeyLogLevel, "info")
	for _, key := range allKeys {
		_ = v.BindEnv(key)
	}
	return v
}

// ReadEnvFile merges a dotenv file into v. Environment variables and flags
// still take precedence. A missing file is an error only when required.
func ReadEnvFile(v *viper.Viper, path string, required bool) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return &apierrors.ConfigurationError{Message: fmt.Sprintf("cannot read env file %s: %v", path, err)}
	}
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.MergeInConfig(); err != nil {
		return &apierrors.ConfigurationError{Message: fmt.Sprintf("cannot parse env file %s: %v", path, err)}
	}
	return nil
}

// Load reads the settings from v. Missing connection settings are reported
// together in one ConfigurationError.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		BaseURL:   strings.TrimSpace(v.GetString(KeyURL)),
		Username:  strings.TrimSpace(v.GetString(KeyUsername)),
		Password:  v.GetString(KeyPassword),
		UserAgent: v.GetString(KeyUserAgent),
		LogLevel:  strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		HTTPAddr:  strings.TrimSpace(v.GetString(KeyHTTPAddr)),
		AuthToken: strings.TrimSpace(v.GetString(KeyAuthToken)),
	}

	var missing []string
	if cfg.BaseURL == "" {
		missing = append(missing, KeyURL)
	}
	if cfg.Username == "" {
		missing = append(missing, KeyUsername)
	}
	if strings.TrimSpace(cfg.Password) == "" {
		missing = append(missing, KeyPassword)
	}
	if len(missing) > 0 {
		return nil, &apierrors.ConfigurationError{Missing: missing}
	}

	timeout, err := ParseTimeout(v.GetString(KeyTimeout))
	if err != nil {
		return nil, err
	}
	cfg.Timeout = timeout

	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Base converts the settings into the transport configuration.
func (c *Config) Base() base.Config {
	return base.Config{
		BaseURL:   c.BaseURL,
		Username:  c.Username,
		Password:  c.Password,
		Timeout:   c.Timeout,
		UserAgent: c.UserAgent,
	}
}

// ParseTimeout accepts whole seconds ("45") or a Go duration ("1m30s").
// Blank means the default.
func ParseTimeout(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return base.DefaultTimeout, nil
	}
	if secs, err := strconv.Atoi(s); err == nil {
		if secs <= 0 {
			return 0, &apierrors.ConfigurationError{Message: fmt.Sprintf("%s must be positive, got %q", KeyTimeout, s)}
		}
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, &apierrors.ConfigurationError{Message: fmt.Sprintf("%s must be seconds or a duration like 30s, got %q", KeyTimeout, s)}
	}
	return d, nil
}

// ParseLevel maps a level name onto slog.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, &apierrors.ConfigurationError{Message: fmt.Sprintf("%s must be debug, info, warn or error, got %q", KeyLogLevel, s)}
}

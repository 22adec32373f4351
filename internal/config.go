package internal

import (
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Auth modes.
const (
	AuthModeDisabled = "disabled"
	AuthModeSession  = "session"
)

// Config represents the application configuration.
type Config struct {
	App      ApplicationConfig `yaml:"app"`
	Data     DataConfig        `yaml:"data"`
	SQLite   SQLiteConfig      `yaml:"sqlite"`
	Auth     AuthConfig        `yaml:"auth"`
	Timeline TimelineConfig    `yaml:"timeline"`
	Refresh  RefreshConfig     `yaml:"refresh"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Data.Validate(); err != nil {
		return err
	}
	if err := c.SQLite.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	if err := c.Timeline.Validate(); err != nil {
		return err
	}
	return c.Refresh.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// DataConfig holds the path to the JSON data directory.
type DataConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the data configuration.
func (c *DataConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// SQLiteConfig holds SQLite database configuration.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the SQLite configuration.
func (c *SQLiteConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// AuthConfig holds authentication configuration.
//
// Mode controls how authentication is enforced:
//   - "disabled" (default): no authentication required, suitable for local dev.
//   - "session": demo-credential login with bearer-token sessions.
type AuthConfig struct {
	Mode              string `yaml:"mode"`
	InactivityMinutes int    `yaml:"inactivity_minutes"`
}

// Validate validates the auth configuration.
func (c *AuthConfig) Validate() error {
	// Normalise empty mode to "disabled" for backward compatibility.
	if c.Mode == "" {
		c.Mode = AuthModeDisabled
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Mode, validation.Required, validation.In(AuthModeDisabled, AuthModeSession)),
		validation.Field(&c.InactivityMinutes, validation.Min(0)),
	)
}

// AuthEnabled returns true when authentication is active.
func (c *AuthConfig) AuthEnabled() bool {
	return c.Mode == AuthModeSession
}

// InactivityLimit returns the idle timeout as a duration; zero means the
// built-in default applies.
func (c *AuthConfig) InactivityLimit() time.Duration {
	return time.Duration(c.InactivityMinutes) * time.Minute
}

// TimelineConfig holds the project display window. Dates are bare
// YYYY-MM-DD strings; empty values fall back to the built-in window.
type TimelineConfig struct {
	WindowStart string `yaml:"window_start"`
	WindowEnd   string `yaml:"window_end"`
}

// Validate validates the timeline configuration.
func (c *TimelineConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.WindowStart, validation.Date("2006-01-02")),
		validation.Field(&c.WindowEnd, validation.Date("2006-01-02")),
	)
}

// RefreshConfig holds the periodic refresh cadences, in seconds.
// Zero values fall back to the built-in defaults.
type RefreshConfig struct {
	LiveSeconds    int `yaml:"live_seconds"`
	SummarySeconds int `yaml:"summary_seconds"`
}

// Validate validates the refresh configuration.
func (c *RefreshConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LiveSeconds, validation.Min(0)),
		validation.Field(&c.SummarySeconds, validation.Min(0)),
	)
}

// LiveInterval returns the live refresh cadence as a duration.
func (c *RefreshConfig) LiveInterval() time.Duration {
	if c.LiveSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.LiveSeconds) * time.Second
}

// SummaryInterval returns the summary refresh cadence as a duration.
func (c *RefreshConfig) SummaryInterval() time.Duration {
	if c.SummarySeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.SummarySeconds) * time.Second
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		Data: DataConfig{
			Path: "./data",
		},
		SQLite: SQLiteConfig{
			Path: "./doko.db",
		},
		Auth: AuthConfig{
			Mode:              AuthModeDisabled,
			InactivityMinutes: 30,
		},
	}
}

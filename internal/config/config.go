package config

import (
	"time"
)

// Config represents the complete application configuration. Values come from
// the config file, environment variables, and flag bindings, in that order
// of increasing precedence.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Registry RegistryConfig `mapstructure:"registry"`
	Social   SocialConfig   `mapstructure:"social"`
	Browser  BrowserConfig  `mapstructure:"browser"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Health   HealthConfig   `mapstructure:"health"`
	Debug    DebugConfig    `mapstructure:"debug"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// RegistryConfig configures the trademark registry checker.
type RegistryConfig struct {
	// SearchURL overrides the registry's basic search page.
	SearchURL string `mapstructure:"search_url"`

	// Username and Password authenticate against the registry's login wall.
	// Also settable via the legacy INPI_USER / INPI_PASS variables.
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`

	// ScreenshotPath receives a debug capture when the search form cannot
	// be located. Empty disables captures.
	ScreenshotPath string `mapstructure:"screenshot_path"`

	NavigationTimeout time.Duration `mapstructure:"navigation_timeout"`
	ResultsTimeout    time.Duration `mapstructure:"results_timeout"`

	// ResultsFallbackWait is the fixed grace period observed when the
	// results table never signals readiness within ResultsTimeout.
	ResultsFallbackWait time.Duration `mapstructure:"results_fallback_wait"`

	SettleDelay  time.Duration `mapstructure:"settle_delay"`
	PollAttempts int           `mapstructure:"poll_attempts"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

// SocialConfig configures the profile handle checker.
type SocialConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	NavigationTimeout time.Duration `mapstructure:"navigation_timeout"`
	MaxConcurrent     int           `mapstructure:"max_concurrent"`
}

// BrowserConfig controls the shared browser automation layer.
type BrowserConfig struct {
	Headless       bool   `mapstructure:"headless"`
	UserAgent      string `mapstructure:"user_agent"`
	ViewportWidth  int    `mapstructure:"viewport_width"`
	ViewportHeight int    `mapstructure:"viewport_height"`

	// InstallBrowsers downloads the driver and browser bundle on startup.
	InstallBrowsers bool `mapstructure:"install_browsers"`
}

// LoggingConfig contains logging configuration.
// Supports progressive logging profiles:
// - SIMPLE: Console output only, minimal configuration (CLI)
// - STRUCTURED: Structured sinks, correlation IDs (server)
type LoggingConfig struct {
	// Level controls the minimum log level
	// Valid values: trace, debug, info, warn, error
	Level string `mapstructure:"level"`

	// Profile selects the logging complexity level
	// Valid values: SIMPLE, STRUCTURED
	Profile string `mapstructure:"profile"`
}

// MetricsConfig contains Prometheus metrics configuration
type MetricsConfig struct {
	// Enabled controls whether metrics are exposed
	Enabled bool `mapstructure:"enabled"`

	// Port is the dedicated metrics endpoint port (Prometheus format)
	// Metrics are also proxied at /metrics on the main HTTP port
	Port int `mapstructure:"port"`
}

// HealthConfig contains health check configuration
type HealthConfig struct {
	// Enabled controls whether health endpoints are exposed
	Enabled bool `mapstructure:"enabled"`
}

// DebugConfig contains debug and profiling configuration
type DebugConfig struct {
	// Enabled controls whether debug mode is active
	Enabled bool `mapstructure:"enabled"`

	// PprofEnabled controls whether pprof endpoints are exposed
	// WARNING: Only enable in development/staging environments
	PprofEnabled bool `mapstructure:"pprof_enabled"`
}

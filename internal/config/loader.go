// Package config provides centralized configuration management. Values are
// layered: built-in defaults, then the YAML config file, then environment
// variables (BRANDLENS_ prefix), then flag bindings.
package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix is the environment variable prefix for config overrides,
	// e.g. BRANDLENS_SERVER_PORT maps to server.port.
	EnvPrefix = "BRANDLENS"

	// AppName names the config directory and file.
	AppName = "brandlens"
)

var (
	appConfig *Config
	configMu  sync.RWMutex
)

// SetDefaults installs default configuration values on v.
func SetDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.shutdown_timeout", "10s")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.profile", "structured")

	// Registry defaults; zero-value timeouts fall back to the checker's own
	// budgets, so only authentication-free knobs get concrete defaults here.
	v.SetDefault("registry.search_url", "")
	v.SetDefault("registry.username", "")
	v.SetDefault("registry.password", "")
	v.SetDefault("registry.screenshot_path", "")
	v.SetDefault("registry.navigation_timeout", "30s")
	v.SetDefault("registry.results_timeout", "20s")
	v.SetDefault("registry.results_fallback_wait", "8s")
	v.SetDefault("registry.settle_delay", "3s")
	v.SetDefault("registry.poll_attempts", 5)
	v.SetDefault("registry.poll_interval", "1s")

	// Social defaults
	v.SetDefault("social.base_url", "")
	v.SetDefault("social.navigation_timeout", "30s")
	v.SetDefault("social.max_concurrent", 2)

	// Browser defaults
	v.SetDefault("browser.headless", true)
	v.SetDefault("browser.user_agent", "")
	v.SetDefault("browser.viewport_width", 1280)
	v.SetDefault("browser.viewport_height", 800)
	v.SetDefault("browser.install_browsers", false)

	// Metrics defaults
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.port", 9090)

	// Health check defaults
	v.SetDefault("health.enabled", true)

	// Debug defaults
	v.SetDefault("debug.enabled", false)
	v.SetDefault("debug.pprof_enabled", false)
}

// Load unmarshals the viper state into a typed Config, applies legacy
// credential aliases, and stores the result as the current configuration.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyLegacyCredentialAliases(cfg)

	setConfig(cfg)
	return cfg, nil
}

// applyLegacyCredentialAliases honors the INPI_USER / INPI_PASS variables
// used by earlier deployments when no prefixed value is set.
func applyLegacyCredentialAliases(cfg *Config) {
	if strings.TrimSpace(cfg.Registry.Username) == "" {
		cfg.Registry.Username = strings.TrimSpace(os.Getenv("INPI_USER"))
	}
	if strings.TrimSpace(cfg.Registry.Password) == "" {
		cfg.Registry.Password = strings.TrimSpace(os.Getenv("INPI_PASS"))
	}
}

// GetConfig returns the current application configuration (thread-safe)
func GetConfig() *Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return appConfig
}

// setConfig updates the current configuration (thread-safe)
func setConfig(cfg *Config) {
	configMu.Lock()
	defer configMu.Unlock()
	appConfig = cfg
}

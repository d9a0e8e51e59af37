package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newTestViper())
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Server defaults
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)

	// Registry defaults
	assert.Equal(t, 30*time.Second, cfg.Registry.NavigationTimeout)
	assert.Equal(t, 20*time.Second, cfg.Registry.ResultsTimeout)
	assert.Equal(t, 8*time.Second, cfg.Registry.ResultsFallbackWait)
	assert.Equal(t, 3*time.Second, cfg.Registry.SettleDelay)
	assert.Equal(t, 5, cfg.Registry.PollAttempts)
	assert.Equal(t, time.Second, cfg.Registry.PollInterval)

	// Social defaults
	assert.Equal(t, 30*time.Second, cfg.Social.NavigationTimeout)
	assert.Equal(t, 2, cfg.Social.MaxConcurrent)

	// Browser defaults
	assert.True(t, cfg.Browser.Headless)
	assert.Equal(t, 1280, cfg.Browser.ViewportWidth)
	assert.Equal(t, 800, cfg.Browser.ViewportHeight)
	assert.False(t, cfg.Browser.InstallBrowsers)

	// Logging defaults
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "structured", cfg.Logging.Profile)

	// Metrics defaults
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 9090, cfg.Metrics.Port)

	// Health and debug defaults
	assert.True(t, cfg.Health.Enabled)
	assert.False(t, cfg.Debug.Enabled)
	assert.False(t, cfg.Debug.PprofEnabled)
}

func TestLoadOverrides(t *testing.T) {
	v := newTestViper()
	v.Set("server.port", 9000)
	v.Set("registry.username", "someone")
	v.Set("registry.poll_attempts", 8)
	v.Set("browser.headless", false)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "someone", cfg.Registry.Username)
	assert.Equal(t, 8, cfg.Registry.PollAttempts)
	assert.False(t, cfg.Browser.Headless)

	// Non-overridden values keep their defaults.
	assert.Equal(t, "localhost", cfg.Server.Host)
}

func TestLoadDurationParsing(t *testing.T) {
	v := newTestViper()
	v.Set("registry.navigation_timeout", "45s")
	v.Set("registry.results_fallback_wait", "15s")
	v.Set("social.navigation_timeout", "2m")

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 45*time.Second, cfg.Registry.NavigationTimeout)
	assert.Equal(t, 15*time.Second, cfg.Registry.ResultsFallbackWait)
	assert.Equal(t, 2*time.Minute, cfg.Social.NavigationTimeout)
}

func TestLegacyCredentialAliases(t *testing.T) {
	t.Setenv("INPI_USER", "legacy-user")
	t.Setenv("INPI_PASS", "legacy-pass")

	cfg, err := Load(newTestViper())
	require.NoError(t, err)

	assert.Equal(t, "legacy-user", cfg.Registry.Username)
	assert.Equal(t, "legacy-pass", cfg.Registry.Password)
}

func TestLegacyAliasesDoNotOverrideExplicitValues(t *testing.T) {
	t.Setenv("INPI_USER", "legacy-user")
	t.Setenv("INPI_PASS", "legacy-pass")

	v := newTestViper()
	v.Set("registry.username", "explicit-user")
	v.Set("registry.password", "explicit-pass")

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "explicit-user", cfg.Registry.Username)
	assert.Equal(t, "explicit-pass", cfg.Registry.Password)
}

func TestGetConfigReturnsLoadedConfig(t *testing.T) {
	v := newTestViper()
	v.Set("server.port", 7777)

	cfg, err := Load(v)
	require.NoError(t, err)

	retrieved := GetConfig()
	require.NotNil(t, retrieved)
	assert.Equal(t, cfg.Server.Port, retrieved.Server.Port)
}

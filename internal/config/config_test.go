package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	m, err := NewManager()
	require.NoError(t, err)
	return m
}

func TestDefaults(t *testing.T) {
	m := newTestManager(t)
	cfg := m.GetConfig()

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 50.0, cfg.Server.RateLimit)
	assert.Equal(t, 100, cfg.Server.RateBurst)
	assert.Equal(t, "sqlite", cfg.Registry.Driver)
	assert.Equal(t, "./data/registry.db", cfg.Registry.SQLitePath)
	assert.Equal(t, 4, cfg.Registry.IDWidth)
	assert.Equal(t, 128, cfg.Report.CacheSize)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("COREZEN_SERVER_PORT", "9090")
	t.Setenv("COREZEN_LOGGING_LEVEL", "debug")
	t.Setenv("COREZEN_REGISTRY_ID_WIDTH", "6")

	m := newTestManager(t)
	cfg := m.GetConfig()

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 6, cfg.Registry.IDWidth)
}

func TestValidateDefaultsPass(t *testing.T) {
	m := newTestManager(t)
	assert.NoError(t, m.Validate())
}

func TestValidateFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m *Manager)
	}{
		{"bad port", func(m *Manager) { m.config.Server.Port = 0 }},
		{"bad rate limit", func(m *Manager) { m.config.Server.RateLimit = 0 }},
		{"unknown driver", func(m *Manager) { m.config.Registry.Driver = "mysql" }},
		{"sqlite without path", func(m *Manager) {
			m.config.Registry.Driver = "sqlite"
			m.config.Registry.SQLitePath = ""
		}},
		{"postgres without url", func(m *Manager) {
			m.config.Registry.Driver = "postgres"
			m.config.Registry.PostgresURL = ""
		}},
		{"bad id width", func(m *Manager) { m.config.Registry.IDWidth = 0 }},
		{"bad cache size", func(m *Manager) { m.config.Report.CacheSize = -1 }},
		{"bad log level", func(m *Manager) { m.config.Logging.Level = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager(t)
			tt.mutate(m)
			assert.Error(t, m.Validate())
		})
	}
}

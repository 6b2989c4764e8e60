package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"PORT", "LOG_LEVEL", "LOG_FORMAT", "LOG_DIR", "ENVIRONMENT", "SERVICE_NAME", "VERSION",
	"MINECRAFT_VERSION", "TEXTURE_BASE_URL", "CATALOGUE_SOURCE", "CATALOGUE_FILE", "SEARCH_LIMIT",
	"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME",
	"DB_MAX_CONNS", "DB_MAX_CONN_IDLE_TIME", "DB_MAX_CONN_LIFETIME",
	"API_KEY", "TRUSTED_PROXIES", "ENV_SCHEMA_VERSION",
}

// clearEnvVars unsets every variable the config reads; t.Setenv restores them afterwards
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, DefaultPort, cfg.Port)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, DefaultServiceName, cfg.ServiceName)
		assert.Equal(t, "1.16", cfg.MinecraftVersion)
		assert.Empty(t, cfg.TextureBaseURL)
		assert.Empty(t, cfg.CatalogueFile)
		assert.Equal(t, CatalogueSourceEmbedded, cfg.CatalogueSource)
		assert.False(t, cfg.UsesDatabase())
		assert.Equal(t, DefaultSearchLimit, cfg.SearchLimit)
		assert.Empty(t, cfg.APIKey)
		assert.Empty(t, cfg.TrustedProxies)
		assert.Equal(t, DefaultDBMaxConns, cfg.DBMaxConns)
		assert.Equal(t, 5*time.Minute, cfg.DBMaxConnIdleTime)
		assert.Equal(t, 30*time.Minute, cfg.DBMaxConnLifetime)
	})

	t.Run("from environment", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "3000")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("TEXTURE_BASE_URL", "https://cdn.example.com/textures/")
		t.Setenv("CATALOGUE_SOURCE", "Postgres")
		t.Setenv("CATALOGUE_FILE", "/etc/itemicon/items.json")
		t.Setenv("API_KEY", "secret")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.1, 10.0.0.2,")
		t.Setenv("DB_HOST", "db.example.com")
		t.Setenv("DB_MAX_CONNS", "50")
		t.Setenv("DB_MAX_CONN_IDLE_TIME", "10m")
		t.Setenv("DB_MAX_CONN_LIFETIME", "bad-duration")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "https://cdn.example.com/textures", cfg.TextureBaseURL)
		assert.True(t, cfg.UsesDatabase())
		assert.Equal(t, "/etc/itemicon/items.json", cfg.CatalogueFile)
		assert.Equal(t, "secret", cfg.APIKey)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
		assert.Equal(t, "db.example.com", cfg.DBHost)
		assert.Equal(t, 50, cfg.DBMaxConns)
		assert.Equal(t, 10*time.Minute, cfg.DBMaxConnIdleTime)
		assert.Equal(t, 30*time.Minute, cfg.DBMaxConnLifetime, "invalid durations fall back to the default")
	})

	t.Run("invalid PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "not-a-number")

		cfg, err := Load()
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid PORT value")
	})

	t.Run("invalid catalogue source", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("CATALOGUE_SOURCE", "redis")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CATALOGUE_SOURCE")
	})
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "d"}
	assert.Equal(t, "postgres://u:p@h:5432/d?sslmode=disable", cfg.GetDBConnString())
}

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected int
	}{
		{"valid", "100", 100},
		{"negative", "-10", -10},
		{"zero", "0", 0},
		{"invalid", "not-a-number", 42},
		{"float", "42.5", 42},
		{"empty", "", 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT_VAR", tt.value)
			assert.Equal(t, tt.expected, getEnvAsInt("TEST_INT_VAR", 42))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Duration
	}{
		{"minutes", "10m", 10 * time.Minute},
		{"complex", "1h30m45s", time.Hour + 30*time.Minute + 45*time.Second},
		{"milliseconds", "500ms", 500 * time.Millisecond},
		{"no unit", "100", 5 * time.Minute},
		{"invalid", "soon", 5 * time.Minute},
		{"empty", "", 5 * time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION_VAR", tt.value)
			assert.Equal(t, tt.expected, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
		})
	}
}

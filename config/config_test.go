package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LoadsDefaults(t *testing.T) {
	cfg, err := New()

	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.HTTP.Port)
	assert.Equal(t, "carmarket", cfg.Database.Name)
	assert.Equal(t, 10*time.Second, cfg.Database.ConnectTimeout)
}

func TestNew_EnvOverridesYAML(t *testing.T) {
	t.Setenv("DATABASE_NAME", "carmarket_test")

	cfg, err := New()

	require.NoError(t, err)
	assert.Equal(t, "carmarket_test", cfg.Database.Name)
}

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"database": map[string]any{
			"url":            "",
			"name":           "carmarket",
			"connectTimeout": "10s",
		},
		"http": map[string]any{
			"port": 8000,
		},
	}

	tests := []struct {
		raw  string
		want string
	}{
		{raw: "DATABASE_URL", want: "database.url"},
		{raw: "DATABASE_NAME", want: "database.name"},
		{raw: "HTTP_PORT", want: "http.port"},
		{raw: "UNKNOWN_VAR", want: "unknown.var"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, canonicalizeEnvKey(tt.raw, existing), tt.raw)
	}
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "connecttimeout", normalizeToken("connectTimeout"))
	assert.Equal(t, "connecttimeout", normalizeToken("connect_timeout"))
	assert.Equal(t, "db2", normalizeToken("DB-2"))
}

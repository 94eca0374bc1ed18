package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig_Defaults(t *testing.T) {
	t.Setenv("CATALOG_URL", "")
	t.Setenv("CATALOG_TOKEN", "")
	t.Setenv("CATALOG_REQUEST_TIMEOUT", "")
	t.Setenv("CATALOG_LOG_LEVEL", "")

	cfg, err := GetClientConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", cfg.Adapter.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.Adapter.Token)
}

func TestGetClientConfig_FromEnv(t *testing.T) {
	t.Setenv("CATALOG_URL", "http://catalog:3000")
	t.Setenv("CATALOG_TOKEN", "a.b.c")
	t.Setenv("CATALOG_REQUEST_TIMEOUT", "3s")

	cfg, err := GetClientConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://catalog:3000", cfg.Adapter.BaseURL)
	assert.Equal(t, "a.b.c", cfg.Adapter.Token)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
}

func TestGetClientConfig_NegativeTimeout(t *testing.T) {
	t.Setenv("CATALOG_REQUEST_TIMEOUT", "-1s")

	_, err := GetClientConfig()
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

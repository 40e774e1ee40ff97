package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remodj/billing-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "9876", cfg.Gate.Code)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Empty(t, cfg.Badge.URL, "badge disabled unless configured")
	assert.Equal(t, "3s", cfg.Badge.Timeout().String())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("GATE_CODE", "4321")
	t.Setenv("BADGE_TIMEOUT_MS", "500")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "4321", cfg.Gate.Code)
	assert.Equal(t, "500ms", cfg.Badge.Timeout().String())
}

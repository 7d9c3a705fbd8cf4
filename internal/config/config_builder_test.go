package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig_DefaultsApplied(t *testing.T) {
	overrides := &StructuredConfig{
		Adapter: Adapter{ServerAddress: "https://panel.example.com"},
	}

	cfg, err := GetClientConfig(overrides)
	require.NoError(t, err)

	assert.Equal(t, "https://panel.example.com", cfg.Adapter.ServerAddress)
	assert.Equal(t, "/admin-panel/api", cfg.Adapter.BasePath)
	assert.Equal(t, "/admin-panel/login", cfg.Adapter.LoginPath)
	assert.Equal(t, "csrftoken", cfg.Adapter.CSRFCookieName)
	assert.Equal(t, "X-CSRFToken", cfg.Adapter.CSRFHeaderName)
	assert.Zero(t, cfg.Adapter.RequestTimeout, "timeout defaults to the transport default")
}

func TestGetClientConfig_OverridesWinOverEnv(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "https://env.example.com")
	t.Setenv("ADAPTER_BASE_PATH", "/env/api")

	overrides := &StructuredConfig{
		Adapter: Adapter{ServerAddress: "https://flag.example.com"},
	}

	cfg, err := GetClientConfig(overrides)
	require.NoError(t, err)

	assert.Equal(t, "https://flag.example.com", cfg.Adapter.ServerAddress)
	// unset override fields still come from the environment
	assert.Equal(t, "/env/api", cfg.Adapter.BasePath)
}

func TestGetClientConfig_JSONFileMergedBelowEnv(t *testing.T) {
	path := writeTempJSON(t, `{
		"adapter": {
			"address": "https://json.example.com",
			"request_timeout": "45s"
		}
	}`)
	t.Setenv("CONFIG", path)
	t.Setenv("ADAPTER_ADDRESS", "https://env.example.com")

	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.Adapter.ServerAddress)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
}

func TestGetClientConfig_MissingAddress(t *testing.T) {
	_, err := GetClientConfig(nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "http://localhost:5000", cfg.Predictor.BaseURL)
	assert.Equal(t, 30, cfg.Predictor.TimeoutSeconds)
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfig(t, "predictor:\n  base_url: http://file:5000\n")

	t.Setenv("PREDICTOR_BASE_URL", "http://env:5000")
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://env:5000", cfg.Predictor.BaseURL)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigInvalidRedisPortEnv(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 8080\n")

	t.Setenv("REDIS_PORT", "not-a-port")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

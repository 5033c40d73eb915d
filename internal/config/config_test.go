package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, "server:\n  port: \"9090\"\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "facilitator-rpc-mainnet", cfg.Secrets.Name)
	assert.Equal(t, 20, cfg.Performance.MaxConcurrentFetches)
	assert.Equal(t, 8, cfg.Performance.RPCCallTimeoutSeconds)
	assert.Equal(t, 5, cfg.Performance.NearCallTimeoutSeconds)
	assert.Equal(t, 45, cfg.Performance.AggregationTimeoutSeconds)
	assert.Equal(t, 60, cfg.Cache.TTLSeconds)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "3000"
logging:
  level: debug
secrets:
  name: my-rpc-secret
  file: /run/secrets/rpc.json
performance:
  maxConcurrentFetches: 5
  rpcCallTimeoutSeconds: 3
cache:
  ttlSeconds: 10
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "my-rpc-secret", cfg.Secrets.Name)
	assert.Equal(t, "/run/secrets/rpc.json", cfg.Secrets.File)
	assert.Equal(t, 5, cfg.Performance.MaxConcurrentFetches)
	assert.Equal(t, 3, cfg.Performance.RPCCallTimeoutSeconds)
	assert.Equal(t, 10, cfg.Cache.TTLSeconds)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "server: [not a mapping")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 60, cfg.Cache.TTLSeconds)
}

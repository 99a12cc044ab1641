package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad_ValidConfig(t *testing.T) {
	// Создаем временный конфиг файл
	configContent := `
env: test
api_client:
  base_url: "http://localhost:5000/api"
  timeout: 15s
http_server:
  address: "localhost:8081"
  timeout: 30s
  idle_timeout: 60s
session_storage:
  type: redis
  file_path: "/tmp/session.json"
  redis_connection:
    addr: "localhost:6379"
    password: "redis_pass"
    user: "redis_user"
    db: 1
    max_retries: 3
    dial_timeout: 5s
    timeout: 10s
`

	tmpFile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer func() {
		err = os.Remove(tmpFile.Name())
		require.NoError(t, err)
	}()

	_, err = tmpFile.WriteString(configContent)
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())

	t.Setenv("CONFIG_PATH", tmpFile.Name())

	cfg := MustLoad()

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "http://localhost:5000/api", cfg.APIClient.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.APIClient.Timeout)
	assert.Equal(t, "localhost:8081", cfg.HTTPServer.Address)
	assert.Equal(t, 30*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, 60*time.Second, cfg.HTTPServer.IdleTimeout)
	assert.Equal(t, "redis", cfg.SessionStorage.Type)
	assert.Equal(t, "/tmp/session.json", cfg.SessionStorage.FilePath)
	assert.Equal(t, "localhost:6379", cfg.RedisConnection.Addr)
	assert.Equal(t, 1, cfg.RedisConnection.DB)
	assert.Equal(t, 5*time.Second, cfg.RedisConnection.DialTimeout)
}

func TestMustLoad_Defaults(t *testing.T) {
	configContent := `
env: local
api_client:
  base_url: "http://localhost:5000/api"
`
	tmpFile, err := os.CreateTemp("", "test_config_defaults_*.yaml")
	require.NoError(t, err)
	defer func() { _ = os.Remove(tmpFile.Name()) }()

	_, err = tmpFile.WriteString(configContent)
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())

	t.Setenv("CONFIG_PATH", tmpFile.Name())

	cfg := MustLoad()

	assert.Equal(t, 10*time.Second, cfg.APIClient.Timeout)
	assert.Equal(t, "localhost:8080", cfg.HTTPServer.Address)
	assert.Equal(t, "file", cfg.SessionStorage.Type)
	assert.Equal(t, ".inventory-console/session.json", cfg.SessionStorage.FilePath)
}

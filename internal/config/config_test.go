package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
  transport: http
db:
  path: /tmp/file.db
log:
  level: debug
`), 0o600))

	t.Setenv("CURRICULUM_CONFIG_PATH", path)
	t.Setenv("CURRICULUM_DB_PATH", "/tmp/env.db")
	t.Setenv("CURRICULUM_ADMIN_PASSWORD", "from-env-secret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, TransportHTTP, cfg.Server.Transport)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, "/tmp/env.db", cfg.DB.Path)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "from-env-secret", cfg.Admin.Password)
}

func TestLoad_InvalidPortEnv(t *testing.T) {
	t.Setenv("CURRICULUM_SERVER_PORT", "eighty")
	_, err := Load()
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("CURRICULUM_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Server.Transport = "grpc"
	require.ErrorContains(t, cfg.Validate(), "invalid transport")

	cfg = Default()
	cfg.Server.Port = 70000
	require.ErrorContains(t, cfg.Validate(), "invalid server port")

	cfg = Default()
	cfg.DB.Path = ""
	require.Error(t, cfg.Validate())
}

func TestLoad_AuthEnv(t *testing.T) {
	t.Setenv("CURRICULUM_AUTH_ENABLED", "true")
	t.Setenv("CURRICULUM_TRANSPORT", "http")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.Auth.Enabled)
	require.Equal(t, TransportHTTP, cfg.Server.Transport)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "teampulse.db", cfg.DBPath)
	assert.Equal(t, 8, cfg.DashboardFanOut)
	assert.Equal(t, 16, cfg.EventBufferSize)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TEAMPULSE_SERVER_ADDR", ":9090")
	t.Setenv("TEAMPULSE_DB_PATH", "/tmp/pulse.db")
	t.Setenv("TEAMPULSE_DASHBOARD_FAN_OUT", "2")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "/tmp/pulse.db", cfg.DBPath)
	assert.Equal(t, 2, cfg.DashboardFanOut)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := `
server:
  addr: ":3000"
  shutdown_timeout: 5s
db_path: data/pulse.db
event_buffer_size: 64
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "data/pulse.db", cfg.DBPath)
	assert.Equal(t, 64, cfg.EventBufferSize)
	assert.Equal(t, 8, cfg.DashboardFanOut, "unset keys keep their defaults")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

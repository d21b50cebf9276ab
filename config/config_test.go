package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sentinelhq/sentinel/db"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadNodeConfig(t *testing.T) {
	path := writeFile(t, "sentinel.yml", `
config:
  self_node:
    listen_addr: "127.0.0.1:8645"
    metrics_addr: "127.0.0.1:9100"
    oracle_pubkey: "6a4dd9b6efe0fc8f125be331735b0e33239e24f02c84e555ade9ea50bd1369db"
  storage:
    backend: "boltdb"
    path: "/var/lib/sentinel"
`)
	cfg, err := LoadNodeConfig(path)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:8645", cfg.SelfNode.ListenAddr)
	require.Equal(t, "boltdb", cfg.Storage.Backend)

	pc := cfg.ProviderConfig()
	require.Equal(t, db.BackendBoltDB, pc.Backend)
	require.Equal(t, "/var/lib/sentinel", pc.Path)
	require.NoError(t, pc.Validate())
}

func TestLoadNodeConfigDefaults(t *testing.T) {
	path := writeFile(t, "sentinel.yml", `
config:
  self_node: {}
`)
	cfg, err := LoadNodeConfig(path)
	require.NoError(t, err)
	require.Equal(t, DefaultListenAddr, cfg.SelfNode.ListenAddr)
	require.Equal(t, DefaultMetricsAddr, cfg.SelfNode.MetricsAddr)
	require.Equal(t, string(db.BackendLevelDB), cfg.Storage.Backend)
	require.Equal(t, DefaultDataDir, cfg.Storage.Path)
}

func TestLoadTuningConfig(t *testing.T) {
	path := writeFile(t, "tuning.ini", `
[server]
read_timeout_ms = 5000
write_timeout_ms = 7000

[events]
buffer_size = 128
`)
	serverCfg, err := LoadServerConfig(path)
	require.NoError(t, err)
	require.Equal(t, 5000, serverCfg.ReadTimeoutMs)
	require.Equal(t, 7000, serverCfg.WriteTimeoutMs)

	eventsCfg, err := LoadEventsConfig(path)
	require.NoError(t, err)
	require.Equal(t, 128, eventsCfg.BufferSize)
}

func TestLoadTuningConfigMissingSections(t *testing.T) {
	path := writeFile(t, "tuning.ini", "")
	serverCfg, err := LoadServerConfig(path)
	require.NoError(t, err)
	require.Equal(t, DefaultReadTimeoutMs, serverCfg.ReadTimeoutMs)

	eventsCfg, err := LoadEventsConfig(path)
	require.NoError(t, err)
	require.Equal(t, DefaultEventBufferSize, eventsCfg.BufferSize)
}

package config

import (
	"os"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"github.com/sentinelhq/sentinel/db"
	"github.com/sentinelhq/sentinel/logx"
)

// LoadNodeConfig reads and parses the sentinel.yml file
func LoadNodeConfig(path string) (*NodeConfigFile, error) {
	file, err := os.Open(path)
	if err != nil {
		logx.Error("CONFIG", "Failed to open config file: ", err)
		return nil, err
	}
	defer file.Close()

	var cfgFile ConfigFile
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfgFile); err != nil {
		logx.Error("CONFIG", "Failed to decode YAML: ", err)
		return nil, err
	}
	applyDefaults(&cfgFile.Config)
	logx.Info("CONFIG", "Loaded config: listen=", cfgFile.Config.SelfNode.ListenAddr,
		" storage=", cfgFile.Config.Storage.Backend)
	return &cfgFile.Config, nil
}

func applyDefaults(cfg *NodeConfigFile) {
	if cfg.SelfNode.ListenAddr == "" {
		cfg.SelfNode.ListenAddr = DefaultListenAddr
	}
	if cfg.SelfNode.MetricsAddr == "" {
		cfg.SelfNode.MetricsAddr = DefaultMetricsAddr
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = string(db.BackendLevelDB)
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = DefaultDataDir
	}
	if cfg.SelfNode.KeyDir == "" {
		cfg.SelfNode.KeyDir = DefaultKeyDir
	}
}

// ProviderConfig converts the storage section to a db provider config
func (c *NodeConfigFile) ProviderConfig() db.ProviderConfig {
	return db.ProviderConfig{
		Backend: db.Backend(c.Storage.Backend),
		Path:    c.Storage.Path,
		Address: c.Storage.Address,
	}
}

type ServerConfig struct {
	ReadTimeoutMs  int `ini:"read_timeout_ms"`
	WriteTimeoutMs int `ini:"write_timeout_ms"`
}

type EventsConfig struct {
	BufferSize int `ini:"buffer_size"`
}

// LoadServerConfig reads server tuning from an .ini file
func LoadServerConfig(path string) (*ServerConfig, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	serverSection := cfg.Section("server")
	serverCfg := &ServerConfig{
		ReadTimeoutMs:  DefaultReadTimeoutMs,
		WriteTimeoutMs: DefaultWriteTimeoutMs,
	}
	err = serverSection.MapTo(serverCfg)
	if err != nil {
		return nil, err
	}
	return serverCfg, nil
}

func LoadEventsConfig(path string) (*EventsConfig, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	eventsSection := cfg.Section("events")
	eventsCfg := &EventsConfig{BufferSize: DefaultEventBufferSize}
	err = eventsSection.MapTo(eventsCfg)
	if err != nil {
		return nil, err
	}
	return eventsCfg, nil
}

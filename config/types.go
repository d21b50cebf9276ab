package config

// NodeConfig holds the service endpoints and key material paths
type NodeConfig struct {
	ListenAddr   string `yaml:"listen_addr"`
	MetricsAddr  string `yaml:"metrics_addr"`
	OraclePubkey string `yaml:"oracle_pubkey"`
	KeyDir       string `yaml:"key_dir"`
}

// StorageConfig selects the backing key-value store
type StorageConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
	Address string `yaml:"address"`
}

type LogConfig struct {
	Directory  string `yaml:"directory"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// NodeConfigFile holds the configuration from sentinel.yml
type NodeConfigFile struct {
	SelfNode NodeConfig    `yaml:"self_node"`
	Storage  StorageConfig `yaml:"storage"`
	Log      LogConfig     `yaml:"log"`
}

// ConfigFile is the top-level structure for sentinel.yml
type ConfigFile struct {
	Config NodeConfigFile `yaml:"config"`
}

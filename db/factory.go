package db

import "fmt"

// Backend selects a DatabaseProvider implementation
type Backend string

const (
	BackendLevelDB  Backend = "leveldb"
	BackendBoltDB   Backend = "boltdb"
	BackendRedis    Backend = "redis"
	BackendPostgres Backend = "postgres"
	BackendMemory   Backend = "memory"
)

// ProviderConfig holds configuration for creating a provider instance
type ProviderConfig struct {
	// Backend specifies which implementation to use
	Backend Backend `json:"backend" yaml:"backend"`

	// Path is the database directory or file (file-based backends)
	Path string `json:"path" yaml:"path"`

	// Address is the server address (redis) or DSN (postgres)
	Address string `json:"address" yaml:"address"`
}

// Validate validates the provider configuration
func (pc *ProviderConfig) Validate() error {
	switch pc.Backend {
	case BackendLevelDB, BackendBoltDB:
		if pc.Path == "" {
			return fmt.Errorf("backend %s requires a path", pc.Backend)
		}
	case BackendRedis, BackendPostgres:
		if pc.Address == "" {
			return fmt.Errorf("backend %s requires an address", pc.Backend)
		}
	case BackendMemory:
	case "":
		return fmt.Errorf("db backend cannot be empty")
	default:
		return fmt.Errorf("unsupported db backend: %s", pc.Backend)
	}
	return nil
}

// NewProvider creates the provider selected by cfg
func NewProvider(cfg ProviderConfig) (DatabaseProvider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case BackendLevelDB:
		return NewLevelDBProvider(cfg.Path)
	case BackendBoltDB:
		return NewBoltDBProvider(cfg.Path)
	case BackendRedis:
		return NewRedisProvider(cfg.Address)
	case BackendPostgres:
		return NewPostgresProvider(cfg.Address)
	case BackendMemory:
		return NewMemoryProvider(), nil
	default:
		return nil, fmt.Errorf("unsupported db backend: %s", cfg.Backend)
	}
}

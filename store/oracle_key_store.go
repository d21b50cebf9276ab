package store

import (
	"fmt"
	"sync"

	"github.com/sentinelhq/sentinel/db"
	"github.com/sentinelhq/sentinel/types"
)

// OracleKeyStore holds the process-wide oracle public key under a fixed
// configuration key. The key is written once; the write-once invariant is
// enforced here so every caller sees the same rule.
type OracleKeyStore interface {
	// SetOnce stores the key. Reports false (and leaves the stored key
	// untouched) when a key is already present.
	SetOnce(key types.OracleKey) (bool, error)
	Get() (types.OracleKey, bool, error)
	Has() (bool, error)
}

type GenericOracleKeyStore struct {
	mu         sync.Mutex
	dbProvider db.DatabaseProvider
}

func NewGenericOracleKeyStore(dbProvider db.DatabaseProvider) (*GenericOracleKeyStore, error) {
	if dbProvider == nil {
		return nil, fmt.Errorf("provider cannot be nil")
	}

	return &GenericOracleKeyStore{
		dbProvider: dbProvider,
	}, nil
}

func (ks *GenericOracleKeyStore) SetOnce(key types.OracleKey) (bool, error) {
	ks.mu.Lock()
	defer ks.mu.Unlock()

	has, err := ks.dbProvider.Has([]byte(KeyOraclePubkey))
	if err != nil {
		return false, fmt.Errorf("failed to check oracle key presence: %w", err)
	}
	if has {
		return false, nil
	}

	if err := ks.dbProvider.Put([]byte(KeyOraclePubkey), key[:]); err != nil {
		return false, fmt.Errorf("failed to write oracle key: %w", err)
	}
	return true, nil
}

func (ks *GenericOracleKeyStore) Get() (types.OracleKey, bool, error) {
	data, err := ks.dbProvider.Get([]byte(KeyOraclePubkey))
	if err != nil {
		return types.OracleKey{}, false, fmt.Errorf("failed to get oracle key: %w", err)
	}
	if data == nil {
		return types.OracleKey{}, false, nil
	}

	key, err := types.OracleKeyFromBytes(data)
	if err != nil {
		return types.OracleKey{}, false, fmt.Errorf("stored oracle key is corrupt: %w", err)
	}
	return key, true, nil
}

func (ks *GenericOracleKeyStore) Has() (bool, error) {
	return ks.dbProvider.Has([]byte(KeyOraclePubkey))
}

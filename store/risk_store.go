package store

import (
	"fmt"
	"sync"

	"github.com/sentinelhq/sentinel/db"
	"github.com/sentinelhq/sentinel/jsonx"
	"github.com/sentinelhq/sentinel/logx"
	"github.com/sentinelhq/sentinel/types"
)

// RiskStore persists per-wallet risk state. Records are only ever created or
// overwritten through the verified submission path, never deleted.
type RiskStore interface {
	Store(wallet string, state *types.RiskState) error
	GetByWallet(wallet string) (*types.RiskState, error)
	ExistsByWallet(wallet string) (bool, error)
	MustClose()
}

type GenericRiskStore struct {
	mu         sync.RWMutex
	dbProvider db.DatabaseProvider
}

func NewGenericRiskStore(dbProvider db.DatabaseProvider) (*GenericRiskStore, error) {
	if dbProvider == nil {
		return nil, fmt.Errorf("provider cannot be nil")
	}

	return &GenericRiskStore{
		dbProvider: dbProvider,
	}, nil
}

func (rs *GenericRiskStore) Store(wallet string, state *types.RiskState) error {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	data, err := jsonx.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal risk state: %w", err)
	}

	if err := rs.dbProvider.Put(rs.getDbKey(wallet), data); err != nil {
		return fmt.Errorf("failed to write risk state to db: %w", err)
	}

	return nil
}

// GetByWallet returns the stored state, or nil for a wallet that has never
// been scored. Absence is a valid state, not an error.
func (rs *GenericRiskStore) GetByWallet(wallet string) (*types.RiskState, error) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	data, err := rs.dbProvider.Get(rs.getDbKey(wallet))
	if err != nil {
		return nil, fmt.Errorf("could not get risk state for %s from db: %w", wallet, err)
	}
	if data == nil {
		return nil, nil
	}

	var state types.RiskState
	if err := jsonx.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal risk state for %s: %w", wallet, err)
	}
	return &state, nil
}

func (rs *GenericRiskStore) ExistsByWallet(wallet string) (bool, error) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	return rs.dbProvider.Has(rs.getDbKey(wallet))
}

func (rs *GenericRiskStore) MustClose() {
	if err := rs.dbProvider.Close(); err != nil {
		logx.Error("RISK_STORE", "Failed to close db provider:", err.Error())
	}
}

func (rs *GenericRiskStore) getDbKey(wallet string) []byte {
	return []byte(PrefixRiskState + wallet)
}

package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sentinelhq/sentinel/db"
	"github.com/sentinelhq/sentinel/types"
)

func TestRiskStoreRoundTrip(t *testing.T) {
	rs, err := NewGenericRiskStore(db.NewMemoryProvider())
	require.NoError(t, err)

	// Unknown wallet: nil state, no error
	state, err := rs.GetByWallet("wallet-a")
	require.NoError(t, err)
	require.Nil(t, state)

	exists, err := rs.ExistsByWallet("wallet-a")
	require.NoError(t, err)
	require.False(t, exists)

	written := &types.RiskState{
		RiskScore:   87,
		LastUpdated: 1737718800,
		Decision:    types.Freeze(),
	}
	require.NoError(t, rs.Store("wallet-a", written))

	state, err = rs.GetByWallet("wallet-a")
	require.NoError(t, err)
	require.Equal(t, written, state)

	exists, err = rs.ExistsByWallet("wallet-a")
	require.NoError(t, err)
	require.True(t, exists)

	// Overwrite replaces the whole record
	require.NoError(t, rs.Store("wallet-a", &types.RiskState{
		RiskScore:   10,
		LastUpdated: 1737718900,
		Decision:    types.Allow(),
	}))
	state, err = rs.GetByWallet("wallet-a")
	require.NoError(t, err)
	require.Equal(t, uint32(10), state.RiskScore)
	require.Equal(t, types.Allow(), state.Decision)
}

func TestRiskStoreDecisionVariants(t *testing.T) {
	rs, err := NewGenericRiskStore(db.NewMemoryProvider())
	require.NoError(t, err)

	for wallet, decision := range map[string]types.RiskDecision{
		"w-allow":  types.Allow(),
		"w-limit":  types.Limit(5000),
		"w-freeze": types.Freeze(),
	} {
		require.NoError(t, rs.Store(wallet, &types.RiskState{Decision: decision}))
		state, err := rs.GetByWallet(wallet)
		require.NoError(t, err)
		require.Equal(t, decision, state.Decision)
	}
}

func TestNilProviderRejected(t *testing.T) {
	_, err := NewGenericRiskStore(nil)
	require.Error(t, err)

	_, err = NewGenericOracleKeyStore(nil)
	require.Error(t, err)
}

func TestOracleKeyStoreWriteOnce(t *testing.T) {
	ks, err := NewGenericOracleKeyStore(db.NewMemoryProvider())
	require.NoError(t, err)

	has, err := ks.Has()
	require.NoError(t, err)
	require.False(t, has)

	_, found, err := ks.Get()
	require.NoError(t, err)
	require.False(t, found)

	first := types.OracleKey{1, 2, 3}
	stored, err := ks.SetOnce(first)
	require.NoError(t, err)
	require.True(t, stored)

	// Second registration fails and leaves the first key untouched
	second := types.OracleKey{9, 9, 9}
	stored, err = ks.SetOnce(second)
	require.NoError(t, err)
	require.False(t, stored)

	key, found, err := ks.Get()
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, first, key)
}

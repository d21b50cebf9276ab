package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openProviders(t *testing.T) map[string]DatabaseProvider {
	t.Helper()

	leveldbProvider, err := NewLevelDBProvider(filepath.Join(t.TempDir(), "leveldb"))
	require.NoError(t, err)

	boltProvider, err := NewBoltDBProvider(filepath.Join(t.TempDir(), "sentinel.db"))
	require.NoError(t, err)

	providers := map[string]DatabaseProvider{
		"memory":  NewMemoryProvider(),
		"leveldb": leveldbProvider,
		"boltdb":  boltProvider,
	}
	t.Cleanup(func() {
		for _, p := range providers {
			p.Close()
		}
	})
	return providers
}

func TestProviderRoundTrip(t *testing.T) {
	for name, p := range openProviders(t) {
		t.Run(name, func(t *testing.T) {
			key := []byte("risk:wallet-a")

			// Absent key reads as nil, not an error
			value, err := p.Get(key)
			require.NoError(t, err)
			require.Nil(t, value)

			has, err := p.Has(key)
			require.NoError(t, err)
			require.False(t, has)

			require.NoError(t, p.Put(key, []byte("v1")))

			value, err = p.Get(key)
			require.NoError(t, err)
			require.Equal(t, []byte("v1"), value)

			has, err = p.Has(key)
			require.NoError(t, err)
			require.True(t, has)

			// Overwrite replaces
			require.NoError(t, p.Put(key, []byte("v2")))
			value, err = p.Get(key)
			require.NoError(t, err)
			require.Equal(t, []byte("v2"), value)

			require.NoError(t, p.Delete(key))
			value, err = p.Get(key)
			require.NoError(t, err)
			require.Nil(t, value)
		})
	}
}

func TestProviderBatch(t *testing.T) {
	for name, p := range openProviders(t) {
		t.Run(name, func(t *testing.T) {
			batch := p.Batch()
			batch.Put([]byte("risk:a"), []byte("1"))
			batch.Put([]byte("risk:b"), []byte("2"))
			batch.Delete([]byte("risk:a"))

			// Nothing visible before Write
			has, err := p.Has([]byte("risk:b"))
			require.NoError(t, err)
			require.False(t, has)

			require.NoError(t, batch.Write())
			batch.Close()

			value, err := p.Get([]byte("risk:a"))
			require.NoError(t, err)
			require.Nil(t, value)

			value, err = p.Get([]byte("risk:b"))
			require.NoError(t, err)
			require.Equal(t, []byte("2"), value)
		})
	}
}

func TestIteratePrefix(t *testing.T) {
	for name, p := range openProviders(t) {
		t.Run(name, func(t *testing.T) {
			iterable, ok := p.(IterableProvider)
			require.True(t, ok)

			require.NoError(t, p.Put([]byte("risk:a"), []byte("1")))
			require.NoError(t, p.Put([]byte("risk:b"), []byte("2")))
			require.NoError(t, p.Put([]byte("config:oracle_pubkey"), []byte("k")))

			seen := map[string]string{}
			err := iterable.IteratePrefix([]byte("risk:"), func(key, value []byte) bool {
				seen[string(key)] = string(value)
				return true
			})
			require.NoError(t, err)
			require.Equal(t, map[string]string{"risk:a": "1", "risk:b": "2"}, seen)
		})
	}
}

func TestProviderConfigValidate(t *testing.T) {
	require.Error(t, (&ProviderConfig{}).Validate())
	require.Error(t, (&ProviderConfig{Backend: "rocksdb"}).Validate())
	require.Error(t, (&ProviderConfig{Backend: BackendLevelDB}).Validate())
	require.Error(t, (&ProviderConfig{Backend: BackendRedis}).Validate())
	require.NoError(t, (&ProviderConfig{Backend: BackendMemory}).Validate())
	require.NoError(t, (&ProviderConfig{Backend: BackendLevelDB, Path: "/tmp/x"}).Validate())
	require.NoError(t, (&ProviderConfig{Backend: BackendPostgres, Address: "postgres://x"}).Validate())
}

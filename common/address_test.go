package common

import (
	"crypto/ed25519"
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddressRoundTrip(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	addr := AddressFromPubkey(pub)
	require.True(t, ValidateAddress(addr))

	decoded, err := DecodeAddress(addr)
	require.NoError(t, err)
	require.Equal(t, []byte(pub), decoded)
}

func TestAddressAlphabetIsJSONSafe(t *testing.T) {
	// Addresses are embedded verbatim inside signed JSON payloads, so the
	// encoding must never produce characters that need escaping.
	for i := 0; i < 64; i++ {
		pub, _, err := ed25519.GenerateKey(rand.Reader)
		require.NoError(t, err)
		addr := AddressFromPubkey(pub)
		require.False(t, strings.ContainsAny(addr, `"\`), "address %q needs JSON escaping", addr)
		for _, r := range addr {
			require.True(t, r > 0x20 && r < 0x7f, "address %q contains non-printable rune %q", addr, r)
		}
	}
}

func TestDecodeAddressRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		addr string
	}{
		{"empty", ""},
		{"non base58 characters", "0OIl+/"},
		{"wrong length", EncodeBytesToBase58([]byte("short"))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeAddress(tc.addr)
			require.Error(t, err)
			require.False(t, ValidateAddress(tc.addr))
		})
	}
}

package oracle

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sentinelhq/sentinel/common"
	"github.com/sentinelhq/sentinel/types"
)

func newTestSigner(t *testing.T) (*Signer, types.OracleKey) {
	t.Helper()
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	signer, err := NewSigner(priv)
	require.NoError(t, err)
	return signer, signer.PublicKey()
}

func testPayload() types.RiskPayload {
	walletPub, _, _ := ed25519.GenerateKey(rand.Reader)
	return types.RiskPayload{
		Wallet:    common.AddressFromPubkey(walletPub),
		RiskScore: 87,
		Timestamp: 1737718800,
	}
}

func TestVerifyValidSignature(t *testing.T) {
	signer, pub := newTestSigner(t)
	payload := testPayload()

	sig := signer.Sign(payload)
	require.True(t, Verify(payload, sig, pub))
}

func TestVerifyRejectsTamperedPayload(t *testing.T) {
	signer, pub := newTestSigner(t)
	payload := testPayload()
	sig := signer.Sign(payload)

	tampered := payload
	tampered.RiskScore = 10
	require.False(t, Verify(tampered, sig, pub))

	tampered = payload
	tampered.Timestamp++
	require.False(t, Verify(tampered, sig, pub))

	tampered = payload
	tampered.Wallet = testPayload().Wallet
	require.False(t, Verify(tampered, sig, pub))
}

func TestVerifyRejectsCorruptedSignature(t *testing.T) {
	signer, pub := newTestSigner(t)
	payload := testPayload()
	sig := signer.Sign(payload)

	for _, i := range []int{0, 31, 63} {
		corrupted := sig
		corrupted[i] ^= 0x01
		require.False(t, Verify(payload, corrupted, pub), "flipped byte %d", i)
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	signer, _ := newTestSigner(t)
	_, otherPub := newTestSigner(t)
	payload := testPayload()

	sig := signer.Sign(payload)
	require.False(t, Verify(payload, sig, otherPub))
}

func TestNewSignerFromSeed(t *testing.T) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	fromSeed, err := NewSigner(priv.Seed())
	require.NoError(t, err)
	fromFull, err := NewSigner(priv)
	require.NoError(t, err)
	require.Equal(t, fromFull.PublicKey(), fromSeed.PublicKey())

	_, err = NewSigner(make([]byte, 16))
	require.ErrorIs(t, err, ErrUnsupportedKey)
}

func TestGenerateAndLoadKeypair(t *testing.T) {
	dir := t.TempDir()

	pub, priv, err := GenerateKeypair(dir)
	require.NoError(t, err)

	loaded, err := LoadPrivateKey(dir)
	require.NoError(t, err)
	require.Equal(t, []byte(priv), loaded)

	signer, err := NewSigner(loaded)
	require.NoError(t, err)
	require.Equal(t, pub, signer.PublicKey().PublicKey())
}

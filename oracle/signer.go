package oracle

import (
	"crypto/ed25519"
	"errors"

	"github.com/sentinelhq/sentinel/canonical"
	"github.com/sentinelhq/sentinel/types"
)

var ErrUnsupportedKey = errors.New("oracle: unsupported private key length")

// Signer produces oracle-side signatures. The verifier core never uses it;
// it exists for the sign/submit CLI and for building test fixtures that match
// the external oracle byte for byte.
type Signer struct {
	priv ed25519.PrivateKey
}

// NewSigner accepts either a 32-byte seed or a 64-byte expanded private key.
func NewSigner(priv []byte) (*Signer, error) {
	switch len(priv) {
	case ed25519.SeedSize:
		return &Signer{priv: ed25519.NewKeyFromSeed(priv)}, nil
	case ed25519.PrivateKeySize:
		return &Signer{priv: ed25519.PrivateKey(priv)}, nil
	default:
		return nil, ErrUnsupportedKey
	}
}

// Sign signs the canonical encoding of payload.
func (s *Signer) Sign(payload types.RiskPayload) types.Signature {
	var sig types.Signature
	copy(sig[:], ed25519.Sign(s.priv, canonical.Encode(payload)))
	return sig
}

// PublicKey returns the verifying key matching this signer.
func (s *Signer) PublicKey() types.OracleKey {
	key, _ := types.OracleKeyFromBytes(s.priv.Public().(ed25519.PublicKey))
	return key
}

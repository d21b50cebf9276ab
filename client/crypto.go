package client

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"

	"github.com/sentinelhq/sentinel/canonical"
	"github.com/sentinelhq/sentinel/types"
)

var ErrUnsupportedKey = errors.New("client: unsupported private key length")

// SignRisk signs a payload the way the oracle service does and returns the
// wire message ready for SubmitRisk. Accepts a 32-byte seed or a 64-byte
// expanded private key.
func SignRisk(payload RiskPayloadMsg, privKey []byte) (*SignedRiskMsg, error) {
	switch l := len(privKey); l {
	case ed25519.SeedSize:
		privKey = ed25519.NewKeyFromSeed(privKey)
	case ed25519.PrivateKeySize:
	default:
		return nil, ErrUnsupportedKey
	}

	message := canonical.Encode(types.RiskPayload{
		Wallet:    payload.Wallet,
		RiskScore: payload.RiskScore,
		Timestamp: payload.Timestamp,
	})
	signature := ed25519.Sign(ed25519.PrivateKey(privKey), message)

	return &SignedRiskMsg{
		Payload:   payload,
		Signature: hex.EncodeToString(signature),
	}, nil
}

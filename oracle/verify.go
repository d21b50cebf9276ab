// Package oracle holds the signature boundary with the external oracle
// service: verification of submitted payloads and the sender-side signing
// tooling used by the CLI and tests.
package oracle

import (
	"crypto/ed25519"

	"github.com/sentinelhq/sentinel/canonical"
	"github.com/sentinelhq/sentinel/logx"
	"github.com/sentinelhq/sentinel/types"
)

// Verify checks an Ed25519 signature over the canonical encoding of payload.
// It is stateless and fails closed: any mismatch of payload, signature or key
// yields false.
func Verify(payload types.RiskPayload, sig types.Signature, key types.OracleKey) bool {
	message := canonical.Encode(payload)
	logx.Debug("ORACLE", "verifying message: ", string(message))
	return ed25519.Verify(key.PublicKey(), message, sig[:])
}

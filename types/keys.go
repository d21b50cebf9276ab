package types

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
)

// Signature is a raw Ed25519 signature value.
type Signature [ed25519.SignatureSize]byte

// OracleKey is the oracle's raw Ed25519 public key.
type OracleKey [ed25519.PublicKeySize]byte

func SignatureFromBytes(b []byte) (Signature, error) {
	var sig Signature
	if len(b) != ed25519.SignatureSize {
		return sig, fmt.Errorf("invalid signature length: %d bytes", len(b))
	}
	copy(sig[:], b)
	return sig, nil
}

// SignatureFromHex parses the hex encoding the oracle service emits.
func SignatureFromHex(s string) (Signature, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Signature{}, fmt.Errorf("invalid signature hex: %w", err)
	}
	return SignatureFromBytes(b)
}

func (s Signature) Hex() string {
	return hex.EncodeToString(s[:])
}

func OracleKeyFromBytes(b []byte) (OracleKey, error) {
	var key OracleKey
	if len(b) != ed25519.PublicKeySize {
		return key, fmt.Errorf("invalid public key length: %d bytes", len(b))
	}
	copy(key[:], b)
	return key, nil
}

func OracleKeyFromHex(s string) (OracleKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return OracleKey{}, fmt.Errorf("invalid public key hex: %w", err)
	}
	return OracleKeyFromBytes(b)
}

func (k OracleKey) Hex() string {
	return hex.EncodeToString(k[:])
}

func (k OracleKey) PublicKey() ed25519.PublicKey {
	return ed25519.PublicKey(k[:])
}

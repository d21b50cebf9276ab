package common

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
)

// Wallet addresses are the base58 encoding of the wallet's Ed25519 public
// key. The base58 alphabet contains no characters that require JSON string
// escaping, which the canonical encoder relies on.

// AddressFromPubkey derives the canonical wallet address for a public key.
func AddressFromPubkey(pub ed25519.PublicKey) string {
	return base58.Encode(pub)
}

// DecodeAddress decodes a wallet address back to its Ed25519 public key.
func DecodeAddress(addr string) (ed25519.PublicKey, error) {
	b, err := base58.Decode(addr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode address: %w", err)
	}
	if len(b) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("invalid address length: %d bytes", len(b))
	}
	return ed25519.PublicKey(b), nil
}

// ValidateAddress reports whether addr is a well-formed wallet address.
func ValidateAddress(addr string) bool {
	_, err := DecodeAddress(addr)
	return err == nil
}

// EncodeBytesToBase58 encodes bytes directly to base58
func EncodeBytesToBase58(bytes []byte) string {
	return base58.Encode(bytes)
}

// DecodeBase58ToBytes decodes base58 string to bytes
func DecodeBase58ToBytes(base58Str string) ([]byte, error) {
	bytes, err := base58.Decode(base58Str)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base58 string: %w", err)
	}
	return bytes, nil
}

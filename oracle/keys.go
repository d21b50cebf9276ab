package oracle

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
)

const (
	PrivateKeyFile = "oracle_private.key"
	PublicKeyFile  = "oracle_public.key"

	// PrivateKeyEnv overrides the key file when set (hex-encoded).
	PrivateKeyEnv = "ORACLE_PRIVATE_KEY"
)

// GenerateKeypair creates a new Ed25519 keypair and writes it hex-encoded to
// dir, matching the key files the oracle service uses.
func GenerateKeypair(dir string) (ed25519.PublicKey, ed25519.PrivateKey, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate keypair: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create key directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, PrivateKeyFile), []byte(hex.EncodeToString(priv)), 0o600); err != nil {
		return nil, nil, fmt.Errorf("failed to write private key: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, PublicKeyFile), []byte(hex.EncodeToString(pub)), 0o644); err != nil {
		return nil, nil, fmt.Errorf("failed to write public key: %w", err)
	}

	return pub, priv, nil
}

// LoadPrivateKey loads the oracle signing key, preferring the environment
// variable over the key file.
func LoadPrivateKey(dir string) ([]byte, error) {
	if env := os.Getenv(PrivateKeyEnv); env != "" {
		key, err := hex.DecodeString(env)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", PrivateKeyEnv, err)
		}
		return key, nil
	}

	data, err := os.ReadFile(filepath.Join(dir, PrivateKeyFile))
	if err != nil {
		return nil, fmt.Errorf("keypair not found, run keygen first or set %s: %w", PrivateKeyEnv, err)
	}
	key, err := hex.DecodeString(string(data))
	if err != nil {
		return nil, fmt.Errorf("invalid private key file: %w", err)
	}
	return key, nil
}

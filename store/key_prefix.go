package store

// Declare database key prefixes for stored objects
const (
	// PrefixRiskState keys per-wallet risk state records
	PrefixRiskState = "risk:"

	// KeyOraclePubkey is the fixed configuration-scope key holding the
	// oracle's 32-byte Ed25519 public key
	KeyOraclePubkey = "config:oracle_pubkey"
)

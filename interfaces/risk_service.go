package interfaces

import "github.com/sentinelhq/sentinel/types"

// RiskService is the full wire contract of the verifier: one write path, one
// init path, three reads and the key accessor. There is no other entry point.
type RiskService interface {
	Initialize(key types.OracleKey) error
	SubmitRisk(payload types.RiskPayload, sig types.Signature) error
	GetRisk(wallet string) (*types.RiskState, error)
	CheckPermission(wallet string) (types.RiskDecision, error)
	IsFrozen(wallet string) (bool, error)
	OraclePubkey() (types.OracleKey, error)
}

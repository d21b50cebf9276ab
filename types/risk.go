package types

const (
	// MaxRiskScore is the upper bound of the oracle's scoring range.
	MaxRiskScore = 100
)

// DecisionKind tags the variant of a RiskDecision.
type DecisionKind string

const (
	DecisionAllow  DecisionKind = "allow"
	DecisionLimit  DecisionKind = "limit"
	DecisionFreeze DecisionKind = "freeze"
)

// RiskDecision is the verdict attached to a scored wallet. Limit carries the
// per-transaction cap; the field is zero for the other variants so plain ==
// gives structural equality.
type RiskDecision struct {
	Kind  DecisionKind `json:"kind"`
	Limit uint32       `json:"limit,omitempty"`
}

func Allow() RiskDecision {
	return RiskDecision{Kind: DecisionAllow}
}

func Limit(cap uint32) RiskDecision {
	return RiskDecision{Kind: DecisionLimit, Limit: cap}
}

func Freeze() RiskDecision {
	return RiskDecision{Kind: DecisionFreeze}
}

func (d RiskDecision) IsFreeze() bool {
	return d.Kind == DecisionFreeze
}

// RiskPayload is the message signed by the oracle. It is an input only and
// is never persisted verbatim.
type RiskPayload struct {
	Wallet    string `json:"wallet"`
	RiskScore uint32 `json:"risk_score"`
	Timestamp uint64 `json:"timestamp"`
}

// RiskState is the per-wallet record written on a successful submission.
// Decision is always derived from RiskScore at write time; the two fields
// never diverge.
type RiskState struct {
	RiskScore   uint32       `json:"risk_score"`
	LastUpdated uint64       `json:"last_updated"`
	Decision    RiskDecision `json:"decision"`
}

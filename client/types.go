package client

// Wire mirrors of the JSON-RPC params and results.

type RiskPayloadMsg struct {
	Wallet    string `json:"wallet"`
	RiskScore uint32 `json:"risk_score"`
	Timestamp uint64 `json:"timestamp"`
}

type SignedRiskMsg struct {
	Payload   RiskPayloadMsg `json:"payload"`
	Signature string         `json:"signature"`
}

type DecisionInfo struct {
	Kind  string `json:"kind"`
	Limit uint32 `json:"limit,omitempty"`
}

type SubmitRiskResponse struct {
	Ok       bool         `json:"ok"`
	Decision DecisionInfo `json:"decision"`
}

type InitializeResponse struct {
	Ok bool `json:"ok"`
}

type RiskStateInfo struct {
	RiskScore   uint32       `json:"risk_score"`
	LastUpdated uint64       `json:"last_updated"`
	Decision    DecisionInfo `json:"decision"`
}

type GetRiskResponse struct {
	Found bool           `json:"found"`
	State *RiskStateInfo `json:"state,omitempty"`
}

type CheckPermissionResponse struct {
	Decision DecisionInfo `json:"decision"`
}

type IsFrozenResponse struct {
	Frozen bool `json:"frozen"`
}

type OraclePubkeyResponse struct {
	OraclePubkey string `json:"oracle_pubkey"`
}

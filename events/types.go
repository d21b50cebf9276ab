package events

import "time"

// EventType is an enum-like string type for risk events
type EventType string

const (
	EventOracleInitialized EventType = "OracleInitialized"
	EventRiskUpdated       EventType = "RiskUpdated"
	EventWalletAllowed     EventType = "WalletAllowed"
	EventWalletLimited     EventType = "WalletLimited"
	EventWalletFrozen      EventType = "WalletFrozen"
)

// RiskEvent represents any event emitted by the risk ledger
type RiskEvent interface {
	Type() EventType
	Timestamp() time.Time
	Wallet() string
}

// OracleInitialized is emitted once when the oracle public key is registered
type OracleInitialized struct {
	pubkeyHex string
	timestamp time.Time
}

func NewOracleInitialized(pubkeyHex string) *OracleInitialized {
	return &OracleInitialized{
		pubkeyHex: pubkeyHex,
		timestamp: time.Now(),
	}
}

func (e *OracleInitialized) Type() EventType {
	return EventOracleInitialized
}

func (e *OracleInitialized) Timestamp() time.Time {
	return e.timestamp
}

// Wallet is empty; initialization is not tied to any wallet
func (e *OracleInitialized) Wallet() string {
	return ""
}

func (e *OracleInitialized) PubkeyHex() string {
	return e.pubkeyHex
}

// RiskUpdated is emitted on every accepted submission, before the
// decision-specific event
type RiskUpdated struct {
	wallet       string
	riskScore    uint32
	payloadStamp uint64
	timestamp    time.Time
}

func NewRiskUpdated(wallet string, riskScore uint32, payloadStamp uint64) *RiskUpdated {
	return &RiskUpdated{
		wallet:       wallet,
		riskScore:    riskScore,
		payloadStamp: payloadStamp,
		timestamp:    time.Now(),
	}
}

func (e *RiskUpdated) Type() EventType {
	return EventRiskUpdated
}

func (e *RiskUpdated) Timestamp() time.Time {
	return e.timestamp
}

func (e *RiskUpdated) Wallet() string {
	return e.wallet
}

func (e *RiskUpdated) RiskScore() uint32 {
	return e.riskScore
}

// PayloadStamp is the oracle's signing timestamp, not the receive time
func (e *RiskUpdated) PayloadStamp() uint64 {
	return e.payloadStamp
}

// WalletAllowed is emitted when a submission resolves to an Allow decision
type WalletAllowed struct {
	wallet    string
	riskScore uint32
	timestamp time.Time
}

func NewWalletAllowed(wallet string, riskScore uint32) *WalletAllowed {
	return &WalletAllowed{
		wallet:    wallet,
		riskScore: riskScore,
		timestamp: time.Now(),
	}
}

func (e *WalletAllowed) Type() EventType {
	return EventWalletAllowed
}

func (e *WalletAllowed) Timestamp() time.Time {
	return e.timestamp
}

func (e *WalletAllowed) Wallet() string {
	return e.wallet
}

func (e *WalletAllowed) RiskScore() uint32 {
	return e.riskScore
}

// WalletLimited is emitted when a submission resolves to a Limit decision
type WalletLimited struct {
	wallet    string
	riskScore uint32
	cap       uint32
	timestamp time.Time
}

func NewWalletLimited(wallet string, riskScore, cap uint32) *WalletLimited {
	return &WalletLimited{
		wallet:    wallet,
		riskScore: riskScore,
		cap:       cap,
		timestamp: time.Now(),
	}
}

func (e *WalletLimited) Type() EventType {
	return EventWalletLimited
}

func (e *WalletLimited) Timestamp() time.Time {
	return e.timestamp
}

func (e *WalletLimited) Wallet() string {
	return e.wallet
}

func (e *WalletLimited) RiskScore() uint32 {
	return e.riskScore
}

func (e *WalletLimited) Cap() uint32 {
	return e.cap
}

// WalletFrozen is emitted when a submission resolves to a Freeze decision
type WalletFrozen struct {
	wallet    string
	riskScore uint32
	timestamp time.Time
}

func NewWalletFrozen(wallet string, riskScore uint32) *WalletFrozen {
	return &WalletFrozen{
		wallet:    wallet,
		riskScore: riskScore,
		timestamp: time.Now(),
	}
}

func (e *WalletFrozen) Type() EventType {
	return EventWalletFrozen
}

func (e *WalletFrozen) Timestamp() time.Time {
	return e.timestamp
}

func (e *WalletFrozen) Wallet() string {
	return e.wallet
}

func (e *WalletFrozen) RiskScore() uint32 {
	return e.riskScore
}

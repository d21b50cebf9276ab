// Package ledger implements the signature-verified risk pipeline: it
// authenticates oracle submissions, derives decisions and owns the persisted
// per-wallet risk state.
package ledger

import (
	"fmt"

	"github.com/sentinelhq/sentinel/decision"
	"github.com/sentinelhq/sentinel/errors"
	"github.com/sentinelhq/sentinel/events"
	"github.com/sentinelhq/sentinel/logx"
	"github.com/sentinelhq/sentinel/monitoring"
	"github.com/sentinelhq/sentinel/oracle"
	"github.com/sentinelhq/sentinel/store"
	"github.com/sentinelhq/sentinel/types"
)

// ReplayWindow is the maximum age in seconds a signed payload may have and
// still be accepted. The boundary is inclusive: age == ReplayWindow passes.
const ReplayWindow uint64 = 300

// RiskLedger is the verifier core. Each public method runs to completion
// against the host substrate; cross-call serialization is the host's
// responsibility.
type RiskLedger struct {
	riskStore store.RiskStore
	keyStore  store.OracleKeyStore
	eventBus  *events.EventBus
	clock     Clock
}

func NewRiskLedger(riskStore store.RiskStore, keyStore store.OracleKeyStore, eventBus *events.EventBus, clock Clock) (*RiskLedger, error) {
	if riskStore == nil || keyStore == nil {
		return nil, fmt.Errorf("risk store and key store are required")
	}
	if eventBus == nil {
		eventBus = events.NewEventBus()
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &RiskLedger{
		riskStore: riskStore,
		keyStore:  keyStore,
		eventBus:  eventBus,
		clock:     clock,
	}, nil
}

// Initialize registers the oracle public key. The key is write-once: a second
// call fails with already_initialized and leaves the stored key unchanged.
func (rl *RiskLedger) Initialize(key types.OracleKey) error {
	stored, err := rl.keyStore.SetOnce(key)
	if err != nil {
		return err
	}
	if !stored {
		return errors.NewAlreadyInitialized()
	}

	monitoring.SetOracleInitialized(true)
	rl.eventBus.Publish(events.NewOracleInitialized(key.Hex()))
	logx.Info("LEDGER", "Oracle public key registered: ", key.Hex())
	return nil
}

// OraclePubkey returns the registered oracle key, or not_initialized.
func (rl *RiskLedger) OraclePubkey() (types.OracleKey, error) {
	key, found, err := rl.keyStore.Get()
	if err != nil {
		return types.OracleKey{}, err
	}
	if !found {
		return types.OracleKey{}, errors.NewNotInitialized()
	}
	return key, nil
}

// SubmitRisk runs the single write transition. All checks precede the state
// write, so a rejection never leaves partial state behind; events fire only
// after the write succeeds.
//
// The replay check is deliberately one-sided: payloads older than
// ReplayWindow are rejected, payloads timestamped in the future are accepted.
// The asymmetry tolerates clock skew between the oracle and this host.
func (rl *RiskLedger) SubmitRisk(payload types.RiskPayload, sig types.Signature) error {
	// 1. Oracle key must be registered
	oracleKey, found, err := rl.keyStore.Get()
	if err != nil {
		return err
	}
	if !found {
		monitoring.RecordRejectedSubmit(monitoring.SubmitNotInitialized)
		return errors.NewNotInitialized()
	}

	// 2. Authenticate the payload
	if !oracle.Verify(payload, sig, oracleKey) {
		monitoring.RecordRejectedSubmit(monitoring.SubmitInvalidSignature)
		logx.Warn("LEDGER", "Rejected submission with invalid signature | wallet=", payload.Wallet)
		return errors.NewInvalidSignature()
	}

	// 3. Replay window
	now := rl.clock.Now()
	if now > payload.Timestamp && now-payload.Timestamp > ReplayWindow {
		monitoring.RecordRejectedSubmit(monitoring.SubmitStalePayload)
		logx.Warn("LEDGER", fmt.Sprintf("Rejected stale payload | wallet=%s age=%d window=%d", payload.Wallet, now-payload.Timestamp, ReplayWindow))
		return errors.NewStalePayload()
	}

	// 4. Score range
	if payload.RiskScore > types.MaxRiskScore {
		monitoring.RecordRejectedSubmit(monitoring.SubmitInvalidScore)
		return errors.NewInvalidScore()
	}

	// 5. Derive the decision
	riskDecision := decision.Decide(payload.RiskScore)

	// 6. Overwrite the wallet's state
	state := &types.RiskState{
		RiskScore:   payload.RiskScore,
		LastUpdated: payload.Timestamp,
		Decision:    riskDecision,
	}
	if err := rl.riskStore.Store(payload.Wallet, state); err != nil {
		return err
	}

	// 7. Audit events
	monitoring.RecordAcceptedSubmit()
	monitoring.RecordDecision(string(riskDecision.Kind))
	rl.eventBus.Publish(events.NewRiskUpdated(payload.Wallet, payload.RiskScore, payload.Timestamp))
	switch riskDecision.Kind {
	case types.DecisionFreeze:
		rl.eventBus.Publish(events.NewWalletFrozen(payload.Wallet, payload.RiskScore))
	case types.DecisionLimit:
		rl.eventBus.Publish(events.NewWalletLimited(payload.Wallet, payload.RiskScore, riskDecision.Limit))
	default:
		rl.eventBus.Publish(events.NewWalletAllowed(payload.Wallet, payload.RiskScore))
	}

	logx.Info("LEDGER", fmt.Sprintf("Risk state updated | wallet=%s score=%d decision=%s", payload.Wallet, payload.RiskScore, riskDecision.Kind))
	return nil
}

// GetRisk returns the stored state for wallet, or nil when it has never been
// scored.
func (rl *RiskLedger) GetRisk(wallet string) (*types.RiskState, error) {
	return rl.riskStore.GetByWallet(wallet)
}

// CheckPermission returns the wallet's decision. Unknown wallets default to
// Allow; unscored is a valid state, not an error.
func (rl *RiskLedger) CheckPermission(wallet string) (types.RiskDecision, error) {
	monitoring.RecordPermissionQuery()

	state, err := rl.riskStore.GetByWallet(wallet)
	if err != nil {
		return types.RiskDecision{}, err
	}
	if state == nil {
		return types.Allow(), nil
	}
	return state.Decision, nil
}

// IsFrozen reports whether the wallet's current decision is Freeze.
func (rl *RiskLedger) IsFrozen(wallet string) (bool, error) {
	riskDecision, err := rl.CheckPermission(wallet)
	if err != nil {
		return false, err
	}
	return riskDecision.IsFreeze(), nil
}

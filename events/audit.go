package events

import (
	"fmt"

	"github.com/sentinelhq/sentinel/logx"
)

// AuditLogger drains a bus subscription and writes one structured audit line
// per event. It is the default append-only sink for risk decisions.
type AuditLogger struct {
	bus *EventBus
	id  SubscriberID
	ch  chan RiskEvent
}

func NewAuditLogger(bus *EventBus) *AuditLogger {
	id, ch := bus.Subscribe()
	return &AuditLogger{bus: bus, id: id, ch: ch}
}

// Run consumes events until the subscription is closed. Callers normally run
// it via exception.SafeGo.
func (a *AuditLogger) Run() {
	for event := range a.ch {
		a.log(event)
	}
}

// Stop unsubscribes, which closes the channel and ends Run.
func (a *AuditLogger) Stop() {
	a.bus.Unsubscribe(a.id)
}

func (a *AuditLogger) log(event RiskEvent) {
	switch e := event.(type) {
	case *OracleInitialized:
		logx.Info("AUDIT", fmt.Sprintf("event=%s oracle_pubkey=%s", e.Type(), e.PubkeyHex()))
	case *RiskUpdated:
		logx.Info("AUDIT", fmt.Sprintf("event=%s wallet=%s risk_score=%d payload_timestamp=%d", e.Type(), e.Wallet(), e.RiskScore(), e.PayloadStamp()))
	case *WalletAllowed:
		logx.Info("AUDIT", fmt.Sprintf("event=%s wallet=%s risk_score=%d", e.Type(), e.Wallet(), e.RiskScore()))
	case *WalletLimited:
		logx.Info("AUDIT", fmt.Sprintf("event=%s wallet=%s risk_score=%d cap=%d", e.Type(), e.Wallet(), e.RiskScore(), e.Cap()))
	case *WalletFrozen:
		logx.Warn("AUDIT", fmt.Sprintf("event=%s wallet=%s risk_score=%d", e.Type(), e.Wallet(), e.RiskScore()))
	default:
		logx.Info("AUDIT", fmt.Sprintf("event=%s wallet=%s", event.Type(), event.Wallet()))
	}
}

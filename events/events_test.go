package events

import (
	"testing"
	"time"
)

func TestEventBus(t *testing.T) {
	eventBus := NewEventBus()

	id, eventChan := eventBus.Subscribe()

	if count := eventBus.GetTotalSubscriptions(); count != 1 {
		t.Errorf("Expected 1 subscriber, got %d", count)
	}

	event := NewWalletFrozen("wallet-a", 87)

	// Publish event in goroutine to avoid blocking
	go func() {
		eventBus.Publish(event)
	}()

	select {
	case receivedEvent := <-eventChan:
		if receivedEvent.Type() != EventWalletFrozen {
			t.Errorf("Expected WalletFrozen, got %s", receivedEvent.Type())
		}
		if receivedEvent.Wallet() != "wallet-a" {
			t.Errorf("Expected wallet wallet-a, got %s", receivedEvent.Wallet())
		}
	case <-time.After(1 * time.Second):
		t.Error("Timeout waiting for event")
	}

	if !eventBus.Unsubscribe(id) {
		t.Error("Expected unsubscribe to succeed")
	}
	if count := eventBus.GetTotalSubscriptions(); count != 0 {
		t.Errorf("Expected 0 subscribers after unsubscribe, got %d", count)
	}
	if eventBus.Unsubscribe(id) {
		t.Error("Expected second unsubscribe to fail")
	}
}

func TestPublishDoesNotBlockOnFullSubscriber(t *testing.T) {
	eventBus := NewEventBusWithBuffer(1)

	_, ch := eventBus.Subscribe()

	done := make(chan struct{})
	go func() {
		eventBus.Publish(NewWalletAllowed("wallet-a", 1))
		eventBus.Publish(NewWalletAllowed("wallet-a", 2))
		eventBus.Publish(NewWalletAllowed("wallet-a", 3))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Publish blocked on a full subscriber channel")
	}

	// Only the buffered event arrives
	received := <-ch
	if received.(*WalletAllowed).RiskScore() != 1 {
		t.Errorf("Expected first event, got score %d", received.(*WalletAllowed).RiskScore())
	}
}

func TestRiskEventAccessors(t *testing.T) {
	updated := NewRiskUpdated("wallet-a", 87, 1737718800)
	if updated.Type() != EventRiskUpdated {
		t.Errorf("Expected RiskUpdated, got %s", updated.Type())
	}
	if updated.RiskScore() != 87 {
		t.Errorf("Expected score 87, got %d", updated.RiskScore())
	}
	if updated.PayloadStamp() != 1737718800 {
		t.Errorf("Expected payload stamp 1737718800, got %d", updated.PayloadStamp())
	}
	if updated.Timestamp().IsZero() {
		t.Error("Expected non-zero event timestamp")
	}

	limited := NewWalletLimited("wallet-b", 65, 5000)
	if limited.Cap() != 5000 {
		t.Errorf("Expected cap 5000, got %d", limited.Cap())
	}

	initialized := NewOracleInitialized("aabb")
	if initialized.Wallet() != "" {
		t.Errorf("Expected empty wallet on init event, got %s", initialized.Wallet())
	}
	if initialized.PubkeyHex() != "aabb" {
		t.Errorf("Expected pubkey hex aabb, got %s", initialized.PubkeyHex())
	}
}

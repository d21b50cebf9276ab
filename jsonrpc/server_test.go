package jsonrpc

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/server"
	"github.com/stretchr/testify/require"

	"github.com/sentinelhq/sentinel/common"
	"github.com/sentinelhq/sentinel/db"
	"github.com/sentinelhq/sentinel/events"
	"github.com/sentinelhq/sentinel/ledger"
	"github.com/sentinelhq/sentinel/oracle"
	"github.com/sentinelhq/sentinel/store"
	"github.com/sentinelhq/sentinel/types"
)

type rpcFixture struct {
	local  server.Local
	signer *oracle.Signer
	wallet string
	now    uint64
}

type testClock uint64

func (c testClock) Now() uint64 { return uint64(c) }

func newRPCFixture(t *testing.T) *rpcFixture {
	t.Helper()

	provider := db.NewMemoryProvider()
	riskStore, err := store.NewGenericRiskStore(provider)
	require.NoError(t, err)
	keyStore, err := store.NewGenericOracleKeyStore(provider)
	require.NoError(t, err)

	now := uint64(1737718800)
	rl, err := ledger.NewRiskLedger(riskStore, keyStore, events.NewEventBus(), testClock(now))
	require.NoError(t, err)

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	signer, err := oracle.NewSigner(priv)
	require.NoError(t, err)

	walletPub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	srv := NewServer("", rl)
	local := server.NewLocal(srv.buildMethodMap(), nil)
	t.Cleanup(func() { local.Close() })

	return &rpcFixture{
		local:  local,
		signer: signer,
		wallet: common.AddressFromPubkey(walletPub),
		now:    now,
	}
}

func (f *rpcFixture) initialize(t *testing.T) {
	t.Helper()
	var res initializeResponse
	err := f.local.Client.CallResult(context.Background(), MethodRiskInitialize,
		initializeParams{OraclePubkey: f.signer.PublicKey().Hex()}, &res)
	require.NoError(t, err)
	require.True(t, res.Ok)
}

func (f *rpcFixture) signedSubmit(score uint32, timestamp uint64) submitRiskParams {
	payload := types.RiskPayload{Wallet: f.wallet, RiskScore: score, Timestamp: timestamp}
	sig := f.signer.Sign(payload)
	return submitRiskParams{
		Payload:   riskPayloadParams{Wallet: f.wallet, RiskScore: score, Timestamp: timestamp},
		Signature: sig.Hex(),
	}
}

func requireRPCCode(t *testing.T, err error, want jrpc2.Code) {
	t.Helper()
	require.Error(t, err)
	rpcErr, ok := err.(*jrpc2.Error)
	require.True(t, ok, "expected *jrpc2.Error, got %T: %v", err, err)
	require.Equal(t, want, rpcErr.Code)
}

func TestRPCInitializeAndPubkey(t *testing.T) {
	f := newRPCFixture(t)

	var pubRes oraclePubkeyResponse
	err := f.local.Client.CallResult(context.Background(), MethodRiskOraclePubkey, nil, &pubRes)
	requireRPCCode(t, err, rpcCodes["not_initialized"])

	f.initialize(t)

	err = f.local.Client.CallResult(context.Background(), MethodRiskOraclePubkey, nil, &pubRes)
	require.NoError(t, err)
	require.Equal(t, f.signer.PublicKey().Hex(), pubRes.OraclePubkey)

	// Double initialization is rejected
	var res initializeResponse
	err = f.local.Client.CallResult(context.Background(), MethodRiskInitialize,
		initializeParams{OraclePubkey: f.signer.PublicKey().Hex()}, &res)
	requireRPCCode(t, err, rpcCodes["already_initialized"])
}

func TestRPCSubmitAndQuery(t *testing.T) {
	f := newRPCFixture(t)
	f.initialize(t)

	var submitRes submitRiskResponse
	err := f.local.Client.CallResult(context.Background(), MethodRiskSubmit, f.signedSubmit(87, f.now), &submitRes)
	require.NoError(t, err)
	require.True(t, submitRes.Ok)
	require.Equal(t, "freeze", submitRes.Decision.Kind)

	var riskRes getRiskResponse
	err = f.local.Client.CallResult(context.Background(), MethodRiskGet, walletRequest{Wallet: f.wallet}, &riskRes)
	require.NoError(t, err)
	require.True(t, riskRes.Found)
	require.Equal(t, uint32(87), riskRes.State.RiskScore)
	require.Equal(t, f.now, riskRes.State.LastUpdated)
	require.Equal(t, "freeze", riskRes.State.Decision.Kind)

	var frozenRes isFrozenResponse
	err = f.local.Client.CallResult(context.Background(), MethodRiskIsFrozen, walletRequest{Wallet: f.wallet}, &frozenRes)
	require.NoError(t, err)
	require.True(t, frozenRes.Frozen)
}

func TestRPCDefaultAllow(t *testing.T) {
	f := newRPCFixture(t)
	f.initialize(t)

	var permRes checkPermissionResponse
	err := f.local.Client.CallResult(context.Background(), MethodRiskCheckPermission, walletRequest{Wallet: f.wallet}, &permRes)
	require.NoError(t, err)
	require.Equal(t, "allow", permRes.Decision.Kind)

	var riskRes getRiskResponse
	err = f.local.Client.CallResult(context.Background(), MethodRiskGet, walletRequest{Wallet: f.wallet}, &riskRes)
	require.NoError(t, err)
	require.False(t, riskRes.Found)
	require.Nil(t, riskRes.State)
}

func TestRPCSubmitRejections(t *testing.T) {
	f := newRPCFixture(t)
	f.initialize(t)

	// Tampered signature
	p := f.signedSubmit(87, f.now)
	p.Payload.RiskScore = 12
	var submitRes submitRiskResponse
	err := f.local.Client.CallResult(context.Background(), MethodRiskSubmit, p, &submitRes)
	requireRPCCode(t, err, rpcCodes["invalid_signature"])

	// Stale payload
	err = f.local.Client.CallResult(context.Background(), MethodRiskSubmit, f.signedSubmit(87, f.now-301), &submitRes)
	requireRPCCode(t, err, rpcCodes["stale_payload"])

	// Out-of-range score, correctly signed
	err = f.local.Client.CallResult(context.Background(), MethodRiskSubmit, f.signedSubmit(150, f.now), &submitRes)
	requireRPCCode(t, err, rpcCodes["invalid_score"])

	// Malformed wallet address
	p = f.signedSubmit(30, f.now)
	p.Payload.Wallet = "not-base58-0OIl"
	err = f.local.Client.CallResult(context.Background(), MethodRiskSubmit, p, &submitRes)
	requireRPCCode(t, err, rpcCodes["invalid_address"])

	// Malformed signature hex
	p = f.signedSubmit(30, f.now)
	p.Signature = "zz"
	err = f.local.Client.CallResult(context.Background(), MethodRiskSubmit, p, &submitRes)
	requireRPCCode(t, err, rpcCodes["invalid_request"])
}

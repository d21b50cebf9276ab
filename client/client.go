// Package client is the Go SDK for the sentinel verifier's JSON-RPC API.
package client

import (
	"context"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/jhttp"
)

type Config struct {
	Endpoint string
}

type SentinelClient struct {
	cfg     Config
	channel *jhttp.Channel
	rpc     *jrpc2.Client
}

func NewClient(cfg Config) *SentinelClient {
	channel := jhttp.NewChannel(cfg.Endpoint, nil)
	return &SentinelClient{
		cfg:     cfg,
		channel: channel,
		rpc:     jrpc2.NewClient(channel, nil),
	}
}

// Initialize registers the oracle public key (hex) on the verifier.
func (c *SentinelClient) Initialize(ctx context.Context, oraclePubkeyHex string) (*InitializeResponse, error) {
	var res InitializeResponse
	err := c.rpc.CallResult(ctx, "risk.initialize", map[string]string{"oracle_pubkey": oraclePubkeyHex}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// SubmitRisk submits an oracle-signed payload.
func (c *SentinelClient) SubmitRisk(ctx context.Context, signed *SignedRiskMsg) (*SubmitRiskResponse, error) {
	var res SubmitRiskResponse
	err := c.rpc.CallResult(ctx, "risk.submit", signed, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// GetRisk fetches the stored risk state for a wallet.
func (c *SentinelClient) GetRisk(ctx context.Context, wallet string) (*GetRiskResponse, error) {
	var res GetRiskResponse
	err := c.rpc.CallResult(ctx, "risk.get", map[string]string{"wallet": wallet}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// CheckPermission returns the wallet's decision, defaulting to allow for
// unknown wallets.
func (c *SentinelClient) CheckPermission(ctx context.Context, wallet string) (*CheckPermissionResponse, error) {
	var res CheckPermissionResponse
	err := c.rpc.CallResult(ctx, "risk.checkpermission", map[string]string{"wallet": wallet}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// IsFrozen reports whether the wallet is frozen.
func (c *SentinelClient) IsFrozen(ctx context.Context, wallet string) (bool, error) {
	var res IsFrozenResponse
	err := c.rpc.CallResult(ctx, "risk.isfrozen", map[string]string{"wallet": wallet}, &res)
	if err != nil {
		return false, err
	}
	return res.Frozen, nil
}

// OraclePubkey returns the registered oracle key in hex.
func (c *SentinelClient) OraclePubkey(ctx context.Context) (string, error) {
	var res OraclePubkeyResponse
	err := c.rpc.CallResult(ctx, "risk.oraclepubkey", nil, &res)
	if err != nil {
		return "", err
	}
	return res.OraclePubkey, nil
}

// Close closes the underlying channel
func (c *SentinelClient) Close() error {
	c.rpc.Close()
	return c.channel.Close()
}

package jsonrpc

import (
	"context"
	"net/http"
	"time"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/handler"
	"github.com/creachadair/jrpc2/jhttp"

	"github.com/sentinelhq/sentinel/common"
	"github.com/sentinelhq/sentinel/errors"
	"github.com/sentinelhq/sentinel/interfaces"
	"github.com/sentinelhq/sentinel/logx"
	"github.com/sentinelhq/sentinel/types"
)

// --- Params/Results of the wire contract ---

type riskPayloadParams struct {
	Wallet    string `json:"wallet"`
	RiskScore uint32 `json:"risk_score"`
	Timestamp uint64 `json:"timestamp"`
}

type submitRiskParams struct {
	Payload   riskPayloadParams `json:"payload"`
	Signature string            `json:"signature"`
}

type submitRiskResponse struct {
	Ok       bool         `json:"ok"`
	Decision decisionInfo `json:"decision"`
}

type decisionInfo struct {
	Kind  string `json:"kind"`
	Limit uint32 `json:"limit,omitempty"`
}

type initializeParams struct {
	OraclePubkey string `json:"oracle_pubkey"`
}

type initializeResponse struct {
	Ok bool `json:"ok"`
}

type walletRequest struct {
	Wallet string `json:"wallet"`
}

type riskStateInfo struct {
	RiskScore   uint32       `json:"risk_score"`
	LastUpdated uint64       `json:"last_updated"`
	Decision    decisionInfo `json:"decision"`
}

type getRiskResponse struct {
	Found bool           `json:"found"`
	State *riskStateInfo `json:"state,omitempty"`
}

type checkPermissionResponse struct {
	Decision decisionInfo `json:"decision"`
}

type isFrozenResponse struct {
	Frozen bool `json:"frozen"`
}

type oraclePubkeyResponse struct {
	OraclePubkey string `json:"oracle_pubkey"`
}

func toDecisionInfo(d types.RiskDecision) decisionInfo {
	return decisionInfo{Kind: string(d.Kind), Limit: d.Limit}
}

// Server exposes the risk service over JSON-RPC/HTTP
type Server struct {
	addr       string
	svc        interfaces.RiskService
	httpServer *http.Server
}

type ServerOptions struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func NewServer(addr string, svc interfaces.RiskService) *Server {
	return &Server{
		addr: addr,
		svc:  svc,
	}
}

// Start serves the bridge until Stop or a listener error. It blocks; callers
// run it under exception.SafeGo.
func (s *Server) Start(opts ServerOptions) error {
	methods := s.buildMethodMap()
	jh := jhttp.NewBridge(methods, &jhttp.BridgeOptions{Server: &jrpc2.ServerOptions{}})

	mux := http.NewServeMux()
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logx.Debug("RPC", "Request from ", extractClientIPFromRequest(r))
		jh.ServeHTTP(w, r)
	}))

	s.httpServer = &http.Server{
		Addr:         s.addr,
		Handler:      mux,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
	}

	logx.Info("RPC", "JSON-RPC server listening on ", s.addr)
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Stop shuts the HTTP server down gracefully
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Build jrpc2 method map
func (s *Server) buildMethodMap() handler.Map {
	return handler.Map{
		MethodRiskInitialize: handler.New(func(ctx context.Context, p initializeParams) (*initializeResponse, error) {
			key, err := types.OracleKeyFromHex(p.OraclePubkey)
			if err != nil {
				return nil, toJRPC2Error(errors.NewError(errors.ErrCodeInvalidRequest, errors.ErrMsgInvalidRequest))
			}
			if err := s.svc.Initialize(key); err != nil {
				return nil, toJRPC2Error(err)
			}
			return &initializeResponse{Ok: true}, nil
		}),
		MethodRiskSubmit: handler.New(func(ctx context.Context, p submitRiskParams) (*submitRiskResponse, error) {
			if !common.ValidateAddress(p.Payload.Wallet) {
				return nil, toJRPC2Error(errors.NewInvalidAddress())
			}
			sig, err := types.SignatureFromHex(p.Signature)
			if err != nil {
				return nil, toJRPC2Error(errors.NewError(errors.ErrCodeInvalidRequest, errors.ErrMsgInvalidRequest))
			}
			payload := types.RiskPayload{
				Wallet:    p.Payload.Wallet,
				RiskScore: p.Payload.RiskScore,
				Timestamp: p.Payload.Timestamp,
			}
			if err := s.svc.SubmitRisk(payload, sig); err != nil {
				return nil, toJRPC2Error(err)
			}
			decision, err := s.svc.CheckPermission(payload.Wallet)
			if err != nil {
				return nil, toJRPC2Error(err)
			}
			return &submitRiskResponse{Ok: true, Decision: toDecisionInfo(decision)}, nil
		}),
		MethodRiskGet: handler.New(func(ctx context.Context, p walletRequest) (*getRiskResponse, error) {
			state, err := s.svc.GetRisk(p.Wallet)
			if err != nil {
				return nil, toJRPC2Error(err)
			}
			if state == nil {
				return &getRiskResponse{Found: false}, nil
			}
			return &getRiskResponse{
				Found: true,
				State: &riskStateInfo{
					RiskScore:   state.RiskScore,
					LastUpdated: state.LastUpdated,
					Decision:    toDecisionInfo(state.Decision),
				},
			}, nil
		}),
		MethodRiskCheckPermission: handler.New(func(ctx context.Context, p walletRequest) (*checkPermissionResponse, error) {
			decision, err := s.svc.CheckPermission(p.Wallet)
			if err != nil {
				return nil, toJRPC2Error(err)
			}
			return &checkPermissionResponse{Decision: toDecisionInfo(decision)}, nil
		}),
		MethodRiskIsFrozen: handler.New(func(ctx context.Context, p walletRequest) (*isFrozenResponse, error) {
			frozen, err := s.svc.IsFrozen(p.Wallet)
			if err != nil {
				return nil, toJRPC2Error(err)
			}
			return &isFrozenResponse{Frozen: frozen}, nil
		}),
		MethodRiskOraclePubkey: handler.New(func(ctx context.Context) (*oraclePubkeyResponse, error) {
			key, err := s.svc.OraclePubkey()
			if err != nil {
				return nil, toJRPC2Error(err)
			}
			return &oraclePubkeyResponse{OraclePubkey: key.Hex()}, nil
		}),
	}
}

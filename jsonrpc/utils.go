package jsonrpc

import (
	stderrors "errors"
	"net"
	"net/http"
	"strings"

	"github.com/creachadair/jrpc2"

	"github.com/sentinelhq/sentinel/errors"
	"github.com/sentinelhq/sentinel/logx"
)

// JSON-RPC Method name constants
const (
	MethodRiskInitialize      = "risk.initialize"
	MethodRiskSubmit          = "risk.submit"
	MethodRiskGet             = "risk.get"
	MethodRiskCheckPermission = "risk.checkpermission"
	MethodRiskIsFrozen        = "risk.isfrozen"
	MethodRiskOraclePubkey    = "risk.oraclepubkey"
)

// JSON-RPC error codes per oracle error code, in the application range
var rpcCodes = map[errors.OracleErrorCode]jrpc2.Code{
	errors.ErrCodeInvalidRequest:     -32001,
	errors.ErrCodeInvalidAddress:     -32002,
	errors.ErrCodeNotInitialized:     -32010,
	errors.ErrCodeAlreadyInitialized: -32011,
	errors.ErrCodeInvalidSignature:   -32012,
	errors.ErrCodeStalePayload:       -32013,
	errors.ErrCodeInvalidScore:       -32014,
	errors.ErrCodeInternal:           -32000,
}

// toJRPC2Error converts an oracle error into a jrpc2 error with the oracle
// code attached as data, so clients can match on it.
func toJRPC2Error(err error) error {
	if err == nil {
		return nil
	}
	code := errors.CodeOf(err)
	rpcCode, ok := rpcCodes[code]
	if !ok {
		rpcCode = rpcCodes[errors.ErrCodeInternal]
	}

	var oe *errors.OracleError
	if stderrors.As(err, &oe) {
		return jrpc2.Errorf(rpcCode, "%s", oe.Message).WithData(oe)
	}
	return jrpc2.Errorf(rpcCode, "%s", err.Error())
}

func extractClientIPFromRequest(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		logx.Debug("SECURITY", "X-Forwarded-For:", xff)
		parts := strings.Split(xff, ",")
		if len(parts) > 0 {
			ip := strings.TrimSpace(parts[0])
			if net.ParseIP(ip) != nil {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && net.ParseIP(host) != nil {
		return host
	}
	return "unknown"
}

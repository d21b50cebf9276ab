// Package canonical reproduces the oracle's signing serialization.
//
// The oracle signs the compact JSON rendering of a risk payload with keys in
// lexicographic order, equivalent to Python's
// json.dumps(data, sort_keys=True, separators=(',', ':')).
// The byte string built here is a fixed wire contract shared with the
// external signer; any change breaks signature verification.
package canonical

import (
	"strconv"

	"github.com/sentinelhq/sentinel/types"
)

// Encode serializes payload to the exact bytes the oracle signed:
//
//	{"risk_score":87,"timestamp":1737718800,"wallet":"4fYNE..."}
//
// Integers render as minimal decimal ASCII (zero renders as "0"). The wallet
// string is embedded with surrounding quotes only; the canonical address
// alphabet contains no characters that need JSON escaping. Identical payload
// always yields identical bytes.
func Encode(payload types.RiskPayload) []byte {
	buf := make([]byte, 0, 64+len(payload.Wallet))
	buf = append(buf, `{"risk_score":`...)
	buf = strconv.AppendUint(buf, uint64(payload.RiskScore), 10)
	buf = append(buf, `,"timestamp":`...)
	buf = strconv.AppendUint(buf, payload.Timestamp, 10)
	buf = append(buf, `,"wallet":"`...)
	buf = append(buf, payload.Wallet...)
	buf = append(buf, `"}`...)
	return buf
}

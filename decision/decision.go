// Package decision maps validated risk scores to enforcement decisions.
package decision

import (
	"fmt"

	"github.com/sentinelhq/sentinel/types"
)

// LimitCap is the fixed per-transaction cap attached to a Limit decision.
// It is part of the oracle contract and is not caller-configurable.
const LimitCap uint32 = 5000

// Decide maps a score in [0,100] to its decision:
// 0-49 Allow, 50-79 Limit(LimitCap), 80-100 Freeze.
//
// Callers validate the score range before calling; an out-of-range score here
// means a broken caller, so it panics rather than returning an error.
func Decide(score uint32) types.RiskDecision {
	switch {
	case score <= 49:
		return types.Allow()
	case score <= 79:
		return types.Limit(LimitCap)
	case score <= types.MaxRiskScore:
		return types.Freeze()
	default:
		panic(fmt.Sprintf("decision: score %d out of range, caller must validate", score))
	}
}

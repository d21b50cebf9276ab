package ledger

import "time"

// Clock is the host's second-resolution wall clock. The replay-window check
// is the only consumer; tests substitute a fixed clock.
type Clock interface {
	Now() uint64
}

// SystemClock reads the process wall clock.
type SystemClock struct{}

func (SystemClock) Now() uint64 {
	return uint64(time.Now().Unix())
}

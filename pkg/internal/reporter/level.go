package reporter

import "sync/atomic"

// debugLevel is the process-wide verbosity switch read by every reporter
// instance. Default 0; raised by configuration to surface gated INFO and
// WARNING reports.
var debugLevel atomic.Int32

// Level returns the process-wide debug level.
func Level() int {
	return int(debugLevel.Load())
}

// SetLevel sets the process-wide debug level.
func SetLevel(n int) {
	debugLevel.Store(int32(n))
}

// Package comm supplies the parallel communication layer consumed by the
// diagnostics components: rank discovery, master-rank selection, and
// coordinated termination of SPMD process groups. A Local communicator covers
// serial runs; Cluster adds a TCP control plane so that an abort detected on
// any rank terminates every cooperating process, not just the caller.
package comm

import (
	"os"

	"github.com/joeydtaylor/foghorn/pkg/internal/types"
)

// LocalOption configures a Local communicator.
type LocalOption func(*Local)

// Local is the single-process communicator: rank 0 of a world of size 1,
// always the master, aborting by plain process exit.
type Local struct {
	exit func(int)
}

// NewLocal constructs a single-process communicator.
func NewLocal(options ...LocalOption) *Local {
	l := &Local{exit: os.Exit}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// LocalWithExit overrides the process-exit hook. Tests use this to observe
// aborts without dying.
func LocalWithExit(exit func(int)) LocalOption {
	return func(l *Local) {
		if exit != nil {
			l.exit = exit
		}
	}
}

// Rank returns 0 in a serial run.
func (l *Local) Rank() int { return 0 }

// Size returns 1 in a serial run.
func (l *Local) Size() int { return 1 }

// IsMaster reports true for every communicator in a serial run.
func (l *Local) IsMaster(communicator int) bool { return true }

// Abort exits the process with the given status.
func (l *Local) Abort(code int) {
	l.exit(code)
}

// Close is a no-op for the local communicator.
func (l *Local) Close() error { return nil }

var _ types.Communicator = (*Local)(nil)

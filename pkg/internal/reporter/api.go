package reporter

import (
	"github.com/joeydtaylor/foghorn/pkg/internal/sink"
	"github.com/joeydtaylor/foghorn/pkg/internal/types"
)

// MasterStream returns the sink bound to the real output destination only if
// the calling process is the master for the given communicator; every other
// process receives the no-op stream. This is the primitive every richer call
// form routes through for the actual print decision.
func (r *Reporter) MasterStream(communicator int) types.Stream {
	if r.comm.IsMaster(communicator) {
		return r.out
	}
	return sink.Discard
}

// Stream returns the master-gated sink with no header, for call sites that
// only want the routing.
func (r *Reporter) Stream() types.Stream {
	return r.MasterStream(types.WorldCommunicator)
}

// Report is the general call form. The error budget is charged before the
// output gate is consulted, so suppressed reports still count; INFO and
// WARNING reports honor the explicit gate and the process-wide debug level;
// SERIOUS and FATAL reports always attempt to write, subject only to
// master-only routing. After the header and extra context are written, the
// termination policy runs: FATAL always aborts, SERIOUS aborts once the
// budget is exceeded. The returned stream accepts further free-form content.
func (r *Reporter) Report(at types.CallSite, extra types.ReportContext) types.Stream {
	counted := false
	if r.severity >= types.SeveritySerious {
		r.errorCount.Add(1)
		counted = true
	}

	// Display gating applies below SERIOUS only; suppression is a display
	// concern, never a counting or termination concern.
	if r.severity < types.SeveritySerious && !r.gateOpen(extra) {
		return sink.Discard
	}

	stream := r.MasterStream(types.WorldCommunicator)
	r.writeHeader(stream, at, extra)
	if stream != sink.Discard {
		r.mirror(at, extra)
	}

	if r.severity == types.SeverityFatal {
		r.abort()
	}
	if counted && r.severity == types.SeveritySerious {
		if max := r.maxErrors.Load(); max > 0 && r.errorCount.Load() > max {
			r.abort()
		}
	}

	return stream
}

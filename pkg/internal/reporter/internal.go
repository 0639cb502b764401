package reporter

import (
	"fmt"

	"github.com/joeydtaylor/foghorn/pkg/internal/types"
)

// gateOpen evaluates the display gate for INFO and WARNING reports: an
// explicit output gate wins; otherwise the process-wide debug level must meet
// the call's requirement.
func (r *Reporter) gateOpen(extra types.ReportContext) bool {
	if extra.Kind == types.ContextGate && !extra.Output {
		return false
	}
	return Level() >= extra.MinLevel
}

// writeHeader emits the message header and any extra context. Writing to the
// discard stream is a no-op, so non-master processes pay only formatting.
func (r *Reporter) writeHeader(stream types.Stream, at types.CallSite, extra types.ReportContext) {
	title := r.title
	if painter, ok := r.out.(types.Painter); ok {
		title = painter.Paint(r.severity, title)
	}

	stream.Printf("\n--> %s : \n", title)
	if at.Function != "" {
		stream.Printf("    From function %s\n", at.Function)
	}
	if at.File != "" {
		if at.Line > 0 {
			stream.Printf("    in file %s at line %d\n", at.File, at.Line)
		} else {
			stream.Printf("    in file %s\n", at.File)
		}
	}

	switch extra.Kind {
	case types.ContextFields:
		r.writeFields(stream, extra.Fields)
	case types.ContextProvenance:
		r.writeProvenance(stream, extra.Provenance)
	}
}

// writeFields renders a named field set, one "key = value;" line per entry in
// insertion order.
func (r *Reporter) writeFields(stream types.Stream, fields types.Dictionary) {
	if fields == nil {
		return
	}
	for _, key := range fields.Keys() {
		value, ok := fields.Lookup(key)
		if !ok {
			continue
		}
		stream.Printf("    %s = %v;\n", key, value)
	}
}

// writeProvenance renders the I/O source a malformed input was read from.
func (r *Reporter) writeProvenance(stream types.Stream, prov types.Provenance) {
	if prov.Name == "" {
		return
	}
	switch {
	case prov.StartLine >= 0 && prov.EndLine >= 0:
		stream.Printf("    Reading %q between lines %d and %d\n", prov.Name, prov.StartLine, prov.EndLine)
	case prov.StartLine >= 0:
		stream.Printf("    Reading %q at line %d\n", prov.Name, prov.StartLine)
	default:
		stream.Printf("    Reading %q\n", prov.Name)
	}
}

// abort flushes every output path and terminates the computation. It is the
// designed mechanism for turning accumulated domain errors into process
// termination; there is no unwind.
func (r *Reporter) abort() {
	r.flushAll()
	if r.exit != nil {
		r.exit(abortExitCode)
		return
	}
	// Communicators with a control plane carry the triggering title to the
	// surviving ranks.
	if c, ok := r.comm.(interface{ AbortWithReason(int, string) }); ok {
		c.AbortWithReason(abortExitCode, r.title)
		return
	}
	r.comm.Abort(abortExitCode)
}

// flushAll forces the sink and every attached logger to flush. Failures at
// this point are swallowed; the process is about to exit and the diagnostics
// already on the sink matter more than a sync error.
func (r *Reporter) flushAll() {
	if r.out != nil {
		_ = r.out.Flush()
	}
	r.loggersLock.Lock()
	loggers := make([]types.Logger, len(r.loggers))
	copy(loggers, r.loggers)
	r.loggersLock.Unlock()
	for _, logger := range loggers {
		if logger == nil {
			continue
		}
		_ = logger.Flush()
	}
}

// describeProvenance renders a provenance tag for the structured mirror.
func describeProvenance(prov types.Provenance) string {
	switch {
	case prov.Name == "":
		return ""
	case prov.StartLine >= 0 && prov.EndLine >= 0:
		return fmt.Sprintf("%s:%d-%d", prov.Name, prov.StartLine, prov.EndLine)
	case prov.StartLine >= 0:
		return fmt.Sprintf("%s:%d", prov.Name, prov.StartLine)
	default:
		return prov.Name
	}
}

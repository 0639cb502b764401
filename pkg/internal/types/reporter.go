package types

// CallSite identifies the origin of a diagnostic: the reporting function and
// the source file and line the report was issued from.
type CallSite struct {
	Function string
	File     string
	Line     int
}

// ContextKind discriminates the optional extra context attached to a report.
type ContextKind int

const (
	ContextNone       ContextKind = iota // No extra context.
	ContextFields                        // A named field set, rendered as a field listing.
	ContextProvenance                    // An I/O source description, rendered as a provenance qualifier.
	ContextGate                          // An explicit boolean output gate.
)

// Provenance identifies the I/O source a malformed input was read from,
// optionally narrowed to a line range. Line values of -1 mean "unset".
type Provenance struct {
	Name      string
	StartLine int
	EndLine   int
}

// ReportContext is the tagged union of per-call extra context. Only the
// variant selected by Kind is consulted. MinLevel is orthogonal to Kind: an
// INFO or WARNING report is emitted only when the process-wide debug level is
// at least MinLevel.
type ReportContext struct {
	Kind       ContextKind
	Fields     Dictionary
	Provenance Provenance
	Output     bool
	MinLevel   int
}

// Reporter is the severity-classified diagnostic reporting component. One
// instance per severity class is shared process-wide; ad hoc instances may be
// constructed from a dictionary.
type Reporter interface {
	// Title returns the human-readable title printed with every message.
	Title() string
	// Severity returns the severity class, fixed at construction.
	Severity() Severity
	// MaxErrors returns the error budget; 0 means unlimited.
	MaxErrors() int
	// SetMaxErrors adjusts the error budget at runtime.
	SetMaxErrors(n int)
	// ErrorCount returns the number of counted reports so far.
	ErrorCount() int

	// MasterStream returns the real sink only on the master process for the
	// given communicator; every other process receives a no-op stream.
	MasterStream(communicator int) Stream

	// Report emits the formatted header for the given call site and extra
	// context, applies the termination policy, and returns a stream for
	// further content.
	Report(at CallSite, extra ReportContext) Stream

	// Stream returns the gated sink with no header, for call sites that only
	// want master-only routing.
	Stream() Stream

	// ConnectLogger attaches structured loggers that mirror every emitted
	// diagnostic.
	ConnectLogger(...Logger)
	// GetComponentMetadata returns the component's identifying metadata.
	GetComponentMetadata() ComponentMetadata
}

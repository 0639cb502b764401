// Package builder is the public assembly surface of Foghorn. It re-exports
// the internal constructors, options, and types so application code imports
// one package to wire diagnostics together.
package builder

import (
	"context"

	"github.com/joeydtaylor/foghorn/pkg/internal/reporter"
	"github.com/joeydtaylor/foghorn/pkg/internal/types"
)

// Severity is exported from the internal types package.
type Severity = types.Severity

// Export severities to be accessible under the builder package
const (
	SeverityInfo    = types.SeverityInfo
	SeverityWarning = types.SeverityWarning
	SeveritySerious = types.SeveritySerious
	SeverityFatal   = types.SeverityFatal
)

// WorldCommunicator spans every process in the computation.
const WorldCommunicator = types.WorldCommunicator

type Reporter = types.Reporter

type CallSite = types.CallSite

type ReportContext = types.ReportContext

type Provenance = types.Provenance

type Stream = types.Stream

// ParseSeverity parses a severity name case-insensitively.
func ParseSeverity(s string) (Severity, bool) {
	return types.ParseSeverity(s)
}

// NewReporter constructs a reporter with configurable options.
func NewReporter(ctx context.Context, options ...types.Option[*reporter.Reporter]) types.Reporter {
	return reporter.NewReporter(ctx, options...)
}

// NewReporterFromDictionary constructs a reporter from a configuration record.
func NewReporterFromDictionary(ctx context.Context, dict types.Dictionary, options ...types.Option[*reporter.Reporter]) (types.Reporter, error) {
	return reporter.NewReporterFromDictionary(ctx, dict, options...)
}

// ReporterWithTitle sets the title printed with every message.
func ReporterWithTitle(title string) types.Option[*reporter.Reporter] {
	return reporter.ReporterWithTitle(title)
}

// ReporterWithSeverity sets the severity class.
func ReporterWithSeverity(severity Severity) types.Option[*reporter.Reporter] {
	return reporter.ReporterWithSeverity(severity)
}

// ReporterWithMaxErrors sets the error budget; 0 means unlimited.
func ReporterWithMaxErrors(n int) types.Option[*reporter.Reporter] {
	return reporter.ReporterWithMaxErrors(n)
}

// ReporterWithCommunicator binds the reporter to a communicator.
func ReporterWithCommunicator(c types.Communicator) types.Option[*reporter.Reporter] {
	return reporter.ReporterWithCommunicator(c)
}

// ReporterWithSink directs emitted messages at the given sink.
func ReporterWithSink(s types.Sink) types.Option[*reporter.Reporter] {
	return reporter.ReporterWithSink(s)
}

// ReporterWithLogger attaches structured loggers to the reporter.
func ReporterWithLogger(loggers ...types.Logger) types.Option[*reporter.Reporter] {
	return reporter.ReporterWithLogger(loggers...)
}

// InitGlobals constructs the process-wide Info, Warning, and SeriousError
// reporters with the shared options applied to each.
func InitGlobals(ctx context.Context, shared ...types.Option[*reporter.Reporter]) {
	reporter.Init(ctx, shared...)
}

// Info returns the process-wide INFO reporter.
func Info() types.Reporter { return reporter.Info() }

// Warning returns the process-wide WARNING reporter.
func Warning() types.Reporter { return reporter.Warning() }

// SeriousError returns the process-wide SERIOUS reporter.
func SeriousError() types.Reporter { return reporter.SeriousError() }

// DebugLevel returns the process-wide debug level.
func DebugLevel() int { return reporter.Level() }

// SetDebugLevel sets the process-wide debug level.
func SetDebugLevel(n int) { reporter.SetLevel(n) }

// Configure applies declarative diagnostic settings from a record.
func Configure(dict types.Dictionary) { reporter.Configure(dict) }

// Here captures the caller's source location. It is an alias, not a wrapper,
// so the captured frame is the application's.
var Here = reporter.Here

// NoContext is the empty extra-context value.
func NoContext() ReportContext { return reporter.NoContext() }

// WithFields attaches a named field set to a report.
func WithFields(fields types.Dictionary) ReportContext { return reporter.WithFields(fields) }

// WithProvenance attaches an I/O provenance tag to a report.
func WithProvenance(name string, startLine, endLine int) ReportContext {
	return reporter.WithProvenance(name, startLine, endLine)
}

// WithOutput attaches an explicit output gate to a report.
func WithOutput(output bool) ReportContext { return reporter.WithOutput(output) }

// WithMinLevel requires the given debug level for the report to be emitted.
func WithMinLevel(n int) ReportContext { return reporter.WithMinLevel(n) }

// Convenience entry points binding a global reporter together with the
// caller's source location, the primary call contract for application code.
// These are aliases, not wrappers, so the captured call site is the
// application's, and an empty function name keeps the one captured from the
// stack.
var (
	InfoIn           = reporter.InfoIn
	WarningIn        = reporter.WarningIn
	SeriousErrorIn   = reporter.SeriousErrorIn
	IOInfoIn         = reporter.IOInfoIn
	IOWarningIn      = reporter.IOWarningIn
	IOSeriousErrorIn = reporter.IOSeriousErrorIn
)

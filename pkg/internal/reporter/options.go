package reporter

import "github.com/joeydtaylor/foghorn/pkg/internal/types"

// ReporterWithTitle sets the human-readable title printed with every message.
func ReporterWithTitle(title string) types.Option[*Reporter] {
	return func(r *Reporter) {
		r.title = title
	}
}

// ReporterWithSeverity sets the severity class. It is fixed for the life of
// the reporter.
func ReporterWithSeverity(severity types.Severity) types.Option[*Reporter] {
	return func(r *Reporter) {
		r.severity = severity
	}
}

// ReporterWithMaxErrors sets the error budget; 0 means unlimited.
func ReporterWithMaxErrors(n int) types.Option[*Reporter] {
	return func(r *Reporter) {
		r.maxErrors.Store(int64(n))
	}
}

// ReporterWithCommunicator binds the reporter to a communicator for
// master-rank selection and coordinated aborts.
func ReporterWithCommunicator(c types.Communicator) types.Option[*Reporter] {
	return func(r *Reporter) {
		r.comm = c
	}
}

// ReporterWithSink directs emitted messages at the given sink.
func ReporterWithSink(s types.Sink) types.Option[*Reporter] {
	return func(r *Reporter) {
		r.out = s
	}
}

// ReporterWithLogger attaches structured loggers that mirror every emitted
// diagnostic.
func ReporterWithLogger(loggers ...types.Logger) types.Option[*Reporter] {
	return func(r *Reporter) {
		r.ConnectLogger(loggers...)
	}
}

// ReporterWithExit overrides the termination path. Tests use this to observe
// aborts without the process dying.
func ReporterWithExit(exit func(int)) types.Option[*Reporter] {
	return func(r *Reporter) {
		r.exit = exit
	}
}

package reporter

import "github.com/joeydtaylor/foghorn/pkg/internal/types"

// Title returns the title of this error type.
func (r *Reporter) Title() string {
	return r.title
}

// Severity returns the severity class, fixed at construction.
func (r *Reporter) Severity() types.Severity {
	return r.severity
}

// MaxErrors returns the maximum number of errors before program termination;
// 0 means unlimited.
func (r *Reporter) MaxErrors() int {
	return int(r.maxErrors.Load())
}

// SetMaxErrors resets the error budget, e.g. a solver temporarily tolerating
// more non-convergence reports.
func (r *Reporter) SetMaxErrors(n int) {
	r.maxErrors.Store(int64(n))
}

// ErrorCount returns the number of counted reports issued so far.
func (r *Reporter) ErrorCount() int {
	return int(r.errorCount.Load())
}

// ConnectLogger attaches structured loggers that mirror emitted diagnostics.
func (r *Reporter) ConnectLogger(loggers ...types.Logger) {
	r.loggersLock.Lock()
	defer r.loggersLock.Unlock()
	r.loggers = append(r.loggers, loggers...)
}

// GetComponentMetadata returns the reporter's identifying metadata.
func (r *Reporter) GetComponentMetadata() types.ComponentMetadata {
	return r.componentMetadata
}

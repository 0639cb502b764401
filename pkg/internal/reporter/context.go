package reporter

import "github.com/joeydtaylor/foghorn/pkg/internal/types"

// NoContext is the empty extra-context value.
func NoContext() types.ReportContext {
	return types.ReportContext{Kind: types.ContextNone}
}

// WithFields attaches a named field set to a report.
func WithFields(fields types.Dictionary) types.ReportContext {
	return types.ReportContext{Kind: types.ContextFields, Fields: fields}
}

// WithProvenance attaches an I/O provenance tag. Pass -1 for unknown line
// numbers.
func WithProvenance(name string, startLine, endLine int) types.ReportContext {
	return types.ReportContext{
		Kind: types.ContextProvenance,
		Provenance: types.Provenance{
			Name:      name,
			StartLine: startLine,
			EndLine:   endLine,
		},
	}
}

// WithOutput attaches an explicit output gate. A false gate suppresses INFO
// and WARNING reports regardless of debug level.
func WithOutput(output bool) types.ReportContext {
	return types.ReportContext{Kind: types.ContextGate, Output: output}
}

// WithMinLevel requires the process-wide debug level to be at least n for an
// INFO or WARNING report to be emitted.
func WithMinLevel(n int) types.ReportContext {
	return types.ReportContext{Kind: types.ContextNone, MinLevel: n}
}

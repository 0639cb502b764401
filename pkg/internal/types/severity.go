package types

import "strings"

// Severity classifies a diagnostic by increasing criticality. The ordering is
// load-bearing: termination policy compares severities, so the constants must
// stay in ascending order of consequence.
type Severity int

const (
	SeverityInfo    Severity = iota // Informational message; never affects the error budget.
	SeverityWarning                 // Warning of a possible problem; continues execution.
	SeveritySerious                 // A serious problem; counted against the error budget.
	SeverityFatal                   // Unrecoverable; terminates the computation after reporting.
)

// String returns the canonical uppercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeveritySerious:
		return "SERIOUS"
	case SeverityFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseSeverity parses a severity name case-insensitively. The second return
// value reports whether the name was recognized.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "INFO":
		return SeverityInfo, true
	case "WARNING", "WARN":
		return SeverityWarning, true
	case "SERIOUS":
		return SeveritySerious, true
	case "FATAL":
		return SeverityFatal, true
	default:
		return SeverityInfo, false
	}
}

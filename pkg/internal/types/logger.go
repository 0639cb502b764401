package types

// LogLevel represents the severity levels for structured logging within the
// system. It is distinct from Severity, which classifies diagnostics;
// LogLevel governs the structured mirror only. The reporter owns process
// termination, so the mirror has no panic or fatal levels: everything at or
// above SERIOUS mirrors as an error entry.
type LogLevel int

// SinkType defines the type of logger sink.
type SinkType string

// Define constants for SinkType
const (
	FileSink   SinkType = "file"
	StdoutSink SinkType = "stdout"
	StderrSink SinkType = "stderr"
)

const (
	DebugLevel LogLevel = iota // DebugLevel indicates debug messages.
	InfoLevel                  // InfoLevel indicates informational messages.
	WarnLevel                  // WarnLevel indicates warning messages.
	ErrorLevel                 // ErrorLevel indicates error messages.
)

// SinkConfig defines the configuration for a logging sink.
type SinkConfig struct {
	Type   string                 // Type of sink, e.g., "file", "stdout", "stderr"
	Config map[string]interface{} // Detailed configuration specific to the sink type
}

// Logger is the target of the diagnostic mirror: every diagnostic that
// reaches the real sink is also offered to the attached loggers with
// structured fields.
type Logger interface {
	GetLevel() LogLevel                             // GetLevel returns the current logging level of the logger.
	SetLevel(LogLevel)                              // SetLevel sets the logging level of the logger.
	Debug(msg string, keysAndValues ...interface{}) // Debug logs a debug message.
	Info(msg string, keysAndValues ...interface{})  // Info logs an informational message.
	Warn(msg string, keysAndValues ...interface{})  // Warn logs a warning message.
	Error(msg string, keysAndValues ...interface{}) // Error logs an error message.
	Flush() error                                   // Flush syncs buffered log entries to their sinks.
	AddSink(identifier string, config SinkConfig) error
	RemoveSink(identifier string) error
	ListSinks() ([]string, error)
}

// SeverityToLogLevel maps a diagnostic severity onto the structured logging
// level used when mirroring it. FATAL maps to ErrorLevel: the reporter's
// abort protocol performs the termination, and the mirror must not exit
// underneath it.
func SeverityToLogLevel(s Severity) LogLevel {
	switch s {
	case SeverityWarning:
		return WarnLevel
	case SeveritySerious, SeverityFatal:
		return ErrorLevel
	default:
		return InfoLevel
	}
}

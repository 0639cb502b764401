package logschema

// Log schema constants for Foghorn structured logs.
const (
	SchemaID    = "foghorn.log.v1"
	FieldSchema = "log_schema"

	FieldTimestamp = "ts"
	FieldLevel     = "level"
	FieldMessage   = "msg"
	FieldLogger    = "logger"
	FieldCaller    = "caller"
	FieldStack     = "stack"

	FieldComponent  = "component"
	FieldTitle      = "title"
	FieldSeverity   = "severity"
	FieldFunction   = "function"
	FieldFile       = "file"
	FieldLine       = "line"
	FieldProvenance = "provenance"
	FieldErrorCount = "error_count"
	FieldRank       = "rank"
)

// LogRecord is a generic map representation of a log entry.
type LogRecord map[string]interface{}

package internallogger

import (
	"strings"

	"github.com/joeydtaylor/foghorn/pkg/internal/types"
	"go.uber.org/zap"
)

// Log emits one structured entry. Keys and values arrive as alternating
// pairs, the mirror's calling convention; a trailing odd value is dropped and
// a non-string key skips its pair.
func (z *ZapLoggerAdapter) Log(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	z.mu.Lock()
	logger := z.logger
	z.mu.Unlock()
	if logger == nil {
		return
	}

	entry := logger.Check(toZapLevel(level), msg)
	if entry == nil {
		return
	}
	entry.Write(diagnosticFields(keysAndValues)...)
}

func diagnosticFields(keysAndValues []interface{}) []zap.Field {
	fields := make([]zap.Field, 0, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields = append(fields, diagnosticField(key, keysAndValues[i+1]))
	}
	return fields
}

// diagnosticField flattens the mirror's value types: component metadata
// becomes a nested object, errors keep zap's error shape, everything else is
// encoded as-is.
func diagnosticField(key string, value interface{}) zap.Field {
	switch v := value.(type) {
	case types.ComponentMetadata:
		return zap.Any(key, map[string]string{
			"id":   v.ID,
			"type": v.Type,
			"name": v.Name,
		})
	case error:
		return zap.NamedError(key, v)
	default:
		return zap.Any(key, value)
	}
}

// Debug logs a debug message.
func (z *ZapLoggerAdapter) Debug(msg string, keysAndValues ...interface{}) {
	z.Log(types.DebugLevel, msg, keysAndValues...)
}

// Info logs an informational message.
func (z *ZapLoggerAdapter) Info(msg string, keysAndValues ...interface{}) {
	z.Log(types.InfoLevel, msg, keysAndValues...)
}

// Warn logs a warning message.
func (z *ZapLoggerAdapter) Warn(msg string, keysAndValues ...interface{}) {
	z.Log(types.WarnLevel, msg, keysAndValues...)
}

// Error logs an error message.
func (z *ZapLoggerAdapter) Error(msg string, keysAndValues ...interface{}) {
	z.Log(types.ErrorLevel, msg, keysAndValues...)
}

// GetLevel returns the configured log level.
func (z *ZapLoggerAdapter) GetLevel() types.LogLevel {
	return fromZapLevel(z.atomicLevel.Level())
}

// SetLevel updates the logger's minimum level.
func (z *ZapLoggerAdapter) SetLevel(level types.LogLevel) {
	z.atomicLevel.SetLevel(toZapLevel(level))
}

// Flush syncs the logger's outputs. Stdout and stderr refuse Sync on most
// platforms; those errors are not actionable and are dropped.
func (z *ZapLoggerAdapter) Flush() error {
	z.mu.Lock()
	logger := z.logger
	z.mu.Unlock()

	if logger == nil {
		return nil
	}
	if err := logger.Sync(); err != nil && !ignorableSyncError(err) {
		return err
	}
	return nil
}

func ignorableSyncError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "inappropriate ioctl for device") ||
		strings.Contains(msg, "bad file descriptor") ||
		strings.Contains(msg, "invalid argument")
}

var _ types.Logger = (*ZapLoggerAdapter)(nil)

package reporter

import (
	"github.com/joeydtaylor/foghorn/pkg/internal/types"
	"github.com/joeydtaylor/foghorn/pkg/logschema"
)

// mirror offers an emitted diagnostic to every attached structured logger
// with the header's information content as fields. Only reports that reached
// the real sink are mirrored, so the structured stream stays as quiet as the
// textual one on non-master ranks.
func (r *Reporter) mirror(at types.CallSite, extra types.ReportContext) {
	keysAndValues := []interface{}{
		logschema.FieldComponent, r.componentMetadata,
		logschema.FieldTitle, r.title,
		logschema.FieldSeverity, r.severity.String(),
		logschema.FieldFunction, at.Function,
		logschema.FieldFile, at.File,
		logschema.FieldLine, at.Line,
	}
	if r.severity >= types.SeveritySerious {
		keysAndValues = append(keysAndValues, logschema.FieldErrorCount, r.ErrorCount())
	}
	if extra.Kind == types.ContextProvenance {
		if desc := describeProvenance(extra.Provenance); desc != "" {
			keysAndValues = append(keysAndValues, logschema.FieldProvenance, desc)
		}
	}

	r.NotifyLoggers(types.SeverityToLogLevel(r.severity), r.title, keysAndValues...)
}

// NotifyLoggers forwards a message to every attached logger that accepts the
// given level.
func (r *Reporter) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	r.loggersLock.Lock()
	loggers := make([]types.Logger, len(r.loggers))
	copy(loggers, r.loggers)
	r.loggersLock.Unlock()

	if len(loggers) == 0 {
		return
	}

	for _, logger := range loggers {
		if logger == nil {
			continue
		}
		if logger.GetLevel() > level {
			continue
		}
		switch level {
		case types.DebugLevel:
			logger.Debug(msg, keysAndValues...)
		case types.InfoLevel:
			logger.Info(msg, keysAndValues...)
		case types.WarnLevel:
			logger.Warn(msg, keysAndValues...)
		default:
			logger.Error(msg, keysAndValues...)
		}
	}
}

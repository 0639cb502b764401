// Package internallogger adapts go.uber.org/zap into the Logger contract the
// diagnostic mirror writes to. One JSON core on stdout is tee'd with any
// number of named sinks, all sharing a single atomic level.
package internallogger

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joeydtaylor/foghorn/pkg/internal/types"
	"github.com/joeydtaylor/foghorn/pkg/logschema"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LoggerOption func(*zap.Config, *zapcore.Level, *int)

// ZapLoggerAdapter is the structured logging backend diagnostics are mirrored
// to.
type ZapLoggerAdapter struct {
	mu          sync.Mutex
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
	encConfig   zapcore.EncoderConfig
	baseCore    zapcore.Core
	baseFields  []zap.Field
	callerOn    bool
	callerDepth int
	sinks       map[string]sinkEntry
}

// NewLogger initializes a new ZapLoggerAdapter with configurable options.
func NewLogger(options ...LoggerOption) *ZapLoggerAdapter {
	config := zap.NewProductionConfig()
	var level zapcore.Level
	callerDepth := 3

	for _, option := range options {
		option(&config, &level, &callerDepth)
	}

	z := &ZapLoggerAdapter{
		atomicLevel: zap.NewAtomicLevelAt(level),
		encConfig:   diagnosticEncoderConfig(),
		callerOn:    !config.DisableCaller,
		callerDepth: callerDepth,
		sinks:       make(map[string]sinkEntry),
	}
	z.baseCore = zapcore.NewCore(zapcore.NewJSONEncoder(z.encConfig), zapcore.Lock(os.Stdout), z.atomicLevel)
	z.baseFields = initialFields(config.InitialFields)

	z.mu.Lock()
	z.rebuildLoggerLocked()
	z.mu.Unlock()

	return z
}

func (z *ZapLoggerAdapter) rebuildLoggerLocked() {
	cores := make([]zapcore.Core, 0, 1+len(z.sinks))
	cores = append(cores, z.baseCore)
	for _, entry := range z.sinks {
		cores = append(cores, entry.core)
	}
	combined := zapcore.NewTee(cores...)
	opts := []zap.Option{zap.AddCallerSkip(z.callerDepth)}
	if z.callerOn {
		opts = append(opts, zap.AddCaller())
	}
	logger := zap.New(combined, opts...)
	if len(z.baseFields) > 0 {
		logger = logger.With(z.baseFields...)
	}
	z.logger = logger
}

// diagnosticEncoderConfig keys every entry with the logschema field names so
// mirrored diagnostics and ordinary log lines share one shape.
func diagnosticEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:       logschema.FieldTimestamp,
		LevelKey:      logschema.FieldLevel,
		NameKey:       logschema.FieldLogger,
		CallerKey:     logschema.FieldCaller,
		MessageKey:    logschema.FieldMessage,
		StacktraceKey: logschema.FieldStack,
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.LowercaseLevelEncoder,
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.UTC().Format(time.RFC3339Nano))
		},
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

func initialFields(fields map[string]interface{}) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields))
	for key, value := range fields {
		if key == "" {
			continue
		}
		out = append(out, zap.Any(key, value))
	}
	return out
}

// The mirror has four levels. Unrecognized names parse as info, and zap
// levels above error collapse back to ErrorLevel because the adapter never
// emits them; the reporter owns termination.

func parseLogLevel(s string) types.LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return types.DebugLevel
	case "warn", "warning":
		return types.WarnLevel
	case "error":
		return types.ErrorLevel
	default:
		return types.InfoLevel
	}
}

func toZapLevel(level types.LogLevel) zapcore.Level {
	switch level {
	case types.DebugLevel:
		return zapcore.DebugLevel
	case types.WarnLevel:
		return zapcore.WarnLevel
	case types.ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func fromZapLevel(level zapcore.Level) types.LogLevel {
	switch {
	case level <= zapcore.DebugLevel:
		return types.DebugLevel
	case level == zapcore.InfoLevel:
		return types.InfoLevel
	case level == zapcore.WarnLevel:
		return types.WarnLevel
	default:
		return types.ErrorLevel
	}
}

package reporter_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/joeydtaylor/foghorn/pkg/internal/reporter"
	"github.com/joeydtaylor/foghorn/pkg/internal/sink"
	"github.com/joeydtaylor/foghorn/pkg/internal/types"
)

type countingLogger struct {
	level types.LogLevel
	debug int32
	info  int32
	warn  int32
	err   int32
}

func (c *countingLogger) GetLevel() types.LogLevel { return c.level }
func (c *countingLogger) SetLevel(l types.LogLevel) { c.level = l }
func (c *countingLogger) Debug(msg string, kv ...interface{}) {
	atomic.AddInt32(&c.debug, 1)
}
func (c *countingLogger) Info(msg string, kv ...interface{}) {
	atomic.AddInt32(&c.info, 1)
}
func (c *countingLogger) Warn(msg string, kv ...interface{}) {
	atomic.AddInt32(&c.warn, 1)
}
func (c *countingLogger) Error(msg string, kv ...interface{}) {
	atomic.AddInt32(&c.err, 1)
}
func (c *countingLogger) Flush() error { return nil }

func (c *countingLogger) AddSink(id string, cfg types.SinkConfig) error { return nil }
func (c *countingLogger) RemoveSink(id string) error                    { return nil }
func (c *countingLogger) ListSinks() ([]string, error)                  { return nil, nil }

func TestReporter_MirrorsEmittedDiagnostics(t *testing.T) {
	logger := &countingLogger{level: types.DebugLevel}
	buf := sink.NewBuffer()
	r := reporter.NewReporter(
		context.Background(),
		reporter.ReporterWithTitle("Warning"),
		reporter.ReporterWithSeverity(types.SeverityWarning),
		reporter.ReporterWithSink(buf),
		reporter.ReporterWithCommunicator(&fakeComm{master: true}),
		reporter.ReporterWithLogger(logger),
	)

	r.Report(site(), reporter.NoContext())
	if got := atomic.LoadInt32(&logger.warn); got != 1 {
		t.Fatalf("warn mirrors = %d, want 1", got)
	}
}

func TestReporter_NoMirrorOnSuppressedRank(t *testing.T) {
	logger := &countingLogger{level: types.DebugLevel}
	r := reporter.NewReporter(
		context.Background(),
		reporter.ReporterWithTitle("Warning"),
		reporter.ReporterWithSeverity(types.SeverityWarning),
		reporter.ReporterWithSink(sink.NewBuffer()),
		reporter.ReporterWithCommunicator(&fakeComm{master: false}),
		reporter.ReporterWithLogger(logger),
	)

	r.Report(site(), reporter.NoContext())
	if got := atomic.LoadInt32(&logger.warn); got != 0 {
		t.Fatalf("suppressed rank mirrored %d diagnostics", got)
	}
}

func TestReporter_SeriousMirrorsAsError(t *testing.T) {
	logger := &countingLogger{level: types.DebugLevel}
	r := reporter.NewReporter(
		context.Background(),
		reporter.ReporterWithTitle("Serious Error"),
		reporter.ReporterWithSeverity(types.SeveritySerious),
		reporter.ReporterWithSink(sink.NewBuffer()),
		reporter.ReporterWithCommunicator(&fakeComm{master: true}),
		reporter.ReporterWithLogger(logger),
	)

	r.Report(site(), reporter.NoContext())
	if got := atomic.LoadInt32(&logger.err); got != 1 {
		t.Fatalf("error mirrors = %d, want 1", got)
	}
}

func TestReporter_FatalMirrorsAsErrorBeforeAbort(t *testing.T) {
	logger := &countingLogger{level: types.DebugLevel}
	var code int
	r := reporter.NewReporter(
		context.Background(),
		reporter.ReporterWithTitle("Fatal Error"),
		reporter.ReporterWithSeverity(types.SeverityFatal),
		reporter.ReporterWithSink(sink.NewBuffer()),
		reporter.ReporterWithCommunicator(&fakeComm{master: true}),
		reporter.ReporterWithLogger(logger),
		reporter.ReporterWithExit(func(n int) { code = n }),
	)

	r.Report(site(), reporter.NoContext())
	if got := atomic.LoadInt32(&logger.err); got != 1 {
		t.Fatalf("error mirrors = %d, want 1 for a fatal diagnostic", got)
	}
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
}

func TestNotifyLoggers_RespectsLoggerLevel(t *testing.T) {
	logger := &countingLogger{level: types.WarnLevel}
	r := reporter.NewReporter(
		context.Background(),
		reporter.ReporterWithSink(sink.NewBuffer()),
		reporter.ReporterWithCommunicator(&fakeComm{master: true}),
		reporter.ReporterWithLogger(logger),
	)

	r.NotifyLoggers(types.InfoLevel, "below threshold")
	r.NotifyLoggers(types.WarnLevel, "at threshold")

	if got := atomic.LoadInt32(&logger.info); got != 0 {
		t.Fatalf("info logs = %d, want 0", got)
	}
	if got := atomic.LoadInt32(&logger.warn); got != 1 {
		t.Fatalf("warn logs = %d, want 1", got)
	}
}

package reporter_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/joeydtaylor/foghorn/pkg/internal/dictionary"
	"github.com/joeydtaylor/foghorn/pkg/internal/reporter"
	"github.com/joeydtaylor/foghorn/pkg/internal/sink"
	"github.com/joeydtaylor/foghorn/pkg/internal/types"
)

// fakeComm stands in for the parallel layer: master-ness is configurable and
// aborts are recorded instead of terminating the test binary.
type fakeComm struct {
	master bool
	aborts int32
	code   int32
	reason atomic.Value
}

func (f *fakeComm) Rank() int {
	if f.master {
		return 0
	}
	return 1
}
func (f *fakeComm) Size() int { return 2 }

func (f *fakeComm) IsMaster(communicator int) bool { return f.master }
func (f *fakeComm) Abort(code int) { f.AbortWithReason(code, "") }

func (f *fakeComm) AbortWithReason(code int, reason string) {
	atomic.AddInt32(&f.aborts, 1)
	atomic.StoreInt32(&f.code, int32(code))
	f.reason.Store(reason)
}
func (f *fakeComm) Close() error { return nil }

func newTestReporter(t *testing.T, severity types.Severity, maxErrors int, master bool) (*reporter.Reporter, *sink.Buffer, *fakeComm) {
	t.Helper()
	buf := sink.NewBuffer()
	fc := &fakeComm{master: master}
	r := reporter.NewReporter(
		context.Background(),
		reporter.ReporterWithTitle("Test"),
		reporter.ReporterWithSeverity(severity),
		reporter.ReporterWithMaxErrors(maxErrors),
		reporter.ReporterWithSink(buf),
		reporter.ReporterWithCommunicator(fc),
	)
	return r, buf, fc
}

func site() types.CallSite {
	return types.CallSite{Function: "solve", File: "solver.go", Line: 42}
}

func TestReporter_AccessorsRoundTrip(t *testing.T) {
	r, _, _ := newTestReporter(t, types.SeverityWarning, 5, true)
	if r.Title() != "Test" {
		t.Fatalf("Title = %q", r.Title())
	}
	if r.Severity() != types.SeverityWarning {
		t.Fatalf("Severity = %v", r.Severity())
	}
	if r.MaxErrors() != 5 {
		t.Fatalf("MaxErrors = %d", r.MaxErrors())
	}
	r.SetMaxErrors(9)
	if r.MaxErrors() != 9 {
		t.Fatalf("MaxErrors after set = %d", r.MaxErrors())
	}
}

func TestReporter_HeaderCarriesSourceContext(t *testing.T) {
	r, buf, _ := newTestReporter(t, types.SeverityWarning, 0, true)
	r.Report(site(), reporter.NoContext())

	out := buf.String()
	for _, want := range []string{"Test", "solve", "solver.go", "42"} {
		if !strings.Contains(out, want) {
			t.Fatalf("header %q missing %q", out, want)
		}
	}
}

func TestReporter_WarningNeverCountedOrAborted(t *testing.T) {
	r, buf, fc := newTestReporter(t, types.SeverityWarning, 0, true)
	for i := 0; i < 100; i++ {
		r.Report(site(), reporter.NoContext())
	}
	if got := r.ErrorCount(); got != 0 {
		t.Fatalf("ErrorCount = %d, want 0", got)
	}
	if fc.aborts != 0 {
		t.Fatalf("aborts = %d, want 0", fc.aborts)
	}
	if got := strings.Count(buf.String(), "--> "); got != 100 {
		t.Fatalf("writes = %d, want 100", got)
	}
}

func TestReporter_UnlimitedBudgetNeverAborts(t *testing.T) {
	r, _, fc := newTestReporter(t, types.SeveritySerious, 0, true)
	for i := 0; i < 250; i++ {
		r.Report(site(), reporter.NoContext())
	}
	if fc.aborts != 0 {
		t.Fatalf("aborts = %d, want 0 with unlimited budget", fc.aborts)
	}
	if got := r.ErrorCount(); got != 250 {
		t.Fatalf("ErrorCount = %d, want 250", got)
	}
}

func TestReporter_BudgetExceededAborts(t *testing.T) {
	r, buf, fc := newTestReporter(t, types.SeveritySerious, 2, true)

	r.Report(site(), reporter.NoContext())
	r.Report(site(), reporter.NoContext())
	if fc.aborts != 0 {
		t.Fatalf("aborted within budget after %d reports", r.ErrorCount())
	}

	r.Report(site(), reporter.NoContext())
	if fc.aborts != 1 {
		t.Fatalf("aborts = %d, want 1 on report %d", fc.aborts, r.ErrorCount())
	}
	if fc.code != 1 {
		t.Fatalf("exit code = %d, want 1", fc.code)
	}
	// The triggering message must be written before termination.
	if got := strings.Count(buf.String(), "--> "); got != 3 {
		t.Fatalf("writes = %d, want 3", got)
	}
}

func TestReporter_FatalAbortsImmediately(t *testing.T) {
	r, buf, fc := newTestReporter(t, types.SeverityFatal, 0, true)
	r.Report(site(), reporter.NoContext())
	if fc.aborts != 1 {
		t.Fatalf("aborts = %d, want 1", fc.aborts)
	}
	if !strings.Contains(buf.String(), "Test") {
		t.Fatalf("fatal message not written before abort: %q", buf.String())
	}
	if got, _ := fc.reason.Load().(string); got != "Test" {
		t.Fatalf("abort reason = %q, want the reporter title", got)
	}
}

func TestReporter_SuppressionDoesNotAffectCounting(t *testing.T) {
	r, buf, fc := newTestReporter(t, types.SeveritySerious, 0, false)
	for i := 0; i < 5; i++ {
		r.Report(site(), reporter.NoContext())
	}
	if got := r.ErrorCount(); got != 5 {
		t.Fatalf("ErrorCount = %d, want 5 despite suppression", got)
	}
	if buf.String() != "" {
		t.Fatalf("non-master wrote to real sink: %q", buf.String())
	}
	if fc.aborts != 0 {
		t.Fatalf("aborts = %d", fc.aborts)
	}
}

func TestReporter_BudgetAbortsOnNonMasterToo(t *testing.T) {
	r, _, fc := newTestReporter(t, types.SeveritySerious, 1, false)
	r.Report(site(), reporter.NoContext())
	r.Report(site(), reporter.NoContext())
	if fc.aborts != 1 {
		t.Fatalf("suppressed rank must still abort on budget; aborts = %d", fc.aborts)
	}
}

func TestReporter_MasterStreamRouting(t *testing.T) {
	r, buf, _ := newTestReporter(t, types.SeverityInfo, 0, true)
	r.MasterStream(types.WorldCommunicator).Print("master writes")
	if !strings.Contains(buf.String(), "master writes") {
		t.Fatalf("master stream did not reach sink")
	}

	r2, buf2, _ := newTestReporter(t, types.SeverityInfo, 0, false)
	st := r2.MasterStream(types.WorldCommunicator)
	if st != sink.Discard {
		t.Fatalf("non-master must receive the no-op stream")
	}
	st.Print("dropped")
	if buf2.String() != "" {
		t.Fatalf("non-master wrote through master stream: %q", buf2.String())
	}
}

func TestReporter_ExplicitGateSuppresses(t *testing.T) {
	reporter.SetLevel(99)
	defer reporter.SetLevel(0)

	r, buf, _ := newTestReporter(t, types.SeverityWarning, 0, true)
	r.Report(site(), reporter.WithOutput(false))
	if buf.String() != "" {
		t.Fatalf("gated-off report wrote output: %q", buf.String())
	}
}

func TestReporter_DebugLevelGatesInfo(t *testing.T) {
	reporter.SetLevel(0)
	r, buf, _ := newTestReporter(t, types.SeverityInfo, 0, true)

	r.Report(site(), reporter.WithMinLevel(2))
	if buf.String() != "" {
		t.Fatalf("report below debug level wrote output: %q", buf.String())
	}

	reporter.SetLevel(2)
	defer reporter.SetLevel(0)
	r.Report(site(), reporter.WithMinLevel(2))
	if buf.String() == "" {
		t.Fatalf("report at debug level was suppressed")
	}
}

func TestReporter_GateNeverSuppressesSerious(t *testing.T) {
	r, buf, _ := newTestReporter(t, types.SeveritySerious, 0, true)
	r.Report(site(), reporter.WithOutput(false))
	if buf.String() == "" {
		t.Fatalf("SERIOUS report must ignore the display gate")
	}
}

func TestReporter_FieldContextRendered(t *testing.T) {
	d := dictionary.New()
	d.Set("solver", "PCG")
	d.Set("tolerance", 1e-6)

	r, buf, _ := newTestReporter(t, types.SeverityWarning, 0, true)
	r.Report(site(), reporter.WithFields(d))

	out := buf.String()
	if !strings.Contains(out, "solver = PCG;") {
		t.Fatalf("field listing missing: %q", out)
	}
	if !strings.Contains(out, "tolerance") {
		t.Fatalf("field listing missing tolerance: %q", out)
	}
}

func TestReporter_ProvenanceContextRendered(t *testing.T) {
	r, buf, _ := newTestReporter(t, types.SeverityWarning, 0, true)
	r.Report(site(), reporter.WithProvenance("system/fvSolution", 10, 14))

	out := buf.String()
	if !strings.Contains(out, `"system/fvSolution"`) || !strings.Contains(out, "between lines 10 and 14") {
		t.Fatalf("provenance missing: %q", out)
	}

	buf.Reset()
	r.Report(site(), reporter.WithProvenance("stdin", -1, -1))
	if !strings.Contains(buf.String(), `"stdin"`) || strings.Contains(buf.String(), "between lines") {
		t.Fatalf("line-less provenance rendered wrong: %q", buf.String())
	}
}

func TestReporter_StreamAllowsChainedAppend(t *testing.T) {
	r, buf, _ := newTestReporter(t, types.SeverityWarning, 0, true)
	r.Report(site(), reporter.NoContext()).
		Printf("    residual = %g\n", 0.5).
		Println("    continuing anyway")

	out := buf.String()
	if !strings.Contains(out, "residual = 0.5") || !strings.Contains(out, "continuing anyway") {
		t.Fatalf("chained append lost content: %q", out)
	}
}

func TestReporter_ExitHookOverridesCommAbort(t *testing.T) {
	var code int
	buf := sink.NewBuffer()
	fc := &fakeComm{master: true}
	r := reporter.NewReporter(
		context.Background(),
		reporter.ReporterWithTitle("Fatal"),
		reporter.ReporterWithSeverity(types.SeverityFatal),
		reporter.ReporterWithSink(buf),
		reporter.ReporterWithCommunicator(fc),
		reporter.ReporterWithExit(func(n int) { code = n }),
	)
	r.Report(site(), reporter.NoContext())
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if fc.aborts != 0 {
		t.Fatalf("communicator abort called despite exit override")
	}
}

func TestNewReporterFromDictionary_RoundTrip(t *testing.T) {
	d := dictionary.New()
	d.Set("title", "X")
	d.Set("severity", "WARNING")
	d.Set("maxErrors", 5)

	r, err := reporter.NewReporterFromDictionary(context.Background(), d)
	if err != nil {
		t.Fatalf("NewReporterFromDictionary error: %v", err)
	}
	if r.Title() != "X" || r.Severity() != types.SeverityWarning || r.MaxErrors() != 5 {
		t.Fatalf("round trip lost values: %q %v %d", r.Title(), r.Severity(), r.MaxErrors())
	}
}

func TestNewReporterFromDictionary_MaxErrorsOptional(t *testing.T) {
	d := dictionary.New()
	d.Set("title", "X")
	d.Set("severity", "INFO")

	r, err := reporter.NewReporterFromDictionary(context.Background(), d)
	if err != nil {
		t.Fatalf("NewReporterFromDictionary error: %v", err)
	}
	if r.MaxErrors() != 0 {
		t.Fatalf("default MaxErrors = %d, want 0", r.MaxErrors())
	}
}

func TestNewReporterFromDictionary_MissingKey(t *testing.T) {
	d := dictionary.New()
	d.Set("severity", "INFO")

	if _, err := reporter.NewReporterFromDictionary(context.Background(), d); !errors.Is(err, dictionary.ErrMissingKey) {
		t.Fatalf("expected ErrMissingKey, got %v", err)
	}
}

func TestNewReporterFromDictionary_TypeMismatch(t *testing.T) {
	d := dictionary.New()
	d.Set("title", "X")
	d.Set("severity", 12)
	if _, err := reporter.NewReporterFromDictionary(context.Background(), d); !errors.Is(err, dictionary.ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch for non-string severity, got %v", err)
	}

	d2 := dictionary.New()
	d2.Set("title", "X")
	d2.Set("severity", "LOUD")
	if _, err := reporter.NewReporterFromDictionary(context.Background(), d2); !errors.Is(err, dictionary.ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch for unknown severity, got %v", err)
	}

	d3 := dictionary.New()
	d3.Set("title", "X")
	d3.Set("severity", "SERIOUS")
	d3.Set("maxErrors", "lots")
	if _, err := reporter.NewReporterFromDictionary(context.Background(), d3); !errors.Is(err, dictionary.ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch for non-integer maxErrors, got %v", err)
	}
}

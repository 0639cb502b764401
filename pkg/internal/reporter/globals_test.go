package reporter_test

import (
	"context"
	"strings"
	"testing"

	"github.com/joeydtaylor/foghorn/pkg/internal/dictionary"
	"github.com/joeydtaylor/foghorn/pkg/internal/reporter"
	"github.com/joeydtaylor/foghorn/pkg/internal/sink"
	"github.com/joeydtaylor/foghorn/pkg/internal/types"
)

func initGlobals(t *testing.T) *sink.Buffer {
	t.Helper()
	buf := sink.NewBuffer()
	reporter.Init(
		context.Background(),
		reporter.ReporterWithSink(buf),
		reporter.ReporterWithCommunicator(&fakeComm{master: true}),
	)
	t.Cleanup(func() { reporter.Init(context.Background()) })
	return buf
}

func TestGlobals_SeverityAssignment(t *testing.T) {
	initGlobals(t)

	if got := reporter.Info().Severity(); got != types.SeverityInfo {
		t.Fatalf("Info severity = %v", got)
	}
	if got := reporter.Warning().Severity(); got != types.SeverityWarning {
		t.Fatalf("Warning severity = %v", got)
	}
	if got := reporter.SeriousError().Severity(); got != types.SeveritySerious {
		t.Fatalf("SeriousError severity = %v", got)
	}
}

func TestGlobals_LazyDefaultIsSafeBeforeInit(t *testing.T) {
	reporter.Init(context.Background())
	t.Cleanup(func() { reporter.Init(context.Background()) })

	// Must not panic or abort even with no explicit initialization.
	if reporter.Warning() == nil {
		t.Fatalf("expected a default Warning reporter")
	}
}

func TestWarningIn_CapturesCallSite(t *testing.T) {
	buf := initGlobals(t)

	reporter.WarningIn("transportProperties::read")

	out := buf.String()
	if !strings.Contains(out, "transportProperties::read") {
		t.Fatalf("function name missing: %q", out)
	}
	if !strings.Contains(out, "globals_test.go") {
		t.Fatalf("caller file missing: %q", out)
	}
}

func TestWarningIn_EmptyFunctionUsesCapturedName(t *testing.T) {
	buf := initGlobals(t)

	reporter.WarningIn("")

	if !strings.Contains(buf.String(), "TestWarningIn_EmptyFunctionUsesCapturedName") {
		t.Fatalf("captured function name missing: %q", buf.String())
	}
}

func TestIOWarningIn_CarriesProvenance(t *testing.T) {
	buf := initGlobals(t)

	reporter.IOWarningIn("readDict", types.Provenance{Name: "system/controlDict", StartLine: 3, EndLine: 9})

	out := buf.String()
	if !strings.Contains(out, `"system/controlDict"`) || !strings.Contains(out, "between lines 3 and 9") {
		t.Fatalf("provenance missing: %q", out)
	}
}

func TestSeriousErrorIn_Counts(t *testing.T) {
	initGlobals(t)

	before := reporter.SeriousError().ErrorCount()
	reporter.SeriousErrorIn("decomposePar")
	if got := reporter.SeriousError().ErrorCount(); got != before+1 {
		t.Fatalf("ErrorCount = %d, want %d", got, before+1)
	}
}

func TestConfigure_AppliesLevelAndBudget(t *testing.T) {
	initGlobals(t)
	t.Cleanup(func() { reporter.SetLevel(0) })

	d := dictionary.New()
	d.Set("debugLevel", 2)
	d.Set("maxErrors", 10)
	reporter.Configure(d)

	if reporter.Level() != 2 {
		t.Fatalf("Level = %d", reporter.Level())
	}
	if got := reporter.SeriousError().MaxErrors(); got != 10 {
		t.Fatalf("MaxErrors = %d", got)
	}
}

func TestConfigure_AppliesReporterTables(t *testing.T) {
	initGlobals(t)

	d, err := dictionary.FromTOMLString(`
[reporters.seriousError]
maxErrors = 7

[reporters.warning]
maxErrors = 3
`)
	if err != nil {
		t.Fatalf("FromTOMLString error: %v", err)
	}
	reporter.Configure(d)

	if got := reporter.SeriousError().MaxErrors(); got != 7 {
		t.Fatalf("SeriousError MaxErrors = %d, want 7", got)
	}
	if got := reporter.Warning().MaxErrors(); got != 3 {
		t.Fatalf("Warning MaxErrors = %d, want 3", got)
	}
}

func TestConfigure_SkipsUnknownReporterNames(t *testing.T) {
	initGlobals(t)

	d, err := dictionary.FromTOMLString(`
[reporters.mesh]
maxErrors = 9
`)
	if err != nil {
		t.Fatalf("FromTOMLString error: %v", err)
	}
	reporter.Configure(d)

	if got := reporter.SeriousError().MaxErrors(); got != 0 {
		t.Fatalf("unknown table leaked into SeriousError: MaxErrors = %d", got)
	}
}

func TestConfigure_IgnoresAbsentKeys(t *testing.T) {
	initGlobals(t)
	reporter.SetLevel(1)
	t.Cleanup(func() { reporter.SetLevel(0) })

	reporter.Configure(dictionary.New())
	if reporter.Level() != 1 {
		t.Fatalf("Level changed by empty record: %d", reporter.Level())
	}
}

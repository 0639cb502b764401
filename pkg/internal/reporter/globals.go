package reporter

import (
	"context"
	"strings"
	"sync"

	"github.com/joeydtaylor/foghorn/pkg/internal/types"
)

// The three process-wide reporter instances required by convention: one each
// for INFO, WARNING, and SERIOUS reporting. They live behind an explicitly
// initialized access point rather than bare package variables; call sites go
// through Info(), Warning(), and SeriousError().
var (
	globalsMu       sync.Mutex
	infoReporter    *Reporter
	warningReporter *Reporter
	seriousReporter *Reporter
)

// Init constructs the global reporters, applying the shared options (sink,
// communicator, loggers) to each. Calling Init again replaces them, which a
// program does once at startup after its communication layer is up. Programs
// that never call Init get lazily constructed local-communicator defaults, so
// reporting stays safe before the parallel layer is initialized.
func Init(ctx context.Context, shared ...types.Option[*Reporter]) {
	globalsMu.Lock()
	defer globalsMu.Unlock()

	infoReporter = NewReporter(ctx, withBase("Info", types.SeverityInfo, shared)...)
	warningReporter = NewReporter(ctx, withBase("Warning", types.SeverityWarning, shared)...)
	seriousReporter = NewReporter(ctx, withBase("Serious Error", types.SeveritySerious, shared)...)
}

func withBase(title string, severity types.Severity, shared []types.Option[*Reporter]) []types.Option[*Reporter] {
	base := []types.Option[*Reporter]{
		ReporterWithTitle(title),
		ReporterWithSeverity(severity),
	}
	return append(base, shared...)
}

// Info returns the process-wide INFO reporter.
func Info() *Reporter {
	globalsMu.Lock()
	defer globalsMu.Unlock()
	if infoReporter == nil {
		infoReporter = NewReporter(context.Background(), withBase("Info", types.SeverityInfo, nil)...)
	}
	return infoReporter
}

// Warning returns the process-wide WARNING reporter.
func Warning() *Reporter {
	globalsMu.Lock()
	defer globalsMu.Unlock()
	if warningReporter == nil {
		warningReporter = NewReporter(context.Background(), withBase("Warning", types.SeverityWarning, nil)...)
	}
	return warningReporter
}

// SeriousError returns the process-wide SERIOUS reporter.
func SeriousError() *Reporter {
	globalsMu.Lock()
	defer globalsMu.Unlock()
	if seriousReporter == nil {
		seriousReporter = NewReporter(context.Background(), withBase("Serious Error", types.SeveritySerious, nil)...)
	}
	return seriousReporter
}

// Configure applies declarative settings from a configuration record:
// "debugLevel" sets the process-wide debug level and "maxErrors" resets the
// SERIOUS budget. A nested "reporters" table addresses the globals by name,
// so a TOML file can carry per-reporter settings:
//
//	[reporters.seriousError]
//	maxErrors = 7
//
// Absent keys and unknown reporter names leave the current values untouched.
func Configure(dict types.Dictionary) {
	if dict == nil {
		return
	}
	if _, ok := dict.Lookup("debugLevel"); ok {
		SetLevel(dict.IntOr("debugLevel", Level()))
	}
	if _, ok := dict.Lookup("maxErrors"); ok {
		SeriousError().SetMaxErrors(dict.IntOr("maxErrors", SeriousError().MaxErrors()))
	}
	if raw, ok := dict.Lookup("reporters"); ok {
		if tables, ok := raw.(types.Dictionary); ok {
			configureReporters(tables)
		}
	}
}

func configureReporters(tables types.Dictionary) {
	for _, name := range tables.Keys() {
		r := globalByName(name)
		if r == nil {
			continue
		}
		raw, ok := tables.Lookup(name)
		if !ok {
			continue
		}
		settings, ok := raw.(types.Dictionary)
		if !ok {
			continue
		}
		if _, ok := settings.Lookup("maxErrors"); ok {
			r.SetMaxErrors(settings.IntOr("maxErrors", r.MaxErrors()))
		}
	}
}

func globalByName(name string) *Reporter {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "info":
		return Info()
	case "warning":
		return Warning()
	case "seriouserror", "serious":
		return SeriousError()
	default:
		return nil
	}
}

// The entry points below bind a global reporter together with the caller's
// source location, the primary call contract for application code. An empty
// function name keeps the one captured from the stack.

// InfoIn reports an informational message for the named function.
func InfoIn(fn string) types.Stream {
	return Info().Report(namedSite(fn), NoContext())
}

// WarningIn reports a warning for the named function.
func WarningIn(fn string) types.Stream {
	return Warning().Report(namedSite(fn), NoContext())
}

// SeriousErrorIn reports a serious error for the named function.
func SeriousErrorIn(fn string) types.Stream {
	return SeriousError().Report(namedSite(fn), NoContext())
}

// IOInfoIn reports an informational message with an I/O provenance tag.
func IOInfoIn(fn string, prov types.Provenance) types.Stream {
	return Info().Report(namedSite(fn), types.ReportContext{Kind: types.ContextProvenance, Provenance: prov})
}

// IOWarningIn reports a warning with an I/O provenance tag.
func IOWarningIn(fn string, prov types.Provenance) types.Stream {
	return Warning().Report(namedSite(fn), types.ReportContext{Kind: types.ContextProvenance, Provenance: prov})
}

// IOSeriousErrorIn reports a serious error with an I/O provenance tag.
func IOSeriousErrorIn(fn string, prov types.Provenance) types.Stream {
	return SeriousError().Report(namedSite(fn), types.ReportContext{Kind: types.ContextProvenance, Provenance: prov})
}

func namedSite(fn string) types.CallSite {
	site := callerSite(3)
	if fn != "" {
		site.Function = fn
	}
	return site
}

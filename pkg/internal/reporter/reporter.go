// Package reporter implements the severity-classified diagnostic reporting
// component. A Reporter formats a message header with source-location
// context, routes it to the real sink only on the master process, tracks a
// rolling error budget, and converts FATAL reports and exhausted budgets into
// a coordinated termination of the whole computation.
package reporter

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/joeydtaylor/foghorn/pkg/internal/comm"
	"github.com/joeydtaylor/foghorn/pkg/internal/dictionary"
	"github.com/joeydtaylor/foghorn/pkg/internal/sink"
	"github.com/joeydtaylor/foghorn/pkg/internal/types"
	"github.com/joeydtaylor/foghorn/pkg/internal/utils"
)

// abortExitCode is the distinguished status a diagnostic-triggered
// termination exits with.
const abortExitCode = 1

// Reporter is the state-holding diagnostic object. Severity is fixed at
// construction; errorCount only ever grows.
type Reporter struct {
	componentMetadata types.ComponentMetadata

	title      string
	severity   types.Severity
	maxErrors  atomic.Int64
	errorCount atomic.Int64

	comm types.Communicator
	out  types.Sink

	// exit overrides the communicator abort; tests use it to observe
	// termination without dying.
	exit func(int)

	loggers     []types.Logger
	loggersLock sync.Mutex
}

// NewReporter constructs a reporter. Without options it reports at INFO
// severity with an unlimited budget to a stderr console sink on a local
// communicator. Construction performs no I/O and starts no goroutines, so
// ctx is not consulted today; the parameter is reserved for lifecycle
// control, matching the other component constructors.
func NewReporter(ctx context.Context, options ...types.Option[*Reporter]) *Reporter {
	r := &Reporter{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "REPORTER",
		},
		severity: types.SeverityInfo,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.comm == nil {
		r.comm = comm.NewLocal()
	}
	if r.out == nil {
		r.out = sink.NewConsole()
	}
	r.componentMetadata.Name = r.title

	// Remote-initiated aborts must not lose buffered diagnostics.
	if hooked, ok := r.comm.(interface{ OnAbort(func()) }); ok {
		hooked.OnAbort(func() { r.flushAll() })
	}

	return r
}

// NewReporterFromDictionary constructs a reporter from a named-field
// configuration record. The record must carry "title" and "severity";
// "maxErrors" is optional and defaults to 0 (unlimited). Malformed records
// fail immediately.
func NewReporterFromDictionary(ctx context.Context, dict types.Dictionary, options ...types.Option[*Reporter]) (*Reporter, error) {
	title, err := dict.String("title")
	if err != nil {
		return nil, fmt.Errorf("reporter configuration: %w", err)
	}
	sevName, err := dict.String("severity")
	if err != nil {
		return nil, fmt.Errorf("reporter configuration: %w", err)
	}
	severity, ok := types.ParseSeverity(sevName)
	if !ok {
		return nil, fmt.Errorf("reporter configuration: %q: unknown severity %q: %w",
			"severity", sevName, dictionary.ErrTypeMismatch)
	}

	maxErrors := 0
	if _, present := dict.Lookup("maxErrors"); present {
		maxErrors, err = dict.Int("maxErrors")
		if err != nil {
			return nil, fmt.Errorf("reporter configuration: %w", err)
		}
	}

	base := []types.Option[*Reporter]{
		ReporterWithTitle(title),
		ReporterWithSeverity(severity),
		ReporterWithMaxErrors(maxErrors),
	}
	return NewReporter(ctx, append(base, options...)...), nil
}

var _ types.Reporter = (*Reporter)(nil)

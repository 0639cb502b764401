package main

import (
	"context"

	"github.com/joeydtaylor/foghorn/pkg/builder"
)

func main() {
	ctx := context.Background()

	logger := builder.NewLogger(builder.LoggerWithLevel("debug"))

	builder.InitGlobals(
		ctx,
		builder.ReporterWithSink(builder.NewConsoleSink(builder.ConsoleWithColor(true))),
		builder.ReporterWithLogger(logger),
	)

	// Plain informational report with the caller's source location.
	builder.InfoIn("main").Println("    starting transport solver")

	// Warnings carry free-form streamed content after the header.
	builder.WarningIn("readTransportProperties").
		Println("    keyword 'nu' not found, using default").
		Printf("    nu = %g\n", 1e-5)

	// Provenance tags explain where malformed input came from.
	builder.IOWarningIn("readControls", builder.Provenance{
		Name:      "system/controlDict",
		StartLine: 18,
		EndLine:   22,
	}).Println("    deprecated keyword 'writeFormat'")

	// Field sets render as a listing under the header.
	fields := builder.NewDictionary()
	fields.Set("solver", "PCG")
	fields.Set("preconditioner", "DIC")
	builder.Warning().Report(builder.Here(), builder.WithFields(fields)).
		Println("    solver settings fell back to defaults")

	// Debug-gated chatter stays silent until the level is raised.
	builder.Info().Report(builder.Here(), builder.WithMinLevel(2)).
		Println("    this line only appears at debug level >= 2")
	builder.SetDebugLevel(2)
	builder.Info().Report(builder.Here(), builder.WithMinLevel(2)).
		Println("    now visible")
}

// Demonstrates master-only reporting across an SPMD process group. Run it
// under the launcher so every rank gets its wiring from the environment:
//
//	parrun -n 4 -- go run ./example/parallel_example
//
// Only rank 0 prints; the FATAL report raised on the last rank still
// terminates every process through the control plane.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joeydtaylor/foghorn/pkg/builder"
)

func main() {
	ctx := context.Background()

	world, err := builder.NewClusterComm()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer world.Close()

	builder.InitGlobals(
		ctx,
		builder.ReporterWithCommunicator(world),
	)

	// Every rank reports; only the master's header reaches the terminal.
	builder.InfoIn("main").
		Printf("    %d ranks computing\n", world.Size())

	// Suppression is display-only: each rank still runs the same code path.
	builder.WarningIn("checkDecomposition").
		Printf("    processor weights unbalanced\n")

	time.Sleep(200 * time.Millisecond)

	if world.Rank() == world.Size()-1 {
		fatal := builder.NewReporter(
			ctx,
			builder.ReporterWithTitle("Fatal Error"),
			builder.ReporterWithSeverity(builder.SeverityFatal),
			builder.ReporterWithCommunicator(world),
		)
		fatal.Report(builder.Here(), builder.NoContext()).
			Println("    simulated failure on the last rank")
	}

	// Ranks that did not fail park here; the coordinated abort ends them.
	time.Sleep(10 * time.Second)
}

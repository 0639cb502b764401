// Iteratively solves a small diffusion system and funnels solver health
// through the diagnostic reporters: slow convergence raises warnings, and a
// budget-limited SERIOUS reporter turns repeated divergence into a clean
// abort of the run.
package main

import (
	"context"
	"math"

	"github.com/joeydtaylor/foghorn/pkg/builder"
	"gonum.org/v1/gonum/mat"
)

const (
	maxIterations = 50
	tolerance     = 1e-8
)

func main() {
	ctx := context.Background()

	builder.InitGlobals(
		ctx,
		builder.ReporterWithSink(builder.NewConsoleSink(builder.ConsoleWithColor(true))),
	)

	// Divergence is tolerated twice; the third strike ends the run.
	diverged := builder.NewReporter(
		ctx,
		builder.ReporterWithTitle("Solver Divergence"),
		builder.ReporterWithSeverity(builder.SeveritySerious),
		builder.ReporterWithMaxErrors(2),
	)

	a := mat.NewDense(3, 3, []float64{
		4, -1, 0,
		-1, 4, -1,
		0, -1, 4,
	})
	b := []float64{15, 10, 10}

	x := jacobi(a, b, diverged)

	builder.InfoIn("main").
		Printf("    solution = [%.4f %.4f %.4f]\n", x[0], x[1], x[2])
}

// jacobi runs fixed-point iteration, reporting residual stalls as warnings
// and divergence through the budgeted reporter.
func jacobi(a *mat.Dense, b []float64, diverged builder.Reporter) []float64 {
	n := len(b)
	x := make([]float64, n)
	next := make([]float64, n)
	prevResidual := math.Inf(1)

	for iter := 0; iter < maxIterations; iter++ {
		for i := 0; i < n; i++ {
			sum := b[i]
			for j := 0; j < n; j++ {
				if j != i {
					sum -= a.At(i, j) * x[j]
				}
			}
			next[i] = sum / a.At(i, i)
		}
		copy(x, next)

		residual := residualNorm(a, x, b)
		if residual < tolerance {
			builder.InfoIn("jacobi").
				Printf("    converged in %d iterations, residual %.3e\n", iter+1, residual)
			return x
		}
		if residual > prevResidual {
			diverged.Report(builder.Here(), builder.NoContext()).
				Printf("    residual rose from %.3e to %.3e at iteration %d\n", prevResidual, residual, iter+1)
		} else if residual > prevResidual*0.99 {
			builder.WarningIn("jacobi").
				Printf("    residual stalling at %.3e (iteration %d)\n", residual, iter+1)
		}
		prevResidual = residual
	}

	builder.WarningIn("jacobi").
		Printf("    stopped after %d iterations, residual %.3e\n", maxIterations, prevResidual)
	return x
}

func residualNorm(a *mat.Dense, x, b []float64) float64 {
	n := len(b)
	xv := mat.NewVecDense(n, x)
	var ax mat.VecDense
	ax.MulVec(a, xv)

	var sum float64
	for i := 0; i < n; i++ {
		d := ax.AtVec(i) - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

package getme

import (
	"fmt"
	"io"

	"github.com/meshforge/blocksmoother/InputParameters"
	"github.com/meshforge/blocksmoother/blockmesh"
)

// Result summarizes one Run: the connectivity index built for it (useful to
// downstream diagnostics/export) and the terminal state of the sequential
// phase.
type Result struct {
	Connectivity *ConnectivityIndex
	Sequential   SequentialResult
}

// Run builds the connectivity index once, then runs the simultaneous phase
// followed by the sequential phase against mesh, per spec.md 4.6. Per
// spec.md 9 Open Question 1, both phases are gated on smoother being
// non-nil: a caller with no "smoother" sub-dictionary should not call Run at
// all rather than run either phase with undefined parameters.
func Run(mesh blockmesh.BlockMesh, smoother *InputParameters.SmootherParameters, log io.Writer) (Result, error) {
	if smoother == nil {
		return Result{}, fmt.Errorf("getme: Run requires a non-nil smoother configuration")
	}

	ci := BuildConnectivityIndex(mesh)

	sim := SimultaneousSmoother{Params: smoother, Log: log}
	sim.Run(mesh, ci)

	seq := SequentialSmoother{Params: smoother, Log: log, LogCadence: 25}
	seqResult := seq.Run(mesh, ci)

	if log != nil {
		fmt.Fprintf(log, "Sequential GETMe smoothing in %d iterations, minimal quality is: %g\n",
			seqResult.Iterations, seqResult.OldMinQual)
	}

	return Result{Connectivity: ci, Sequential: seqResult}, nil
}

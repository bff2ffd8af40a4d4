package getme

import (
	"fmt"
	"io"

	"github.com/meshforge/blocksmoother/InputParameters"
	"github.com/meshforge/blocksmoother/blockmesh"
)

// noEffectTermination is the fixed constant of spec.md 4.5: the sequential
// phase halts once noEffStep reaches this many consecutive non-improving
// steps.
const noEffectTermination = 10

// SequentialSmoother runs the sequential GETMe phase of spec.md 4.5: it
// repeatedly targets the cell at the head of an ordered quality index,
// transforms it, evaluates the impact set, and either reverts (invalid) or
// accepts and re-prioritizes (penalized).
type SequentialSmoother struct {
	Params *InputParameters.SmootherParameters
	Log    io.Writer

	LogCadence int // report every N steps; 0 means every step
}

// SequentialResult reports the terminal state of a sequential run, useful
// for tests and diagnostics.
type SequentialResult struct {
	Iterations  int
	OldMinQual  float64
}

// Run builds the initial priority state from mesh's current cell qualities
// and drives the sequential phase to stagnation.
func (s *SequentialSmoother) Run(mesh blockmesh.BlockMesh, ci *ConnectivityIndex) SequentialResult {
	cells := mesh.Cells()
	qi := newQualityIndex(s.Log)
	for cellID, cell := range cells {
		q := MeanRatio(cell.Points(mesh.Points()))
		qi.insert(blockmesh.CellId(cellID), q)
	}

	target, oldMinQual, ok := qi.min()
	if !ok {
		return SequentialResult{}
	}

	previous := blockmesh.CellId(-1)
	noEffStep := 0
	iterations := 0

	for noEffStep < noEffectTermination {
		cell := cells[target]
		h := cell.Points(mesh.Points())
		hp := Transform(h, s.Params.SequentialTransformationParam, s.Params.SequentialRelaxationParam)

		for i, pid := range cell.PointIds() {
			mesh.SetPoint(pid, hp[i])
		}

		impact := ci.ImpactSet(cell)
		lower := 1.0
		var nQual float64
		nQualSet := false
		for c := range impact {
			q := MeanRatio(cells[c].Points(mesh.Points()))
			if q < lower {
				lower = q
			}
			if c == target {
				nQual = q
				nQualSet = true
			}
		}
		if !nQualSet {
			// target always belongs to its own impact set (spec.md 9,
			// Open Question 3); this would indicate a broken connectivity
			// index.
			panic("getme: target cell missing from its own impact set")
		}

		var penalty float64
		if lower < Epsilon {
			penalty = s.Params.DeltaPiI
			for i, pid := range cell.PointIds() {
				mesh.SetPoint(pid, h[i])
			}
		} else {
			if previous == target {
				penalty = s.Params.DeltaPiR
			} else {
				penalty = s.Params.DeltaPiS
			}
			for c := range impact {
				if c == target {
					qi.refresh(c, nQual+penalty)
				} else {
					// Non-target impacted cells keep their stored key —
					// deliberately lagging, see spec.md 9 Open Question 2.
					qi.refresh(c, qi.cellQuality[c])
				}
			}
		}

		_, newMinQual, _ := qi.min()
		if newMinQual >= oldMinQual {
			noEffStep = 0
		} else {
			noEffStep++
		}

		if s.Log != nil && (s.LogCadence <= 1 || iterations%s.LogCadence == 0) {
			fmt.Fprintf(s.Log, "Sequential step %d: target=%d penalty=%g newMinQual=%g noEffStep=%d\n",
				iterations, target, penalty, newMinQual, noEffStep)
		}

		oldMinQual = newMinQual + s.Params.SequentialMinimalChange
		previous = target
		target, _, ok = qi.min()
		if !ok {
			break
		}
		iterations++
	}

	return SequentialResult{Iterations: iterations, OldMinQual: oldMinQual}
}

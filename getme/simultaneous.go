package getme

import (
	"fmt"
	"io"
	"math"

	"github.com/meshforge/blocksmoother/InputParameters"
	"github.com/meshforge/blocksmoother/blockmesh"
)

// SimultaneousSmoother runs the simultaneous GETMe phase of spec.md 4.4:
// every iteration transforms every cell, then moves every mobile point to a
// weighted average of its incident cells' transformed opinions, reverting
// any newly-induced invalid cells.
type SimultaneousSmoother struct {
	Params *InputParameters.SmootherParameters
	Log    io.Writer
}

// Run executes Params.MaxSimultaneousIter iterations against mesh, using ci
// (built once, before either smoothing phase runs) to find incident cells
// and mobile points.
func (s *SimultaneousSmoother) Run(mesh blockmesh.BlockMesh, ci *ConnectivityIndex) {
	cells := mesh.Cells()
	for iter := 0; iter < s.Params.MaxSimultaneousIter; iter++ {
		s.runOneIteration(mesh, ci, cells, iter)
	}
}

func (s *SimultaneousSmoother) runOneIteration(
	mesh blockmesh.BlockMesh,
	ci *ConnectivityIndex,
	cells []blockmesh.Cell,
	iter int,
) {
	points := mesh.Points()

	cq := make([]float64, len(cells))
	invalid := 0
	qAmin := 1.0
	qAavg := 0.0

	// pp[p] accumulates each incident cell's transformed opinion of where p
	// should move, in the same order as ci.IncidentCells[p].
	pp := make(map[blockmesh.PointId][]blockmesh.Point, len(ci.MobilePoints))

	for cellID, cell := range cells {
		h := cell.Points(points)
		cq[cellID] = MeanRatio(h)

		if cq[cellID] < Epsilon {
			invalid++
		}
		if cq[cellID] < qAmin {
			qAmin = cq[cellID]
		}
		qAavg += cq[cellID]

		cor := s.Params.FactorQualityMin + (s.Params.FactorQualityMax-s.Params.FactorQualityMin)*(1-cq[cellID])
		hp := Transform(h, cor, s.Params.Relaxation)

		for i, pid := range cell.PointIds() {
			pp[pid] = append(pp[pid], hp[i])
		}
	}
	qAavg = qAavg / float64(len(cells))

	if s.Log != nil {
		fmt.Fprintf(s.Log, "Iteration: %d Avg quality: %g Min quality: %g Invalid cells: %d\n",
			iter, qAavg, qAmin, invalid)
	}

	pOld := make([]blockmesh.Point, len(points))
	copy(pOld, points)

	for _, pid := range ci.MobilePoints {
		incident := ci.IncidentCells[pid]
		opinions := pp[pid]

		wj := 0.0
		var wp blockmesh.Point
		for k, cid := range incident {
			w := math.Pow(1-cq[cid], s.Params.AverageMultipleCells)
			wj += w
			wp = addScaled(wp, opinions[k], w)
		}
		n := float64(len(incident))
		wj /= n
		wp = scale(wp, 1/n)

		mesh.SetPoint(pid, scale(wp, 1/(wj+Epsilon)))
	}

	s.revertNewlyInvalid(mesh, ci, cells, cq, invalid, pOld)
}

// revertNewlyInvalid implements the conservative revert loop of spec.md 4.4
// step 5: only invalidity newly introduced by this iteration's point update
// is rolled back; cells that were already invalid before the iteration are
// left alone so the mesh doesn't freeze.
func (s *SimultaneousSmoother) revertNewlyInvalid(
	mesh blockmesh.BlockMesh,
	ci *ConnectivityIndex,
	cells []blockmesh.Cell,
	cq []float64,
	invalid int,
	pOld []blockmesh.Point,
) {
	for {
		reverts := pointsToRevert(mesh, cells)
		if len(reverts) <= invalid {
			return
		}
		for pid := range reverts {
			mesh.SetPoint(pid, pOld[pid])
		}
		if s.Log != nil {
			fmt.Fprintf(s.Log, "   Reverted %d points\n", len(reverts))
		}
	}
}

// pointsToRevert returns every point belonging to a currently-invalid cell.
func pointsToRevert(mesh blockmesh.BlockMesh, cells []blockmesh.Cell) map[blockmesh.PointId]struct{} {
	points := mesh.Points()
	out := make(map[blockmesh.PointId]struct{})
	for _, cell := range cells {
		if MeanRatio(cell.Points(points)) < Epsilon {
			for _, pid := range cell.PointIds() {
				out[pid] = struct{}{}
			}
		}
	}
	return out
}

func addScaled(v, add blockmesh.Point, w float64) blockmesh.Point {
	return blockmesh.Point{
		X: v.X + add.X*w,
		Y: v.Y + add.Y*w,
		Z: v.Z + add.Z*w,
	}
}

func scale(v blockmesh.Point, s float64) blockmesh.Point {
	return blockmesh.Point{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

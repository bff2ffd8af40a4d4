package getme

import (
	"fmt"
	"io"

	"github.com/james-bowman/sparse"
	"github.com/meshforge/blocksmoother/blockmesh"
	"gonum.org/v1/gonum/floats"
)

// Statistics summarizes cell quality across a mesh, the kind of report a
// caller would print after each smoothing phase or diff before/after.
type Statistics struct {
	NumCells    int
	NumInvalid  int
	MinQuality  float64
	MaxQuality  float64
	MeanQuality float64
}

// ComputeStatistics evaluates MeanRatio for every cell of mesh and reduces
// it to a Statistics summary.
func ComputeStatistics(mesh blockmesh.BlockMesh) Statistics {
	points := mesh.Points()
	cells := mesh.Cells()
	if len(cells) == 0 {
		return Statistics{}
	}

	stats := Statistics{NumCells: len(cells), MinQuality: 1.0}
	qualities := make([]float64, len(cells))
	for i, cell := range cells {
		q := MeanRatio(cell.Points(points))
		qualities[i] = q
		if q < Epsilon {
			stats.NumInvalid++
		}
		if q < stats.MinQuality {
			stats.MinQuality = q
		}
		if q > stats.MaxQuality {
			stats.MaxQuality = q
		}
	}
	stats.MeanQuality = floats.Sum(qualities) / float64(len(qualities))
	return stats
}

// Print writes a human-readable dump of stats, in the style of
// InputParameters.SmootherParameters.Print.
func (s Statistics) Print(w io.Writer) {
	fmt.Fprintf(w, "%8d\t\t\t= numCells\n", s.NumCells)
	fmt.Fprintf(w, "%8d\t\t\t= numInvalid\n", s.NumInvalid)
	fmt.Fprintf(w, "%8.5f\t\t= minQuality\n", s.MinQuality)
	fmt.Fprintf(w, "%8.5f\t\t= maxQuality\n", s.MaxQuality)
	fmt.Fprintf(w, "%8.5f\t\t= meanQuality\n", s.MeanQuality)
}

// PointCellIncidence builds the point x cell incidence matrix of mesh as a
// sparse DOK matrix: entry (p, c) is 1 if point p belongs to cell c. This is
// the same point-to-element bookkeeping ConnectivityIndex keeps as Go maps,
// exposed instead as a matrix so it composes with gonum/sparse-based
// diagnostics (e.g. counting cells per point via row sums, or detecting
// isolated points via empty rows).
func PointCellIncidence(mesh blockmesh.BlockMesh) *sparse.DOK {
	points := mesh.Points()
	cells := mesh.Cells()
	m := sparse.NewDOK(len(points), len(cells))
	for cellID, cell := range cells {
		for _, pid := range cell.PointIds() {
			m.Set(int(pid), cellID, 1)
		}
	}
	return m
}

// CellsPerPoint returns, for every point, the number of cells incident to
// it, derived from the incidence matrix's row sums.
func CellsPerPoint(mesh blockmesh.BlockMesh) []int {
	m := PointCellIncidence(mesh)
	nr, nc := m.Dims()
	out := make([]int, nr)
	for i := 0; i < nr; i++ {
		count := 0
		for j := 0; j < nc; j++ {
			if m.At(i, j) != 0 {
				count++
			}
		}
		out[i] = count
	}
	return out
}

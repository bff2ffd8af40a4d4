package getme

import (
	"bytes"
	"testing"

	"github.com/meshforge/blocksmoother/blockmesh"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestComputeStatisticsUnitCube(t *testing.T) {
	pts := blockmesh.UnitCube()
	cell := blockmesh.NewCell([8]blockmesh.PointId{0, 1, 2, 3, 4, 5, 6, 7})
	mesh := blockmesh.NewMesh(pts[:], []blockmesh.Cell{cell}, nil)

	stats := ComputeStatistics(mesh)
	require.Equal(t, 1, stats.NumCells)
	require.Equal(t, 0, stats.NumInvalid)
	require.InDelta(t, 1.0, stats.MinQuality, 1e-12)
	require.InDelta(t, 1.0, stats.MaxQuality, 1e-12)
	require.InDelta(t, 1.0, stats.MeanQuality, 1e-12)
}

func TestComputeStatisticsEmptyMesh(t *testing.T) {
	mesh := blockmesh.NewMesh(nil, nil, nil)
	stats := ComputeStatistics(mesh)
	require.Equal(t, Statistics{}, stats)
}

func TestStatisticsPrint(t *testing.T) {
	pts := blockmesh.UnitCube()
	cell := blockmesh.NewCell([8]blockmesh.PointId{0, 1, 2, 3, 4, 5, 6, 7})
	mesh := blockmesh.NewMesh(pts[:], []blockmesh.Cell{cell}, nil)
	stats := ComputeStatistics(mesh)

	var buf bytes.Buffer
	stats.Print(&buf)
	require.Contains(t, buf.String(), "numCells")
	require.Contains(t, buf.String(), "meanQuality")
}

func TestPointCellIncidenceTwoCubes(t *testing.T) {
	base := blockmesh.UnitCube()
	pts := make([]blockmesh.Point, 12)
	copy(pts[0:8], base[:])
	for i := 0; i < 4; i++ {
		pts[8+i] = r3.Add(base[i], r3.Vec{Z: 2})
	}
	cellA := blockmesh.NewCell([8]blockmesh.PointId{0, 1, 2, 3, 4, 5, 6, 7})
	cellB := blockmesh.NewCell([8]blockmesh.PointId{4, 5, 6, 7, 8, 9, 10, 11})
	mesh := blockmesh.NewMesh(pts, []blockmesh.Cell{cellA, cellB}, nil)

	m := PointCellIncidence(mesh)
	nr, nc := m.Dims()
	require.Equal(t, 12, nr)
	require.Equal(t, 2, nc)
	require.Equal(t, 1.0, m.At(4, 0))
	require.Equal(t, 1.0, m.At(4, 1))
	require.Equal(t, 0.0, m.At(0, 1))

	counts := CellsPerPoint(mesh)
	require.Equal(t, 1, counts[0])
	require.Equal(t, 2, counts[4])
	require.Equal(t, 1, counts[8])
}

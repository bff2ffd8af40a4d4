package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/meshforge/blocksmoother/blockmesh"
	"github.com/stretchr/testify/require"
)

func TestWireframeGLBWritesFile(t *testing.T) {
	pts := blockmesh.UnitCube()
	cell := blockmesh.NewCell([8]blockmesh.PointId{0, 1, 2, 3, 4, 5, 6, 7})
	mesh := blockmesh.NewMesh(pts[:], []blockmesh.Cell{cell}, nil)

	out := filepath.Join(t.TempDir(), "cube.glb")
	err := WireframeGLB(mesh, out)
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestWireframeGLBWritesTwoCubesSharingAFace(t *testing.T) {
	base := blockmesh.UnitCube()
	pts := make([]blockmesh.Point, 12)
	copy(pts[0:8], base[:])
	for i := 0; i < 4; i++ {
		p := base[i]
		p.Z += 2
		pts[8+i] = p
	}
	cellA := blockmesh.NewCell([8]blockmesh.PointId{0, 1, 2, 3, 4, 5, 6, 7})
	cellB := blockmesh.NewCell([8]blockmesh.PointId{4, 5, 6, 7, 8, 9, 10, 11})
	mesh := blockmesh.NewMesh(pts, []blockmesh.Cell{cellA, cellB}, nil)

	out := filepath.Join(t.TempDir(), "twocubes.glb")
	require.NoError(t, WireframeGLB(mesh, out))
}

package getme

import (
	"math"
	"testing"

	"github.com/meshforge/blocksmoother/blockmesh"
	"github.com/stretchr/testify/require"
)

// Invariant 6: zero relaxation is a no-op regardless of cor.
func TestTransformZeroAlphaIsIdentity(t *testing.T) {
	h := blockmesh.UnitCube()
	for _, cor := range []float64{0.0, 0.2, 1.0, 5.0} {
		out := Transform(h, cor, 0)
		for i := range h {
			require.InDelta(t, h[i].X, out[i].X, 1e-12)
			require.InDelta(t, h[i].Y, out[i].Y, 1e-12)
			require.InDelta(t, h[i].Z, out[i].Z, 1e-12)
		}
	}
}

// Invariant 7: an already-cubic hex is close to a fixed point of Transform
// for any alpha and cor, since its dual octahedron is already regular.
func TestTransformCubeIsNearFixedPoint(t *testing.T) {
	h := blockmesh.UnitCube()
	for _, cor := range []float64{0.1, 0.3, 0.7} {
		for _, alpha := range []float64{0.25, 1.0} {
			out := Transform(h, cor, alpha)
			for i := range h {
				require.InDelta(t, h[i].X, out[i].X, 1e-9)
				require.InDelta(t, h[i].Y, out[i].Y, 1e-9)
				require.InDelta(t, h[i].Z, out[i].Z, 1e-9)
			}
		}
	}
}

// Transform must never panic on a fully collapsed hex, even though the
// floating point result is undefined (0/0) in that case.
func TestTransformCollapsedHexDoesNotPanic(t *testing.T) {
	var h [8]blockmesh.Point
	require.NotPanics(t, func() {
		Transform(h, 0.3, 1.0)
	})
}

// A hex slightly perturbed off a perfect cube keeps a well-defined mean
// edge length, so Transform returns a result with no NaN components.
func TestTransformNearCubeStaysFinite(t *testing.T) {
	h := blockmesh.UnitCube()
	h[6].X += 0.01
	out := Transform(h, 0.3, 1.0)
	for _, p := range out {
		require.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Z))
	}
}

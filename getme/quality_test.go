package getme

import (
	"testing"

	"github.com/meshforge/blocksmoother/blockmesh"
	"github.com/stretchr/testify/require"
)

// Invariant 1: a unit cube in canonical brick order has mean-ratio quality
// exactly 1.
func TestMeanRatioUnitCubeIsOne(t *testing.T) {
	h := blockmesh.UnitCube()
	require.InDelta(t, 1.0, MeanRatio(h), 1e-12)
}

// Invariant 2: an inverted cell (top and bottom faces swapped, so every
// determinant flips sign) has mean-ratio quality 0.
func TestMeanRatioInvertedCubeIsZero(t *testing.T) {
	h := blockmesh.UnitCube()
	inverted := [8]blockmesh.Point{h[4], h[5], h[6], h[7], h[0], h[1], h[2], h[3]}
	require.Equal(t, 0.0, MeanRatio(inverted))
}

// A uniformly-scaled cube is still a perfect hex: the mean-ratio quality
// kernel is scale invariant.
func TestMeanRatioScaledCubeIsOne(t *testing.T) {
	h := blockmesh.UnitCube()
	for i := range h {
		h[i].X *= 10
		h[i].Y *= 10
		h[i].Z *= 10
	}
	require.InDelta(t, 1.0, MeanRatio(h), 1e-9)
}

// A degenerate cell (two coincident vertices collapse a corner to zero
// volume) is total: MeanRatio must not panic and must report a quality
// below 1.
func TestMeanRatioDegenerateDoesNotPanic(t *testing.T) {
	h := blockmesh.UnitCube()
	h[0] = h[1]
	require.NotPanics(t, func() {
		q := MeanRatio(h)
		require.Less(t, q, 1.0)
	})
}

// Package getme implements the hex-cell quality evaluation and GETMe-family
// smoother described in spec.md: a mean-ratio quality kernel, a
// dual-octahedron geometric transform, a connectivity index, and the
// simultaneous and sequential smoothers built on top of them.
package getme

import (
	"github.com/meshforge/blocksmoother/blockmesh"
	"github.com/meshforge/blocksmoother/utils"
)

// Epsilon is the "very small positive threshold" (VSMALL in the original)
// used throughout to treat a quantity as numerically zero: inverted cells,
// zero-weight point averages, and float key equality in the priority index.
const Epsilon = 1e-12

// qualityV1, qualityV2, qualityV3 are the fixed neighbour-index tables of
// spec.md 4.1, one entry per hex vertex k.
var (
	qualityV1 = [8]int{3, 0, 1, 2, 7, 4, 5, 6}
	qualityV2 = [8]int{4, 5, 6, 7, 5, 6, 7, 4}
	qualityV3 = [8]int{1, 2, 3, 0, 0, 1, 2, 3}
)

// MeanRatio returns the mean-ratio quality of a hex given its 8 ordered
// vertices. The result lies in [0, 1] for valid hexes; it returns 0 for
// fully inverted cells. Total function, never fails.
func MeanRatio(h [8]blockmesh.Point) float64 {
	var sum float64
	for k := 0; k < 8; k++ {
		p1 := r3Sub(h[qualityV1[k]], h[k])
		p2 := r3Sub(h[qualityV2[k]], h[k])
		p3 := r3Sub(h[qualityV3[k]], h[k])

		sigma := utils.Det3(p1, p2, p3)
		if sigma > Epsilon {
			magSqr := utils.MagSqr(p1, p2, p3)
			sum += 3 * pow23(sigma) / magSqr
		}
	}
	return sum / 8.0
}

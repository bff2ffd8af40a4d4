package getme

import (
	"math"

	"github.com/meshforge/blocksmoother/blockmesh"
	"github.com/meshforge/blocksmoother/utils"
	"gonum.org/v1/gonum/spatial/r3"
)

// octahedron vertex groups, spec.md 4.2 step 1: oct[i] is the average of
// hex vertices octGroups[i].
var octGroups = [6][4]int{
	{0, 1, 2, 3},
	{0, 1, 4, 5},
	{1, 2, 5, 6},
	{2, 3, 6, 7},
	{0, 3, 4, 7},
	{4, 5, 6, 7},
}

// faceTriples names, per hex vertex, the three octahedron vertices whose
// centroid and cross-product normal drive that vertex's transformed
// position (spec.md 4.2 steps 2-3).
var faceTriples = [8][3]int{
	{0, 1, 4},
	{0, 2, 1},
	{0, 3, 2},
	{0, 4, 3},
	{5, 4, 1},
	{5, 1, 2},
	{5, 2, 3},
	{5, 3, 4},
}

// hexEdgeFrom, hexEdgeTo are the 12 canonical hex edges, spec.md 4.2 step 5:
// 4 around face {0,1,2,3}, 4 around face {4,5,6,7}, 4 parallel edges.
var (
	hexEdgeFrom = [12]int{0, 1, 2, 3, 4, 5, 6, 7, 0, 1, 2, 3}
	hexEdgeTo   = [12]int{1, 2, 3, 0, 5, 6, 7, 4, 4, 5, 6, 7}
)

// Transform applies the dual-octahedron geometric transformation to a hex,
// per spec.md 4.2. cor is the per-cell transform strength, alpha the
// relaxation factor; Transform(h, cor, 0) == h for all cor.
func Transform(h [8]blockmesh.Point, cor, alpha float64) [8]blockmesh.Point {
	var oct [6]r3.Vec
	for i, g := range octGroups {
		oct[i] = utils.Mean(h[g[0]], h[g[1]], h[g[2]], h[g[3]])
	}

	var centroid, normal [8]r3.Vec
	for i, tri := range faceTriples {
		a, b, c := oct[tri[0]], oct[tri[1]], oct[tri[2]]
		centroid[i] = utils.Mean(a, b, c)
		normal[i] = r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
	}

	var hp [8]blockmesh.Point
	for k := 0; k < 8; k++ {
		nmag := r3.Norm(normal[k])
		hp[k] = r3.Add(centroid[k], r3.Scale(cor/math.Sqrt(nmag), normal[k]))
	}

	// Re-scale hp to preserve the mean edge magnitude of h.
	var meanEdgeH, meanEdgeHp r3.Vec
	for e := 0; e < 12; e++ {
		meanEdgeH = r3.Add(meanEdgeH, r3.Sub(h[hexEdgeFrom[e]], h[hexEdgeTo[e]]))
		meanEdgeHp = r3.Add(meanEdgeHp, r3.Sub(hp[hexEdgeFrom[e]], hp[hexEdgeTo[e]]))
	}
	meanEdgeH = r3.Scale(1.0/12.0, meanEdgeH)
	meanEdgeHp = r3.Scale(1.0/12.0, meanEdgeHp)

	magHp := r3.Norm(meanEdgeHp)
	if magHp < Epsilon {
		return h
	}
	scale := r3.Norm(meanEdgeH) / magHp

	var centroidHp r3.Vec
	for _, p := range hp {
		centroidHp = r3.Add(centroidHp, p)
	}
	centroidHp = r3.Scale(1.0/8.0, centroidHp)

	var out [8]blockmesh.Point
	for k := 0; k < 8; k++ {
		hs := r3.Add(centroidHp, r3.Scale(scale, r3.Sub(hp[k], centroidHp)))
		out[k] = r3.Add(r3.Scale(1-alpha, h[k]), r3.Scale(alpha, hs))
	}
	return out
}

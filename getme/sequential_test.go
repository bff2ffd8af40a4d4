package getme

import (
	"testing"

	"github.com/meshforge/blocksmoother/InputParameters"
	"github.com/meshforge/blocksmoother/blockmesh"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// buildIsolatedSkewedCell returns a single-cell mesh (no patches, all
// mobile) whose vertex 0 is displaced, giving a quality strictly below 1.
func buildIsolatedSkewedCell(t *testing.T, disp r3.Vec) *blockmesh.Mesh {
	t.Helper()
	pts := blockmesh.UnitCube()
	pts[0] = r3.Add(pts[0], disp)
	cell := blockmesh.NewCell([8]blockmesh.PointId{0, 1, 2, 3, 4, 5, 6, 7})
	return blockmesh.NewMesh(pts[:], []blockmesh.Cell{cell}, nil)
}

// S6: a mesh where any transform on the worst cell produces an invalid
// result never mutates the priority map. The no-effect counter only starts
// advancing once oldMinQual has been bumped past the target's original
// quality by SequentialMinimalChange (pass 1), so noEffStep reaches
// noEffectTermination on pass noEffectTermination+1, one more than the
// no-effect-step threshold itself.
func TestScenarioS6Stagnation(t *testing.T) {
	// An inverted cell: the unit cube with top and bottom faces swapped, so
	// every corner determinant is negative and its quality is 0. With a small
	// transformation parameter the transformed hex is still an inverted cube,
	// so the sequential phase always takes the invalid branch.
	h := blockmesh.UnitCube()
	inverted := [8]blockmesh.Point{h[4], h[5], h[6], h[7], h[0], h[1], h[2], h[3]}
	cell := blockmesh.NewCell([8]blockmesh.PointId{0, 1, 2, 3, 4, 5, 6, 7})
	mesh := blockmesh.NewMesh(inverted[:], []blockmesh.Cell{cell}, nil)
	ci := BuildConnectivityIndex(mesh)

	params := &InputParameters.SmootherParameters{
		SequentialTransformationParam: 0.1,
		SequentialRelaxationParam:     1.0,
		SequentialMinimalChange:       0.01,
		DeltaPiI:                      0.1,
		DeltaPiR:                      0.3,
		DeltaPiS:                      0.2,
	}
	sm := SequentialSmoother{Params: params}
	before := append([]blockmesh.Point(nil), mesh.Points()...)
	result := sm.Run(mesh, ci)

	require.Equal(t, noEffectTermination+1, result.Iterations)
	for i, p := range mesh.Points() {
		require.Equal(t, before[i], p)
	}
}

// Invariant 4: on the invalid branch, target's points are restored exactly.
func TestInvariantInvalidBranchRevertsExactly(t *testing.T) {
	// Inverted cube (top and bottom faces swapped): every step of the
	// sequential phase takes the invalid branch, as in TestScenarioS6Stagnation.
	h := blockmesh.UnitCube()
	inverted := [8]blockmesh.Point{h[4], h[5], h[6], h[7], h[0], h[1], h[2], h[3]}
	cell := blockmesh.NewCell([8]blockmesh.PointId{0, 1, 2, 3, 4, 5, 6, 7})
	mesh := blockmesh.NewMesh(inverted[:], []blockmesh.Cell{cell}, nil)
	ci := BuildConnectivityIndex(mesh)
	before := append([]blockmesh.Point(nil), mesh.Points()...)

	params := &InputParameters.SmootherParameters{
		SequentialTransformationParam: 0.1,
		SequentialRelaxationParam:     1.0,
		SequentialMinimalChange:       0.01,
		DeltaPiI:                      0.1,
		DeltaPiR:                      0.3,
		DeltaPiS:                      0.2,
	}
	sm := SequentialSmoother{Params: params}
	sm.Run(mesh, ci)

	for i, p := range mesh.Points() {
		require.Equal(t, before[i], p)
	}
}

// S5 / Open Question 2: an accepted transform buries the just-improved cell
// behind a penalty, and non-target impacted cells keep their lagging key.
func TestSequentialLaggingKeyAndPenaltyOrdering(t *testing.T) {
	qi := newQualityIndex(nil)
	qi.insert(0, 0.2)
	qi.insert(1, 0.5)
	qi.insert(2, 0.8)

	deltaPiS := 0.2
	nQual := 0.7
	// Cell 0 is the accepted target; cell 1 is impacted but not the target.
	qi.refresh(0, nQual+deltaPiS)
	qi.refresh(1, qi.cellQuality[1])

	target, q, ok := qi.min()
	require.True(t, ok)
	require.Equal(t, blockmesh.CellId(1), target)
	require.Equal(t, 0.5, q)
	// Cell 1's stored key is untouched even though it was "impacted".
	require.Equal(t, 0.5, qi.cellQuality[1])
}

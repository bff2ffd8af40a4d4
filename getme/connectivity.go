package getme

import (
	"github.com/meshforge/blocksmoother/blockmesh"
)

// ConnectivityIndex is built once from a BlockMesh view and is immutable
// thereafter (spec.md 3, 4.3).
type ConnectivityIndex struct {
	// IncidentCells[p] is the ordered sequence of cells touching point p,
	// used for weighted averaging. Duplicates are preserved if a point
	// appears twice in one cell.
	IncidentCells map[blockmesh.PointId][]blockmesh.CellId

	// IncidentCellSet[p] is the set of cells touching point p, used for
	// impact propagation.
	IncidentCellSet map[blockmesh.PointId]map[blockmesh.CellId]struct{}

	// FixedPoints is the union of all patch-face points.
	FixedPoints map[blockmesh.PointId]struct{}

	// MobilePoints is all points minus FixedPoints, in ascending PointId
	// order for deterministic iteration.
	MobilePoints []blockmesh.PointId
}

// BuildConnectivityIndex scans every cell and patch of mesh once and
// returns the resulting index.
func BuildConnectivityIndex(mesh blockmesh.BlockMesh) *ConnectivityIndex {
	points := mesh.Points()
	cells := mesh.Cells()

	ci := &ConnectivityIndex{
		IncidentCells:   make(map[blockmesh.PointId][]blockmesh.CellId, len(points)),
		IncidentCellSet: make(map[blockmesh.PointId]map[blockmesh.CellId]struct{}, len(points)),
		FixedPoints:     make(map[blockmesh.PointId]struct{}),
	}

	for cellID, cell := range cells {
		cid := blockmesh.CellId(cellID)
		for _, pid := range cell.PointIds() {
			ci.IncidentCells[pid] = append(ci.IncidentCells[pid], cid)
			set, ok := ci.IncidentCellSet[pid]
			if !ok {
				set = make(map[blockmesh.CellId]struct{})
				ci.IncidentCellSet[pid] = set
			}
			set[cid] = struct{}{}
		}
	}

	for _, patch := range mesh.Patches() {
		for _, face := range patch.Faces {
			for _, pid := range face.PointIds {
				ci.FixedPoints[pid] = struct{}{}
			}
		}
	}

	for pid := 0; pid < len(points); pid++ {
		p := blockmesh.PointId(pid)
		if _, fixed := ci.FixedPoints[p]; !fixed {
			ci.MobilePoints = append(ci.MobilePoints, p)
		}
	}

	return ci
}

// ImpactSet returns the union of IncidentCellSet over every point of cell,
// i.e. every cell (including cell itself) sharing a vertex with it —
// spec.md 4.5 step 2.
func (ci *ConnectivityIndex) ImpactSet(cell blockmesh.Cell) map[blockmesh.CellId]struct{} {
	impact := make(map[blockmesh.CellId]struct{})
	for _, pid := range cell.PointIds() {
		for c := range ci.IncidentCellSet[pid] {
			impact[c] = struct{}{}
		}
	}
	return impact
}

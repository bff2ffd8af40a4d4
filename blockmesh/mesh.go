package blockmesh

// Mesh is the concrete in-memory BlockMesh used by tests, fixtures, and the
// CLI's demo loader. Production callers would satisfy BlockMesh from their
// own block-decomposition data structures instead.
type Mesh struct {
	points  []Point
	cells   []Cell
	patches []Patch
}

// NewMesh builds a Mesh from its full point, cell, and patch arrays.
func NewMesh(points []Point, cells []Cell, patches []Patch) *Mesh {
	return &Mesh{points: points, cells: cells, patches: patches}
}

func (m *Mesh) Points() []Point   { return m.points }
func (m *Mesh) Cells() []Cell     { return m.cells }
func (m *Mesh) Patches() []Patch  { return m.patches }

func (m *Mesh) SetPoint(id PointId, p Point) {
	m.points[id] = p
}

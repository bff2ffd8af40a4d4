package blockmesh

// BlockMesh is the view the getme core consumes and mutates. It is built and
// owned by an external collaborator (block-topology parsing, decomposition,
// cell-zone assembly) and handed to the smoother, which mutates only the
// point array.
type BlockMesh interface {
	// Points returns the mutable point array, indexed by PointId.
	Points() []Point

	// Cells returns the cell array, indexed by CellId. Cell connectivity is
	// never mutated by the smoother.
	Cells() []Cell

	// Patches returns the read-only patch list used to determine fixedness.
	Patches() []Patch

	// SetPoint writes a new position for a single point.
	SetPoint(id PointId, p Point)
}

// Package blockmesh defines the data model consumed by the getme smoothing
// core: points, hexahedral cells in canonical brick order, and patches used
// only to determine which points are fixed. Block-topology parsing, block
// decomposition, and final volume-mesh serialization are external
// collaborators and are not implemented here.
package blockmesh

import "gonum.org/v1/gonum/spatial/r3"

// PointId is a dense, non-negative index into a Mesh's point array.
type PointId int

// CellId is a dense, non-negative index into a Mesh's cell array.
type CellId int

// Point is a 3-component real vector.
type Point = r3.Vec

// Cell is an ordered 8-tuple of PointIds in canonical brick order: vertices
// 0-3 form one quadrilateral face, 4-7 the opposite face, with 0-4, 1-5,
// 2-6, 3-7 as parallel edges.
type Cell struct {
	pointIds [8]PointId
}

// NewCell builds a Cell from its 8 point ids in canonical order.
func NewCell(ids [8]PointId) Cell {
	return Cell{pointIds: ids}
}

// PointIds returns the cell's 8 point ids in canonical order.
func (c Cell) PointIds() [8]PointId {
	return c.pointIds
}

// Points resolves the cell's 8 vertex positions against a point array
// indexed by PointId.
func (c Cell) Points(points []Point) [8]Point {
	var h [8]Point
	for i, id := range c.pointIds {
		h[i] = points[id]
	}
	return h
}

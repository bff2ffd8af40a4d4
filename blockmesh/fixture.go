package blockmesh

import (
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/spatial/r3"
)

// dictDoc mirrors the small subset of an on-disk block mesh description this
// repo needs for its demo CLI and fixtures: raw points, hex cells as 8 point
// indices, and named boundary patches. Real block-topology parsing (vertex
// blocks, grading, edge curves) is out of scope and left to an external
// collaborator; this loader exists to make the CLI runnable end to end.
type dictDoc struct {
	Points  [][3]float64 `json:"points"`
	Cells   [][8]int     `json:"cells"`
	Patches []struct {
		Name  string  `json:"name"`
		Faces [][]int `json:"faces"`
	} `json:"patches"`
}

// ReadMeshFile reads a Mesh from a JSON block-mesh description. Unlike
// gocfd's mesh.ReadMeshFile, which dispatches on .neu, .msh, .su2, it does
// not look at the file extension: every file is parsed as JSON.
func ReadMeshFile(filename string) (*Mesh, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("blockmesh: read %s: %w", filename, err)
	}
	var doc dictDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("blockmesh: parse %s: %w", filename, err)
	}

	points := make([]Point, len(doc.Points))
	for i, p := range doc.Points {
		points[i] = r3.Vec{X: p[0], Y: p[1], Z: p[2]}
	}

	cells := make([]Cell, len(doc.Cells))
	for i, c := range doc.Cells {
		var ids [8]PointId
		for j, id := range c {
			ids[j] = PointId(id)
		}
		cells[i] = NewCell(ids)
	}

	patches := make([]Patch, len(doc.Patches))
	for i, p := range doc.Patches {
		faces := make([]Face, len(p.Faces))
		for j, f := range p.Faces {
			ids := make([]PointId, len(f))
			for k, id := range f {
				ids[k] = PointId(id)
			}
			faces[j] = Face{PointIds: ids}
		}
		patches[i] = Patch{Name: p.Name, Faces: faces}
	}

	return NewMesh(points, cells, patches), nil
}

// UnitCube returns the 8 canonical vertices of a unit cube in brick order,
// spanning [0, 1] on each axis with vertex 0 at the origin, matching the
// ordering table in spec.md 3.
func UnitCube() [8]Point {
	return [8]Point{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: 1, Y: 0, Z: 1},
		{X: 1, Y: 1, Z: 1},
		{X: 0, Y: 1, Z: 1},
	}
}

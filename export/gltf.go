// Package export writes a block mesh out as a visual wireframe, the Go
// equivalent of the original tool's -blockTopology OBJ dump: instead of a
// text OBJ, it emits a glTF/GLB scene of line segments (one per hex edge)
// that any standard viewer can load directly.
package export

import (
	"fmt"

	"github.com/meshforge/blocksmoother/blockmesh"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// hexEdges are the 12 canonical edges of a hex cell in brick order, the
// same table getme.Transform uses to compute mean edge length.
var hexEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// WireframeGLB writes mesh's cell edges (deduplicated) as a line-segment
// glTF scene to outPath, in the style of vopl2glb.RunVOPL2GLB: one Document,
// one accessor pair, one Mesh, one Node.
func WireframeGLB(mesh blockmesh.BlockMesh, outPath string) error {
	points := mesh.Points()
	cells := mesh.Cells()

	positions := make([][3]float32, len(points))
	for i, p := range points {
		positions[i] = [3]float32{float32(p.X), float32(p.Y), float32(p.Z)}
	}

	seen := make(map[[2]blockmesh.PointId]struct{})
	var indices []uint32
	for _, cell := range cells {
		ids := cell.PointIds()
		for _, e := range hexEdges {
			a, b := ids[e[0]], ids[e[1]]
			key := [2]blockmesh.PointId{a, b}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			indices = append(indices, uint32(a), uint32(b))
		}
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = "blocksmoother wireframe export"

	posAccessor := modeler.WritePosition(doc, positions)
	indicesAccessor := modeler.WriteIndices(doc, indices)

	prim := &gltf.Primitive{
		Attributes: gltf.PrimitiveAttributes{
			gltf.POSITION: posAccessor,
		},
		Indices: gltf.Index(indicesAccessor),
		Mode:    gltf.PrimitiveLines,
	}

	meshGltf := &gltf.Mesh{Name: "BlockMeshWireframe", Primitives: []*gltf.Primitive{prim}}
	doc.Meshes = []*gltf.Mesh{meshGltf}
	node := &gltf.Node{Mesh: gltf.Index(0)}
	doc.Nodes = []*gltf.Node{node}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	if err := gltf.SaveBinary(doc, outPath); err != nil {
		return fmt.Errorf("export: write %s: %w", outPath, err)
	}
	return nil
}

package blockmesh

// Face is a list of PointIds bounding one patch face.
type Face struct {
	PointIds []PointId
}

// Patch is a named collection of boundary faces. Patches are read-only from
// the smoother's perspective; they exist only to determine which points are
// fixed (spec.md 3, "Connectivity Index").
type Patch struct {
	Name  string
	Faces []Face
}

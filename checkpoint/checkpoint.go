// Package checkpoint saves and restores in-progress mesh point positions, so
// a long sequential-smoothing run over a large mesh can resume after an
// interruption instead of restarting from the unsmoothed mesh.
package checkpoint

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/gzip"
	"github.com/meshforge/blocksmoother/blockmesh"
)

const magic = "GETMECKPT"

// State is the resumable snapshot of a smoothing run: the current point
// positions plus the number of sequential iterations already taken.
type State struct {
	Points     []blockmesh.Point
	Iterations int
}

// fingerprint hashes mesh topology: the point count and every cell's point
// ids. Cell connectivity never changes across a smoothing run (spec.md 3),
// while point coordinates do — by the time Save runs, getme.Run has already
// moved them — so hashing coordinates would make a checkpoint saved after
// smoothing never match the same mesh loaded fresh before smoothing. Hashing
// the immutable topology instead means Save and Load agree regardless of
// which side of a smoothing run they run on.
func fingerprint(mesh blockmesh.BlockMesh) uint64 {
	h := xxhash.New()
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], uint64(len(mesh.Points())))
	h.Write(buf[:])

	for _, cell := range mesh.Cells() {
		for _, pid := range cell.PointIds() {
			binary.LittleEndian.PutUint64(buf[:], uint64(pid))
			h.Write(buf[:])
		}
	}
	return h.Sum64()
}

// Save writes state to path as a gzip-compressed binary checkpoint, keyed by
// a fingerprint of mesh's topology so a mismatched Load fails loudly instead
// of silently corrupting the mesh. mesh may already be mid- or post-smoothing
// when Save is called; only its point count and connectivity are hashed.
func Save(path string, mesh blockmesh.BlockMesh, state State) error {
	var buf bytes.Buffer
	buf.WriteString(magic)

	writeUint64(&buf, fingerprint(mesh))
	writeUint64(&buf, uint64(len(state.Points)))
	writeUint64(&buf, uint64(state.Iterations))
	for _, p := range state.Points {
		writeFloat64(&buf, p.X)
		writeFloat64(&buf, p.Y)
		writeFloat64(&buf, p.Z)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("checkpoint: create %s: %w", path, err)
	}
	defer f.Close()

	gw := gzip.NewWriter(f)
	if _, err := gw.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("checkpoint: write %s: %w", path, err)
	}
	return gw.Close()
}

// Load reads a checkpoint written by Save and verifies it was taken against
// a mesh with the same topology (point count and cell connectivity) before
// the caller is allowed to overwrite mesh's points with it.
func Load(path string, mesh blockmesh.BlockMesh) (State, error) {
	f, err := os.Open(path)
	if err != nil {
		return State{}, fmt.Errorf("checkpoint: open %s: %w", path, err)
	}
	defer f.Close()

	gr, err := gzip.NewReader(f)
	if err != nil {
		return State{}, fmt.Errorf("checkpoint: gzip %s: %w", path, err)
	}
	defer gr.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(gr); err != nil {
		return State{}, fmt.Errorf("checkpoint: read %s: %w", path, err)
	}
	data := buf.Bytes()

	if len(data) < len(magic) || string(data[:len(magic)]) != magic {
		return State{}, fmt.Errorf("checkpoint: %s is not a valid checkpoint", path)
	}
	data = data[len(magic):]

	wantFingerprint := fingerprint(mesh)
	fp, data := readUint64(data)
	if fp != wantFingerprint {
		return State{}, fmt.Errorf("checkpoint: %s does not match the current mesh", path)
	}

	n, data := readUint64(data)
	iterations, data := readUint64(data)

	points := make([]blockmesh.Point, n)
	for i := range points {
		var x, y, z float64
		x, data = readFloat64(data)
		y, data = readFloat64(data)
		z, data = readFloat64(data)
		points[i] = blockmesh.Point{X: x, Y: y, Z: z}
	}

	return State{Points: points, Iterations: int(iterations)}, nil
}

func writeUint64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

func writeFloat64(buf *bytes.Buffer, v float64) {
	writeUint64(buf, math.Float64bits(v))
}

func readUint64(data []byte) (uint64, []byte) {
	return binary.LittleEndian.Uint64(data[:8]), data[8:]
}

func readFloat64(data []byte) (float64, []byte) {
	v, rest := readUint64(data)
	return math.Float64frombits(v), rest
}

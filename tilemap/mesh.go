package tilemap

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"slices"

	xxhash "github.com/cespare/xxhash/v2"
)

// corners are the unit cube offsets, indexed by the face table below.
var corners = [8]Point{
	{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1},
	{1, 1, 0}, {0, 1, 1}, {1, 0, 1}, {1, 1, 1},
}

type cubeFace struct {
	normal Point
	quad   [4]uint8 // corner indices, counter-clockwise seen from outside
}

var faces = [6]cubeFace{
	{Point{1, 0, 0}, [4]uint8{1, 4, 7, 6}},
	{Point{-1, 0, 0}, [4]uint8{0, 3, 5, 2}},
	{Point{0, 1, 0}, [4]uint8{2, 5, 7, 4}},
	{Point{0, -1, 0}, [4]uint8{0, 1, 6, 3}},
	{Point{0, 0, 1}, [4]uint8{3, 6, 7, 5}},
	{Point{0, 0, -1}, [4]uint8{0, 2, 4, 1}},
}

// IndicesPerCube is the index buffer growth per AddCube: 6 faces of 2 triangles.
const IndicesPerCube = len(faces) * 6

// Mesh is the surface of one island: deduplicated cube corners and a triangle
// list over them. Origins lists every cube folded in, in emission order.
type Mesh struct {
	Vertices []Point
	Indices  []uint32
	Origins  []Point

	lookup map[Point]uint32
}

// NewMesh returns an empty mesh ready for AddCube.
func NewMesh() *Mesh {
	return &Mesh{lookup: make(map[Point]uint32)}
}

// AddCube appends the unit cube at origin, reusing any corner already present.
// Faces shared with earlier cubes are kept; there is no culling.
func (m *Mesh) AddCube(origin Point) {
	if m.lookup == nil {
		m.reindex()
	}
	var idx [8]uint32
	for i, off := range corners {
		idx[i] = m.vertex(origin.add(off))
	}
	for _, f := range faces {
		a, b, c, d := idx[f.quad[0]], idx[f.quad[1]], idx[f.quad[2]], idx[f.quad[3]]
		m.Indices = append(m.Indices, a, b, c, a, c, d)
	}
	m.Origins = append(m.Origins, origin)
}

func (m *Mesh) vertex(p Point) uint32 {
	if i, ok := m.lookup[p]; ok {
		return i
	}
	i := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, p)
	m.lookup[p] = i
	return i
}

// reindex rebuilds the dedup table, e.g. when AddCube is called on a mesh
// that was already handed out.
func (m *Mesh) reindex() {
	m.lookup = make(map[Point]uint32, len(m.Vertices))
	for i, v := range m.Vertices {
		m.lookup[v] = uint32(i)
	}
}

// seal drops the dedup table once the mesh is complete.
func (m *Mesh) seal() {
	m.lookup = nil
}

func (m *Mesh) VertexCount() int   { return len(m.Vertices) }
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// Validate checks the index buffer against the vertex list.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("index buffer length %d is not a multiple of 3", len(m.Indices))
	}
	for i, v := range m.Indices {
		if int(v) >= len(m.Vertices) {
			return fmt.Errorf("index %d at %d out of range (%d vertices)", v, i, len(m.Vertices))
		}
	}
	return nil
}

// Bounds returns the smallest and largest vertex positions. Both are zero for
// an empty mesh.
func (m *Mesh) Bounds() (lo, hi Point) {
	if len(m.Vertices) == 0 {
		return
	}
	lo, hi = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		lo = Point{min(lo.X, v.X), min(lo.Y, v.Y), min(lo.Z, v.Z)}
		hi = Point{max(hi.X, v.X), max(hi.Y, v.Y), max(hi.Z, v.Z)}
	}
	return
}

// Fingerprint hashes the set of cube origins. Two meshes built from the same
// tiles share a fingerprint whatever order the tiles were visited in.
func (m *Mesh) Fingerprint() uint64 {
	origins := slices.Clone(m.Origins)
	slices.SortFunc(origins, comparePoints)
	d := xxhash.New()
	var b [24]byte
	for _, p := range origins {
		binary.LittleEndian.PutUint64(b[0:], uint64(int64(p.X)))
		binary.LittleEndian.PutUint64(b[8:], uint64(int64(p.Y)))
		binary.LittleEndian.PutUint64(b[16:], uint64(int64(p.Z)))
		_, _ = d.Write(b[:])
	}
	return d.Sum64()
}

// comparePoints orders points the way the grid stores them: z, then y, then x.
func comparePoints(a, b Point) int {
	if c := cmp.Compare(a.Z, b.Z); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

package api

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/voxelsplace/islands/tilemap"
	"github.com/voxelsplace/islands/voxel"
)

var islandNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/voxelsplace/islands"))

// IslandID names an island by its tile set, so the same blob gets the same ID
// across runs.
func IslandID(m *tilemap.Mesh) uuid.UUID {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], m.Fingerprint())
	return uuid.NewSHA1(islandNamespace, b[:])
}

// ExportOptions controls GLB generation.
type ExportOptions struct {
	Generator string
	Normals   bool
}

// DefaultExport writes normals and tags the asset as islandtool output.
func DefaultExport() ExportOptions {
	return ExportOptions{Generator: "islandtool", Normals: true}
}

// IslandStats summarises one island.
type IslandStats struct {
	ID        uuid.UUID
	Cubes     int
	Vertices  int
	Triangles int
	Min, Max  tilemap.Point
}

func (s IslandStats) String() string {
	return fmt.Sprintf("%s cubes=%d vertices=%d triangles=%d bounds=%v-%v",
		s.ID, s.Cubes, s.Vertices, s.Triangles, s.Min, s.Max)
}

// Summarize returns per-island statistics in the order given.
func Summarize(meshes []*tilemap.Mesh) []IslandStats {
	out := make([]IslandStats, len(meshes))
	for i, m := range meshes {
		lo, hi := m.Bounds()
		out[i] = IslandStats{
			ID:        IslandID(m),
			Cubes:     len(m.Origins),
			Vertices:  m.VertexCount(),
			Triangles: m.TriangleCount(),
			Min:       lo,
			Max:       hi,
		}
	}
	return out
}

// RLEToGLB expands a run-length voxel grid and returns its islands as .glb bytes.
func RLEToGLB(width, height, depth int, rleArg string, opts ExportOptions) ([]byte, error) {
	rle, err := voxel.ParseRLE(rleArg)
	if err != nil {
		return nil, err
	}
	grid, err := voxel.ExpandRLE(width, height, depth, rle)
	if err != nil {
		return nil, fmt.Errorf("failed to expand RLE: %w", err)
	}
	return MeshesToGLB(grid.Islands(), opts)
}

// MeshesToGLB encodes islands as a binary glTF with one mesh and one node per
// island.
func MeshesToGLB(meshes []*tilemap.Mesh, opts ExportOptions) ([]byte, error) {
	doc, err := BuildDocument(meshes, opts)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	enc := gltf.NewEncoder(&out)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode glb: %w", err)
	}
	return out.Bytes(), nil
}

// BuildDocument lays out islands in a glTF document. Vertices keep their grid
// coordinates so islands sit where they were found. An empty island list
// gives a valid document with an empty scene.
func BuildDocument(meshes []*tilemap.Mesh, opts ExportOptions) (*gltf.Document, error) {
	doc := gltf.NewDocument()
	doc.Asset.Generator = opts.Generator

	// colours come from the per-vertex COLOR_0 attribute
	pbr := &gltf.PBRMetallicRoughness{MetallicFactor: gltf.Float(0), RoughnessFactor: gltf.Float(1)}
	doc.Materials = []*gltf.Material{{PBRMetallicRoughness: pbr, AlphaMode: gltf.AlphaOpaque}}

	for i, m := range meshes {
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("island %d: %w", i, err)
		}
		if len(m.Vertices) == 0 {
			continue
		}
		rgba, err := islandColor(i)
		if err != nil {
			return nil, err
		}

		positions := make([][3]float32, len(m.Vertices))
		colors := make([][4]float32, len(m.Vertices))
		for vi, v := range m.Vertices {
			positions[vi] = [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
			colors[vi] = rgba
		}
		indices := make([]uint32, len(m.Indices))
		copy(indices, m.Indices)

		attrs := gltf.PrimitiveAttributes{
			gltf.POSITION: modeler.WritePosition(doc, positions),
			gltf.COLOR_0:  modeler.WriteColor(doc, colors),
		}
		if opts.Normals {
			attrs[gltf.NORMAL] = modeler.WriteNormal(doc, vertexNormals(m))
		}
		prim := &gltf.Primitive{
			Attributes: attrs,
			Indices:    gltf.Index(modeler.WriteIndices(doc, indices)),
			Material:   gltf.Index(0),
		}

		name := IslandID(m).String()
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{Name: name, Primitives: []*gltf.Primitive{prim}})
		doc.Nodes = append(doc.Nodes, &gltf.Node{Name: name, Mesh: gltf.Index(len(doc.Meshes) - 1)})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}
	return doc, nil
}

// vertexNormals averages the face normals around each shared vertex. Corners
// buried inside an island cancel out; they get +Y.
func vertexNormals(m *tilemap.Mesh) [][3]float32 {
	acc := make([]r3.Vec, len(m.Vertices))
	vec := func(p tilemap.Point) r3.Vec {
		return r3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		pa := vec(m.Vertices[a])
		n := r3.Cross(r3.Sub(vec(m.Vertices[b]), pa), r3.Sub(vec(m.Vertices[c]), pa))
		acc[a] = r3.Add(acc[a], n)
		acc[b] = r3.Add(acc[b], n)
		acc[c] = r3.Add(acc[c], n)
	}
	out := make([][3]float32, len(acc))
	for i, n := range acc {
		if r3.Norm(n) < 1e-9 {
			out[i] = [3]float32{0, 1, 0}
			continue
		}
		u := r3.Unit(n)
		out[i] = [3]float32{float32(u.X), float32(u.Y), float32(u.Z)}
	}
	return out
}

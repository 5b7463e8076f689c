package tilemap_test

import (
	"fmt"

	"github.com/voxelsplace/islands/tilemap"
)

type rock bool

func (r rock) Collides() bool { return bool(r) }

func ExampleTileMap_Colliders() {
	// a 4x1x1 row: two touching rocks, a gap, one more rock
	m, err := tilemap.New(4, 1, 1, []rock{true, true, false, true})
	if err != nil {
		panic(err)
	}
	it := m.Colliders()
	for {
		mesh, ok := it.Next()
		if !ok {
			break
		}
		fmt.Println(len(mesh.Origins), "cubes,", mesh.VertexCount(), "vertices,", mesh.TriangleCount(), "triangles")
	}
	// Output:
	// 2 cubes, 12 vertices, 24 triangles
	// 1 cubes, 8 vertices, 12 triangles
}

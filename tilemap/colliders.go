package tilemap

import "iter"

// neighbors are the six face-adjacent steps.
var neighbors = [6]Point{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// ColliderIterator walks a TileMap and yields one Mesh per maximal 6-connected
// group of colliding tiles.
//
// The outer scan moves a cursor through the grid in storage order (x fastest,
// then y, then z). The first unvisited colliding tile seeds a flood fill that
// uses a LIFO frontier, so cubes are emitted depth-first. Each tile is
// classified exactly once over the life of the iterator.
//
// An iterator is not safe for concurrent use, but any number of iterators may
// read the same TileMap at once.
type ColliderIterator[T Tile] struct {
	m          *TileMap[T]
	visited    []byte // one bit per tile, same index as the tile buffer
	cursor     Point
	frontier   []Point
	classified int
	islands    int
	done       bool
}

// Colliders starts a fresh traversal of m.
func (m *TileMap[T]) Colliders() *ColliderIterator[T] {
	return &ColliderIterator[T]{
		m:       m,
		visited: make([]byte, (m.Len()+7)/8),
		done:    m.Len() == 0,
	}
}

// Meshes yields the islands of m lazily, each from its own traversal.
func (m *TileMap[T]) Meshes() iter.Seq[*Mesh] {
	return func(yield func(*Mesh) bool) {
		it := m.Colliders()
		for {
			mesh, ok := it.Next()
			if !ok || !yield(mesh) {
				return
			}
		}
	}
}

// Islands runs a full traversal and returns every island.
func (m *TileMap[T]) Islands() []*Mesh {
	var out []*Mesh
	for mesh := range m.Meshes() {
		out = append(out, mesh)
	}
	return out
}

// Next returns the next island, or false once the grid is exhausted. After
// the first false every later call returns false as well.
func (it *ColliderIterator[T]) Next() (*Mesh, bool) {
	for !it.done {
		p := it.cursor
		i := it.m.Index(p)
		it.advance()
		if it.isVisited(i) {
			continue
		}
		it.mark(i)
		if !it.m.tiles[i].Collides() {
			continue
		}
		return it.fill(p), true
	}
	return nil, false
}

// Done reports whether the cursor has swept the whole grid.
func (it *ColliderIterator[T]) Done() bool { return it.done }

// Classified is the number of tiles examined so far. It reaches Len() once
// the traversal is exhausted.
func (it *ColliderIterator[T]) Classified() int { return it.classified }

func (it *ColliderIterator[T]) fill(seed Point) *Mesh {
	mesh := NewMesh()
	mesh.AddCube(seed)
	it.frontier = append(it.frontier[:0], seed)
	for len(it.frontier) > 0 {
		p := it.frontier[len(it.frontier)-1]
		it.frontier = it.frontier[:len(it.frontier)-1]
		for _, step := range neighbors {
			n := p.add(step)
			if !it.m.InBounds(n) {
				continue
			}
			i := it.m.Index(n)
			if it.isVisited(i) || !it.m.tiles[i].Collides() {
				continue
			}
			it.mark(i)
			mesh.AddCube(n)
			it.frontier = append(it.frontier, n)
		}
	}
	mesh.seal()
	it.islands++
	tracef("island %d seeded at %v: %d cubes, %d vertices, %d triangles",
		it.islands, seed, len(mesh.Origins), mesh.VertexCount(), mesh.TriangleCount())
	return mesh
}

// advance moves the cursor one step in storage order and flags exhaustion
// when it runs off the end of the volume.
func (it *ColliderIterator[T]) advance() {
	c := &it.cursor
	c.X++
	if c.X < it.m.width {
		return
	}
	c.X = 0
	c.Y++
	if c.Y < it.m.height {
		return
	}
	c.Y = 0
	c.Z++
	if c.Z >= it.m.depth {
		it.done = true
	}
}

func (it *ColliderIterator[T]) isVisited(i int) bool {
	return it.visited[i>>3]&(1<<(uint(i)&7)) != 0
}

func (it *ColliderIterator[T]) mark(i int) {
	it.visited[i>>3] |= 1 << (uint(i) & 7)
	it.classified++
}

package tilemap

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidExtent = errors.New("tilemap: invalid extent")
	ErrTileCount     = errors.New("tilemap: tile count does not match extents")
	ErrOutOfBounds   = errors.New("tilemap: point out of bounds")
)

// Tile is anything that can tell whether it is solid.
type Tile interface {
	Collides() bool
}

// Point is an integer grid coordinate. For a tile it is also the
// top-front-left corner of the tile's unit cube.
type Point struct {
	X, Y, Z int
}

func (p Point) add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y, p.Z + o.Z}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// TileMap is a dense width*height*depth grid stored x-fastest, then y, then z.
// It has no mutators; share it freely between readers.
type TileMap[T Tile] struct {
	width, height, depth int
	tiles                []T
}

// Volume returns width*height*depth, rejecting negative extents and products
// that do not fit in an int.
func Volume(width, height, depth int) (int, error) {
	if width < 0 || height < 0 || depth < 0 {
		return 0, fmt.Errorf("%w: %dx%dx%d", ErrInvalidExtent, width, height, depth)
	}
	n := 1
	for _, e := range [3]int{width, height, depth} {
		if e != 0 && n > math.MaxInt/e {
			return 0, fmt.Errorf("%w: %dx%dx%d overflows", ErrInvalidExtent, width, height, depth)
		}
		n *= e
	}
	return n, nil
}

// New wraps tiles as a grid. The buffer is used as is, so callers must not
// modify it afterwards.
func New[T Tile](width, height, depth int, tiles []T) (*TileMap[T], error) {
	want, err := Volume(width, height, depth)
	if err != nil {
		return nil, err
	}
	if len(tiles) != want {
		return nil, fmt.Errorf("%w: got %d tiles, want %d for %dx%dx%d",
			ErrTileCount, len(tiles), want, width, height, depth)
	}
	return &TileMap[T]{width: width, height: height, depth: depth, tiles: tiles}, nil
}

func (m *TileMap[T]) Width() int  { return m.width }
func (m *TileMap[T]) Height() int { return m.height }
func (m *TileMap[T]) Depth() int  { return m.depth }

// Len is the number of tiles in the volume.
func (m *TileMap[T]) Len() int { return len(m.tiles) }

// Index returns the linear buffer index of p. p must be in bounds.
func (m *TileMap[T]) Index(p Point) int {
	return p.Z*m.width*m.height + p.Y*m.width + p.X
}

// PointAt is the inverse of Index.
func (m *TileMap[T]) PointAt(index int) Point {
	wh := m.width * m.height
	z := index / wh
	rem := index - z*wh
	y := rem / m.width
	return Point{X: rem - y*m.width, Y: y, Z: z}
}

func (m *TileMap[T]) InBounds(p Point) bool {
	return p.X >= 0 && p.X < m.width &&
		p.Y >= 0 && p.Y < m.height &&
		p.Z >= 0 && p.Z < m.depth
}

// TileAt returns the tile at p, or ErrOutOfBounds when any component of p
// falls outside the volume.
func (m *TileMap[T]) TileAt(p Point) (T, error) {
	if !m.InBounds(p) {
		var zero T
		return zero, fmt.Errorf("%w: %v in %dx%dx%d", ErrOutOfBounds, p, m.width, m.height, m.depth)
	}
	return m.tiles[m.Index(p)], nil
}

// Collides reports whether the tile at p is solid. Points outside the volume
// never collide.
func (m *TileMap[T]) Collides(p Point) bool {
	if !m.InBounds(p) {
		return false
	}
	return m.tiles[m.Index(p)].Collides()
}

package voxel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/voxelsplace/islands/tilemap"
)

// MaxValue is the largest palette index a voxel may hold.
const MaxValue = 63

// Voxel is a palette index. Zero is empty space; anything else is solid.
type Voxel uint8

func (v Voxel) Collides() bool { return v != 0 }

// Grid is a voxel tile map.
type Grid = tilemap.TileMap[Voxel]

// ParseRLE reads a run-length string such as "10,0,4,1". Surrounding brackets
// and blank entries are ignored.
func ParseRLE(s string) ([]int, error) {
	s = strings.Trim(s, "[] \n\r\t")
	if s == "" {
		return nil, fmt.Errorf("empty RLE input")
	}
	var rle []int
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		i, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("failed to parse RLE '%s': %w", p, err)
		}
		rle = append(rle, i)
	}
	return rle, nil
}

// ExpandRLE fills a width*height*depth grid from count-value pairs, in tile
// storage order (x fastest, then y, then z). The pairs must cover the volume
// exactly.
func ExpandRLE(width, height, depth int, rle []int) (*Grid, error) {
	if len(rle)%2 != 0 {
		return nil, fmt.Errorf("RLE must hold count-value pairs, got %d numbers", len(rle))
	}
	total, err := tilemap.Volume(width, height, depth)
	if err != nil {
		return nil, err
	}
	tiles := make([]Voxel, total)
	idx := 0
	for i := 0; i < len(rle); i += 2 {
		count, value := rle[i], rle[i+1]
		if count < 0 {
			return nil, fmt.Errorf("negative run length %d at pair %d", count, i/2)
		}
		if value < 0 || value > MaxValue {
			return nil, fmt.Errorf("invalid value %d at pair %d (0-%d)", value, i/2, MaxValue)
		}
		if count > total-idx {
			return nil, fmt.Errorf("RLE exceeds the %dx%dx%d volume at pair %d", width, height, depth, i/2)
		}
		for j := 0; j < count; j++ {
			tiles[idx] = Voxel(value)
			idx++
		}
	}
	if idx != total {
		return nil, fmt.Errorf("RLE does not fill the volume (%d/%d)", idx, total)
	}
	return tilemap.New(width, height, depth, tiles)
}

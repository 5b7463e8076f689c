package voxel

import (
	"fmt"

	"github.com/aquilax/go-perlin"

	"github.com/voxelsplace/islands/tilemap"
)

// NoiseParams shapes a Perlin density field.
type NoiseParams struct {
	Alpha   float64 // smoothing
	Beta    float64 // frequency
	Octaves int32
	// Scale maps tile coordinates into noise space. Keep it off integer
	// values: Perlin noise is zero on the lattice.
	Scale float64
	// Threshold in [0,1]; tiles whose density exceeds it are solid.
	Threshold float64
}

// DefaultNoise gives scattered blobs of a few dozen tiles on small grids.
func DefaultNoise() NoiseParams {
	return NoiseParams{Alpha: 2, Beta: 2, Octaves: 3, Scale: 0.17, Threshold: 0.55}
}

// Noise fills a width*height*depth grid from 3D Perlin noise. The same seed
// and params always give the same grid. Solid tiles take a palette index in
// [1, MaxValue] from their density.
func Noise(width, height, depth int, seed int64, p NoiseParams) (*Grid, error) {
	if p.Threshold < 0 || p.Threshold > 1 {
		return nil, fmt.Errorf("noise threshold %.3f outside [0,1]", p.Threshold)
	}
	total, err := tilemap.Volume(width, height, depth)
	if err != nil {
		return nil, err
	}
	gen := perlin.NewPerlin(p.Alpha, p.Beta, p.Octaves, seed)
	tiles := make([]Voxel, total)
	i := 0
	for z := range depth {
		for y := range height {
			for x := range width {
				n := gen.Noise3D(float64(x)*p.Scale, float64(y)*p.Scale, float64(z)*p.Scale)
				density := (n + 1) / 2
				if density > p.Threshold {
					tiles[i] = paletteIndex(density, p.Threshold)
				}
				i++
			}
		}
	}
	return tilemap.New(width, height, depth, tiles)
}

func paletteIndex(density, threshold float64) Voxel {
	span := 1 - threshold
	if span <= 0 {
		return MaxValue
	}
	v := 1 + int((density-threshold)/span*float64(MaxValue-1))
	return Voxel(min(max(v, 1), MaxValue))
}

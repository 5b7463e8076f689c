package utils

import (
	"fmt"
	"io"

	"github.com/voxelsplace/islands/api"
	"github.com/voxelsplace/islands/config"
	"github.com/voxelsplace/islands/tilemap"
	"github.com/voxelsplace/islands/voxel"
)

func exportOptions(cfg *config.Config) api.ExportOptions {
	return api.ExportOptions{Generator: cfg.Export.Generator, Normals: cfg.Export.Normals}
}

func loadRLEGrid(width, height, depth int, inPath string) (*voxel.Grid, error) {
	data, err := readInput(inPath)
	if err != nil {
		return nil, err
	}
	rle, err := voxel.ParseRLE(string(data))
	if err != nil {
		return nil, err
	}
	grid, err := voxel.ExpandRLE(width, height, depth, rle)
	if err != nil {
		return nil, fmt.Errorf("failed to expand RLE: %w", err)
	}
	return grid, nil
}

func writeIslands(meshes []*tilemap.Mesh, outPath string, cfg *config.Config) error {
	glb, err := api.MeshesToGLB(meshes, exportOptions(cfg))
	if err != nil {
		return err
	}
	if err := writeOutput(outPath, glb, cfg.Export); err != nil {
		return fmt.Errorf("failed to save GLB: %w", err)
	}
	logInfo("%s: %d islands (%d bytes glb)", outPath, len(meshes), len(glb))
	return nil
}

// RunRLE2GLB reads a run-length grid from inPath and writes one glTF node per
// island to outPath.
func RunRLE2GLB(width, height, depth int, inPath, outPath string, cfg *config.Config) error {
	grid, err := loadRLEGrid(width, height, depth, inPath)
	if err != nil {
		return err
	}
	return writeIslands(grid.Islands(), outPath, cfg)
}

// RunNoise2GLB generates a Perlin grid from seed and exports its islands.
func RunNoise2GLB(width, height, depth int, seed int64, outPath string, cfg *config.Config) error {
	n := cfg.Noise
	grid, err := voxel.Noise(width, height, depth, seed, voxel.NoiseParams{
		Alpha: n.Alpha, Beta: n.Beta, Octaves: n.Octaves, Scale: n.Scale, Threshold: n.Threshold,
	})
	if err != nil {
		return err
	}
	return writeIslands(grid.Islands(), outPath, cfg)
}

// RunStats prints one line per island of the grid in inPath.
func RunStats(width, height, depth int, inPath string, w io.Writer) error {
	grid, err := loadRLEGrid(width, height, depth, inPath)
	if err != nil {
		return err
	}
	stats := api.Summarize(grid.Islands())
	for i, s := range stats {
		if _, err := fmt.Fprintf(w, "%d %s\n", i, s); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "%d islands in %dx%dx%d\n", len(stats), width, height, depth)
	return err
}

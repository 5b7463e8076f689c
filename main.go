//go:build !(js && wasm)

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/voxelsplace/islands/config"
	"github.com/voxelsplace/islands/utils"
)

func usage() {
	fmt.Println("Usage: islandtool <command> [args]")
	fmt.Println("Commands:")
	fmt.Println("  rle2glb <w> <h> <d> input.rle output.glb   (one glTF node per island of solid voxels)")
	fmt.Println("  noise2glb <w> <h> <d> <seed> output.glb    (Perlin noise grid -> islands -> .glb)")
	fmt.Println("  stats <w> <h> <d> input.rle                (print one line per island)")
	fmt.Println("Inputs and outputs ending in .zst are zstd-compressed.")
	fmt.Printf("Configuration is read from $%s when set.\n", config.EnvPath)
}

func fail(err error) {
	fmt.Println("Error:", err)
	os.Exit(1)
}

// dims parses three extents starting at os.Args[i].
func dims(i int) (w, h, d int) {
	var out [3]int
	for j := range out {
		v, err := strconv.Atoi(os.Args[i+j])
		if err != nil || v < 0 {
			fail(fmt.Errorf("invalid extent %q", os.Args[i+j]))
		}
		out[j] = v
	}
	return out[0], out[1], out[2]
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.Load("")
	if err != nil {
		fail(err)
	}
	utils.SetupLogging(os.Stderr, cfg.Log.Level)

	switch os.Args[1] {
	case "rle2glb":
		if len(os.Args) != 7 {
			usage()
			os.Exit(1)
		}
		w, h, d := dims(2)
		if err := utils.RunRLE2GLB(w, h, d, os.Args[5], os.Args[6], cfg); err != nil {
			fail(err)
		}
	case "noise2glb":
		if len(os.Args) != 7 {
			usage()
			os.Exit(1)
		}
		w, h, d := dims(2)
		seed, err := strconv.ParseInt(os.Args[5], 10, 64)
		if err != nil {
			fail(err)
		}
		if err := utils.RunNoise2GLB(w, h, d, seed, os.Args[6], cfg); err != nil {
			fail(err)
		}
	case "stats":
		if len(os.Args) != 6 {
			usage()
			os.Exit(1)
		}
		w, h, d := dims(2)
		if err := utils.RunStats(w, h, d, os.Args[5], os.Stdout); err != nil {
			fail(err)
		}
		return
	default:
		usage()
		os.Exit(1)
	}

	fmt.Println("Operation completed!")
}

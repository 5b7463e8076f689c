package api

import (
	"fmt"
	"strconv"
)

// Palette colours islands in discovery order, wrapping around.
var Palette = []string{
	"#e6194b", "#3cb44b", "#ffe119", "#4363d8",
	"#f58231", "#911eb4", "#46f0f0", "#f032e6",
	"#bcf60c", "#fabebe", "#008080", "#e6beff",
	"#9a6324", "#fffac8", "#800000", "#aaffc3",
}

// ParseHexColor converts #rrggbb or #rrggbbaa to linear RGBA in [0,1].
func ParseHexColor(hex string) ([4]float32, error) {
	if len(hex) == 0 || hex[0] != '#' {
		return [4]float32{}, fmt.Errorf("invalid hex colour: %q", hex)
	}
	h := hex[1:]
	if len(h) != 6 && len(h) != 8 {
		return [4]float32{}, fmt.Errorf("invalid hex colour length: %q", hex)
	}
	var rgba [4]float32
	rgba[3] = 1
	for i := 0; i < len(h)/2; i++ {
		c, err := strconv.ParseUint(h[2*i:2*i+2], 16, 8)
		if err != nil {
			return [4]float32{}, fmt.Errorf("invalid hex colour %q: %w", hex, err)
		}
		rgba[i] = float32(c) / 255
	}
	return rgba, nil
}

func islandColor(i int) ([4]float32, error) {
	return ParseHexColor(Palette[i%len(Palette)])
}

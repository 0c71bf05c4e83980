package render

import (
	"image/color"

	"powder/internal/sims/powder"
)

// MaterialColor returns the display color for a powder material. Undefined
// values map to magenta so they stand out.
func MaterialColor(c powder.Cell) color.RGBA {
	switch c {
	case powder.Empty:
		return color.RGBA{R: 0, G: 0, B: 0, A: 255}
	case powder.Sand:
		return color.RGBA{R: 194, G: 178, B: 128, A: 255}
	case powder.Water:
		return color.RGBA{R: 0, G: 0, B: 255, A: 255}
	case powder.Stone:
		return color.RGBA{R: 100, G: 100, B: 100, A: 255}
	default:
		return color.RGBA{R: 255, G: 0, B: 255, A: 255}
	}
}

// MaterialPalette is indexed by cell byte value and covers every material.
func MaterialPalette() []color.RGBA {
	palette := make([]color.RGBA, powder.NumCells)
	for _, c := range powder.Materials() {
		palette[c] = MaterialColor(c)
	}
	return palette
}

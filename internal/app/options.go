package app

import (
	"github.com/charmbracelet/log"

	"powder/internal/sims/powder"
)

// DefaultHUDWidth is the stats panel width in pixels.
const DefaultHUDWidth = 200

// Options configures the GUI host.
type Options struct {
	Scale    int
	Seed     int64
	HUDWidth int
	Brush    *powder.Brush
	Logger   *log.Logger
}

// Pointer is the mouse state sampled once per update.
type Pointer struct {
	X, Y                int
	Left, Right, Middle bool
	Shift               bool
}

// Material reports what a held button paints. Left paints sand, or stone with
// Shift held; right paints water; middle erases.
func (p Pointer) Material() (powder.Cell, bool) {
	switch {
	case p.Left && p.Shift:
		return powder.Stone, true
	case p.Left:
		return powder.Sand, true
	case p.Right:
		return powder.Water, true
	case p.Middle:
		return powder.Empty, true
	}
	return powder.Empty, false
}

// Cell converts the pointer's screen position to grid coordinates.
func (p Pointer) Cell(scale int) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	return floorDiv(p.X, scale), floorDiv(p.Y, scale)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

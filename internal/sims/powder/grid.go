package powder

import (
	"fmt"
	"strings"

	"powder/internal/core"
)

// Grid is a fixed-size rectangle of materials. Row 0 is the top and gravity
// points toward increasing y.
type Grid struct {
	b *core.ByteGrid
}

// NewGrid allocates a grid with every cell Empty. Non-positive dimensions are
// raised to 1.
func NewGrid(w, h int) *Grid {
	return &Grid{b: core.NewByteGrid(w, h)}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.b.W }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.b.H }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool { return g.b.InBounds(x, y) }

// Get returns the material at (x, y). Reading outside the grid is a
// programming error and panics.
func (g *Grid) Get(x, y int) Cell { return Cell(g.b.At(x, y)) }

// Set stores c at (x, y). Out of range coordinates and undefined materials
// panic.
func (g *Grid) Set(x, y int, c Cell) {
	if !c.Valid() {
		panic(fmt.Sprintf("powder: invalid material %d at (%d,%d)", uint8(c), x, y))
	}
	g.b.Set(x, y, uint8(c))
}

// Spawn overwrites the cell at (x, y) with c. Requests outside the grid or
// carrying an undefined material are ignored.
func (g *Grid) Spawn(x, y int, c Cell) {
	if !g.InBounds(x, y) || !c.Valid() {
		return
	}
	g.b.Set(x, y, uint8(c))
}

// Bytes exposes the row-major backing slice, one byte per cell.
func (g *Grid) Bytes() []uint8 { return g.b.Cells() }

// Clear resets every cell to Empty.
func (g *Grid) Clear() { g.b.Clear() }

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid { return &Grid{b: g.b.Clone()} }

// Equal reports whether both grids share dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.Width() != other.Width() || g.Height() != other.Height() {
		return false
	}
	a, b := g.Bytes(), other.Bytes()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Counts tallies how many cells hold each material, indexed by Cell.
func (g *Grid) Counts() [NumCells]int {
	var counts [NumCells]int
	for _, v := range g.b.Cells() {
		counts[v]++
	}
	return counts
}

// String renders the grid one row per line using Cell.Rune.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width() + 1) * g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			sb.WriteRune(g.Get(x, y).Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

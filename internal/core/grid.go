package core

import "fmt"

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// Row 0 is the top row.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a stored cell.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at (x, y). It panics when the coordinates fall outside
// the grid; callers that accept untrusted input must check InBounds first.
func (g *ByteGrid) At(x, y int) uint8 {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("core: read (%d,%d) outside %dx%d grid", x, y, g.W, g.H))
	}
	return g.data[g.Index(x, y)]
}

// Set stores v at (x, y). Out of range coordinates panic like At.
func (g *ByteGrid) Set(x, y int, v uint8) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("core: write (%d,%d) outside %dx%d grid", x, y, g.W, g.H))
	}
	g.data[g.Index(x, y)] = v
}

// Clone returns an independent copy of the grid.
func (g *ByteGrid) Clone() *ByteGrid {
	data := make([]uint8, len(g.data))
	copy(data, g.data)
	return &ByteGrid{W: g.W, H: g.H, data: data}
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

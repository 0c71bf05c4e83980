package powder

import (
	"testing"

	"powder/internal/core"
)

// gridFromRows builds a grid from text rows using Cell.Rune characters.
func gridFromRows(t *testing.T, rows ...string) *Grid {
	t.Helper()
	if len(rows) == 0 {
		t.Fatal("gridFromRows needs at least one row")
	}
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.Width() {
			t.Fatalf("row %d has width %d, want %d", y, len(row), g.Width())
		}
		for x, r := range row {
			c, err := ParseCell(string(r))
			if err != nil {
				t.Fatalf("row %d col %d: %v", y, x, err)
			}
			g.Set(x, y, c)
		}
	}
	return g
}

func mirrored(g *Grid) *Grid {
	m := NewGrid(g.Width(), g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			m.Set(g.Width()-1-x, y, g.Get(x, y))
		}
	}
	return m
}

func randomGrid(rng *core.RNG, w, h int) *Grid {
	g := NewGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Set(x, y, Cell(rng.IntN(NumCells)))
		}
	}
	return g
}

func assertGrid(t *testing.T, got *Grid, rows ...string) {
	t.Helper()
	want := gridFromRows(t, rows...)
	if !got.Equal(want) {
		t.Fatalf("grid mismatch\n got:\n%s want:\n%s", got, want)
	}
}

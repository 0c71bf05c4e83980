package app

import (
	"testing"

	"powder/internal/sims/powder"
)

func TestPointerMaterial(t *testing.T) {
	cases := []struct {
		name string
		p    Pointer
		want powder.Cell
		ok   bool
	}{
		{"idle", Pointer{}, powder.Empty, false},
		{"left", Pointer{Left: true}, powder.Sand, true},
		{"shift left", Pointer{Left: true, Shift: true}, powder.Stone, true},
		{"shift alone", Pointer{Shift: true}, powder.Empty, false},
		{"right", Pointer{Right: true}, powder.Water, true},
		{"left wins over right", Pointer{Left: true, Right: true}, powder.Sand, true},
		{"middle", Pointer{Middle: true}, powder.Empty, true},
	}
	for _, tc := range cases {
		got, ok := tc.p.Material()
		if got != tc.want || ok != tc.ok {
			t.Fatalf("%s: got (%v, %v), want (%v, %v)", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}

func TestPointerCell(t *testing.T) {
	cases := []struct {
		x, y, scale int
		wx, wy      int
	}{
		{0, 0, 4, 0, 0},
		{7, 9, 4, 1, 2},
		{-1, 3, 4, -1, 0},
		{5, 5, 0, 5, 5},
	}
	for _, tc := range cases {
		gx, gy := Pointer{X: tc.x, Y: tc.y}.Cell(tc.scale)
		if gx != tc.wx || gy != tc.wy {
			t.Fatalf("(%d,%d)/%d: got (%d,%d), want (%d,%d)", tc.x, tc.y, tc.scale, gx, gy, tc.wx, tc.wy)
		}
	}
}

package powder

import "powder/internal/core"

// Brush turns one pointer position into spawns over a disc. Radius 0 with
// density 1 spawns exactly the pointed cell.
type Brush struct {
	Radius  int
	Density float64

	rng *core.RNG
}

// NewBrush builds a brush whose density sampling is seeded for repeatability.
func NewBrush(radius int, density float64, seed int64) *Brush {
	if radius < 0 {
		radius = 0
	}
	return &Brush{Radius: radius, Density: density, rng: core.NewRNG(seed)}
}

// Reseed restarts density sampling so a reset replays the same pattern.
func (b *Brush) Reseed(seed int64) { b.rng.Reseed(seed) }

// Footprint calls visit for every cell of the disc centred on (cx, cy),
// including cells outside any grid.
func (b *Brush) Footprint(cx, cy int, visit func(x, y int)) {
	r := b.Radius
	if r < 0 {
		r = 0
	}
	r2 := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r2 {
				visit(cx+dx, cy+dy)
			}
		}
	}
}

// Resize adds delta to the radius, never going below zero.
func (b *Brush) Resize(delta int) {
	b.Radius += delta
	if b.Radius < 0 {
		b.Radius = 0
	}
}

// Paint spawns c around (cx, cy) on dst and returns how many spawns were
// issued. Spawns falling outside the grid are left to dst to ignore.
func (b *Brush) Paint(dst core.Spawner, cx, cy int, c Cell) int {
	n := 0
	b.Footprint(cx, cy, func(x, y int) {
		if !b.rng.Chance(b.Density) {
			return
		}
		dst.Spawn(x, y, uint8(c))
		n++
	})
	return n
}

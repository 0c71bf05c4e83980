package powder

// Step applies one relaxation pass of the falling-material rule to g in place.
// It does not advance any frame counter; Simulation owns that.
//
// Traversal is part of the contract, not an optimisation:
//   - rows run bottom-up from Height()-2 to 0, so a cell that fell into a
//     lower row is never examined again in the same pass;
//   - columns always run left to right;
//   - frame parity only picks the preferred side when a cell has two equally
//     valid destinations: even frames try left first, odd frames right first.
//
// A water cell that slides right lands on the next column to be scanned; that
// column is skipped so no cell moves twice in one pass.
func Step(g *Grid, frame uint64) {
	leftFirst := frame%2 == 0
	w, h := g.Width(), g.Height()
	for y := h - 2; y >= 0; y-- {
		for x := 0; x < w; x++ {
			switch g.Get(x, y) {
			case Sand:
				fallSand(g, x, y, leftFirst)
			case Water:
				if flowWater(g, x, y, leftFirst) {
					x++
				}
			}
		}
	}
}

func sideOrder(leftFirst bool) [2]int {
	if leftFirst {
		return [2]int{-1, 1}
	}
	return [2]int{1, -1}
}

func fallSand(g *Grid, x, y int, leftFirst bool) {
	if g.Get(x, y+1) == Empty {
		g.move(x, y, x, y+1)
		return
	}
	slide(g, x, y, leftFirst)
}

// flowWater reports whether the cell moved one column right within its row.
func flowWater(g *Grid, x, y int, leftFirst bool) bool {
	if g.Get(x, y+1) == Empty {
		g.move(x, y, x, y+1)
		return false
	}
	// Lateral moves never change row.
	for _, dx := range sideOrder(leftFirst) {
		nx := x + dx
		if nx < 0 || nx >= g.Width() {
			continue
		}
		if g.Get(nx, y) == Empty {
			g.move(x, y, nx, y)
			return dx > 0
		}
	}
	slide(g, x, y, leftFirst)
	return false
}

// slide moves the cell diagonally down into the first empty neighbour on the
// preferred side. It reports whether the cell moved.
func slide(g *Grid, x, y int, leftFirst bool) bool {
	if y+1 >= g.Height() {
		return false
	}
	for _, dx := range sideOrder(leftFirst) {
		nx := x + dx
		if nx < 0 || nx >= g.Width() {
			continue
		}
		if g.Get(nx, y+1) == Empty {
			g.move(x, y, nx, y+1)
			return true
		}
	}
	return false
}

func (g *Grid) move(fromX, fromY, toX, toY int) {
	c := g.Get(fromX, fromY)
	g.Set(toX, toY, c)
	g.Set(fromX, fromY, Empty)
}

package powder

import "sort"

// Built-in scene names.
const (
	SceneEmpty   = "empty"
	SceneFloor   = "floor"
	SceneBasin   = "basin"
	SceneFunnel  = "funnel"
	SceneSandbox = "sandbox"
)

// Scene stamps an initial layout onto an empty grid.
type Scene func(g *Grid)

var scenes = map[string]Scene{
	SceneEmpty:   func(*Grid) {},
	SceneFloor:   stoneFloor,
	SceneBasin:   basin,
	SceneFunnel:  funnel,
	SceneSandbox: sandbox,
}

// HasScene reports whether name is a built-in scene.
func HasScene(name string) bool {
	_, ok := scenes[name]
	return ok
}

// SceneNames returns the built-in scene names in sorted order.
func SceneNames() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FillRect spawns r.Material over the rectangle, clipping to the grid.
func FillRect(g *Grid, r Rect) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			g.Spawn(x, y, r.Material)
		}
	}
}

func stoneFloor(g *Grid) {
	FillRect(g, Rect{X: 0, Y: g.Height() - 1, W: g.Width(), H: 1, Material: Stone})
}

func basin(g *Grid) {
	stoneFloor(g)
	FillRect(g, Rect{X: 0, Y: 0, W: 1, H: g.Height(), Material: Stone})
	FillRect(g, Rect{X: g.Width() - 1, Y: 0, W: 1, H: g.Height(), Material: Stone})
}

// funnel draws a V of stone that narrows to a gap above the grid centre.
func funnel(g *Grid) {
	stoneFloor(g)
	w, h := g.Width(), g.Height()
	cx, mid := w/2, h/2
	gap := w / 40
	if gap < 1 {
		gap = 1
	}
	for x := 0; x < w; x++ {
		d := x - cx
		if d < 0 {
			d = -d
		}
		if d < gap {
			continue
		}
		g.Spawn(x, mid-d, Stone)
	}
}

// sandbox is a basin holding a sand heap on the left and a pool of water on
// the right.
func sandbox(g *Grid) {
	basin(g)
	w, h := g.Width(), g.Height()
	floor := h - 2
	peak := w / 6
	for x := 1; x < w/3; x++ {
		d := x - peak
		if d < 0 {
			d = -d
		}
		top := floor - (peak - d)
		for y := top; y <= floor; y++ {
			g.Spawn(x, y, Sand)
		}
	}
	depth := h / 8
	if depth < 1 {
		depth = 1
	}
	FillRect(g, Rect{X: 2 * w / 3, Y: floor - depth + 1, W: w/3 - 1, H: depth, Material: Water})
}

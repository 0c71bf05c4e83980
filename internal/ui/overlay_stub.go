//go:build !ebiten

package ui

// Footprinter enumerates the cells a brush would touch.
type Footprinter interface {
	Footprint(cx, cy int, visit func(x, y int))
}

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(Footprinter, int) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, int, int, int, int) {}

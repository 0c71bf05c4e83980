//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Footprinter enumerates the cells a brush would touch.
type Footprinter interface {
	Footprint(cx, cy int, visit func(x, y int))
}

// Overlay previews the brush footprint under the cursor. B toggles it.
type Overlay struct {
	brush Footprinter
	scale int
	show  bool
	pixel *ebiten.Image
	tint  color.RGBA
}

// NewOverlay constructs an overlay for brush drawn at the given pixel scale.
func NewOverlay(brush Footprinter, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{brush: brush, scale: scale, show: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	o.tint = color.RGBA{R: 255, G: 255, B: 255, A: 72}
	return o
}

// Update handles the visibility toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		o.show = !o.show
	}
}

// Draw shades every footprint cell around grid cell (cx, cy) that lies inside
// a w*h grid.
func (o *Overlay) Draw(screen *ebiten.Image, cx, cy, w, h int) {
	if !o.show || o.brush == nil {
		return
	}
	s := float64(o.scale)
	o.brush.Footprint(cx, cy, func(x, y int) {
		if x < 0 || y < 0 || x >= w || y >= h {
			return
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(s, s)
		op.GeoM.Translate(float64(x)*s, float64(y)*s)
		op.ColorScale.ScaleWithColor(o.tint)
		screen.DrawImage(o.pixel, op)
	})
}

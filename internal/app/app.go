//go:build ebiten

package app

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"powder/internal/core"
	"powder/internal/render"
	"powder/internal/sims/powder"
	"powder/internal/ui"
)

type clearer interface {
	Clear()
}

// Game adapts a powder simulation to the ebiten.Game interface. ebiten polls
// input on the update goroutine, so spawns land between steps without a queue.
type Game struct {
	sim     core.Sim
	spawner core.Spawner
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	brush   *powder.Brush
	logger  *log.Logger
	pointer Pointer

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, opts Options) (*Game, error) {
	spawner, ok := sim.(core.Spawner)
	if !ok {
		return nil, fmt.Errorf("app: sim %q does not accept spawns", sim.Name())
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.HUDWidth < 0 {
		opts.HUDWidth = 0
	}
	if opts.Brush == nil {
		opts.Brush = powder.NewBrush(0, 1, opts.Seed)
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	size := sim.Size()
	return &Game{
		sim:      sim,
		spawner:  spawner,
		painter:  render.NewGridPainter(size.W, size.H, render.MaterialPalette()),
		hud:      ui.NewHUD(sim, opts.HUDWidth),
		overlay:  ui.NewOverlay(opts.Brush, opts.Scale),
		brush:    opts.Brush,
		logger:   opts.Logger,
		scale:    opts.Scale,
		hudWidth: opts.HUDWidth,
		seed:     opts.Seed,
	}, nil
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.brush.Reseed(seed)
	g.tickOnce = false
	g.logger.Debug("reset", "sim", g.sim.Name(), "seed", seed)
}

// Update handles per-frame input, then advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if c, ok := g.sim.(clearer); ok {
			c.Clear()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.brush.Resize(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.brush.Resize(-1)
	}

	g.pointer = samplePointer()
	if mat, ok := g.pointer.Material(); ok {
		x, y := g.pointer.Cell(g.scale)
		g.brush.Paint(g.spawner, x, y, mat)
	}

	g.overlay.Update()

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	g.hud.Update(g.status())
	return nil
}

func (g *Game) status() []string {
	lines := []string{fmt.Sprintf("brush r=%d d=%.2f", g.brush.Radius, g.brush.Density)}
	if g.paused {
		lines = append(lines, "paused")
	}
	return lines
}

func samplePointer() Pointer {
	x, y := ebiten.CursorPosition()
	return Pointer{
		X:      x,
		Y:      y,
		Left:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Right:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		Middle: ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		Shift:  ebiten.IsKeyPressed(ebiten.KeyShift),
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.sim.Size()
	g.painter.Blit(screen, g.sim.Cells(), g.scale)
	x, y := g.pointer.Cell(g.scale)
	g.overlay.Draw(screen, x, y, size.W, size.H)
	g.hud.Draw(screen, size.W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}

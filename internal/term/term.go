// Package term runs a powder simulation inside a terminal using tcell. Each
// grid cell is drawn as two terminal columns so cells look roughly square.
package term

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"powder/internal/core"
	"powder/internal/render"
	"powder/internal/sims/powder"
)

const (
	cellColumns   = 2
	frameInterval = time.Second / 60
	helpText      = "LMB sand  Shift+LMB stone  RMB water  MMB erase  [ ] brush  space pause  n step  r reset  c clear  q quit"
)

type command int

const (
	cmdNone command = iota
	cmdQuit
	cmdPause
	cmdStepOnce
	cmdReset
	cmdClear
	cmdResize
	cmdBrushGrow
	cmdBrushShrink
)

type clearer interface {
	Clear()
}

// Options configures a Host.
type Options struct {
	TPS    int
	Seed   int64
	Brush  *powder.Brush
	Logger *log.Logger
}

// pointer is the last mouse state reported by tcell. tcell only reports
// changes, so a held button keeps painting until a release arrives.
type pointer struct {
	x, y int
	mat  powder.Cell
	down bool
}

// Host owns the terminal loop. Input is read on a separate goroutine and only
// reaches the simulation through the held pointer state and a SpawnQueue,
// both consumed on the loop goroutine between steps.
type Host struct {
	sim     core.Sim
	spawner core.Spawner
	screen  tcell.Screen
	queue   powder.SpawnQueue
	brush   *powder.Brush
	pacer   *core.FixedStep
	logger  *log.Logger
	cmds    chan command
	styles  []tcell.Style
	seed    int64

	mu   sync.Mutex
	held pointer

	paused bool
	once   bool
}

// OpenScreen creates and initialises a terminal screen with mouse reporting.
// Callers must Fini the returned screen.
func OpenScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	return screen, nil
}

// WithScreen runs fn and finalises screen afterwards, also when fn panics, so
// the terminal never stays in raw mode.
func WithScreen(screen tcell.Screen, fn func() error) error {
	defer screen.Fini()
	return fn()
}

// GridSize returns the largest grid that fits the screen, capped at want.
// One row is reserved for the status line.
func GridSize(screen tcell.Screen, want core.Size) core.Size {
	sw, sh := screen.Size()
	size := want
	if limit := sw / cellColumns; size.W > limit {
		size.W = limit
	}
	if limit := sh - 1; size.H > limit {
		size.H = limit
	}
	if size.W < 1 {
		size.W = 1
	}
	if size.H < 1 {
		size.H = 1
	}
	return size
}

// New builds a host for sim, which must accept spawns.
func New(sim core.Sim, screen tcell.Screen, opts Options) (*Host, error) {
	spawner, ok := sim.(core.Spawner)
	if !ok {
		return nil, fmt.Errorf("term: sim %q does not accept spawns", sim.Name())
	}
	brush := opts.Brush
	if brush == nil {
		brush = powder.NewBrush(0, 1, opts.Seed)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	h := &Host{
		sim:     sim,
		spawner: spawner,
		screen:  screen,
		brush:   brush,
		pacer:   core.NewFixedStep(opts.TPS),
		logger:  logger,
		cmds:    make(chan command, 16),
		seed:    opts.Seed,
	}
	for _, col := range render.MaterialPalette() {
		bg := tcell.NewRGBColor(int32(col.R), int32(col.G), int32(col.B))
		h.styles = append(h.styles, tcell.StyleDefault.Background(bg))
	}
	return h, nil
}

// Run drives the loop until the user quits or ctx is cancelled. Each frame
// applies queued spawns, advances the sim when the pacer allows, then draws.
func (h *Host) Run(ctx context.Context) error {
	go h.pollEvents()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	h.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case cmd := <-h.cmds:
			if h.apply(cmd) {
				return nil
			}
		case <-ticker.C:
			h.frame(h.pacer.ShouldStep())
		}
	}
}

func (h *Host) pollEvents() {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		h.handleEvent(ev)
	}
}

// handleEvent runs on the input goroutine. It must not touch the sim or the
// brush.
func (h *Host) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		mat, down := mouseMaterial(ev)
		mx, my := ev.Position()
		h.mu.Lock()
		h.held = pointer{x: mx / cellColumns, y: my, mat: mat, down: down}
		h.mu.Unlock()
	case *tcell.EventKey:
		h.send(keyCommand(ev))
	case *tcell.EventResize:
		h.send(cmdResize)
	}
}

func (h *Host) send(cmd command) {
	if cmd == cmdNone {
		return
	}
	select {
	case h.cmds <- cmd:
	default:
		h.logger.Debug("dropping command, queue full", "command", cmd)
	}
}

// apply runs on the loop goroutine and reports whether the loop should stop.
func (h *Host) apply(cmd command) bool {
	switch cmd {
	case cmdQuit:
		return true
	case cmdPause:
		h.paused = !h.paused
	case cmdStepOnce:
		h.once = true
	case cmdReset:
		h.queue.Drain(discard{})
		h.sim.Reset(h.seed)
		h.brush.Reseed(h.seed)
		h.logger.Debug("reset", "sim", h.sim.Name())
	case cmdClear:
		if c, ok := h.sim.(clearer); ok {
			c.Clear()
		}
	case cmdResize:
		h.screen.Sync()
	case cmdBrushGrow:
		h.brush.Resize(1)
	case cmdBrushShrink:
		h.brush.Resize(-1)
	}
	h.draw()
	return false
}

func (h *Host) frame(tick bool) {
	h.mu.Lock()
	held := h.held
	h.mu.Unlock()
	if held.down {
		h.brush.Paint(&h.queue, held.x, held.y, held.mat)
	}
	h.queue.Drain(h.spawner)
	if tick && (!h.paused || h.once) {
		h.sim.Step()
		h.once = false
	}
	h.draw()
}

func (h *Host) draw() {
	size := h.sim.Size()
	cells := h.sim.Cells()
	last := len(h.styles) - 1
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			idx := int(cells[y*size.W+x])
			if idx > last {
				idx = last
			}
			style := h.styles[idx]
			for c := 0; c < cellColumns; c++ {
				h.screen.SetContent(x*cellColumns+c, y, ' ', nil, style)
			}
		}
	}
	h.drawStatus(size.H)
	h.screen.Show()
}

func (h *Host) drawStatus(row int) {
	sw, _ := h.screen.Size()
	line := h.statusLine()
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	col := 0
	for _, r := range line {
		if col >= sw {
			break
		}
		h.screen.SetContent(col, row, r, nil, style)
		col++
	}
	for ; col < sw; col++ {
		h.screen.SetContent(col, row, ' ', nil, style)
	}
}

func (h *Host) statusLine() string {
	var parts []string
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		snap := provider.Parameters()
		for _, key := range []string{"frame", "sand", "water", "stone"} {
			if p, ok := snap.Lookup(key); ok {
				parts = append(parts, fmt.Sprintf("%s %s", key, p.Value))
			}
		}
	}
	if h.paused {
		parts = append(parts, "[paused]")
	}
	parts = append(parts, helpText)
	return strings.Join(parts, "  ")
}

// mouseMaterial maps held buttons to the material they paint.
func mouseMaterial(ev *tcell.EventMouse) (powder.Cell, bool) {
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.ButtonPrimary != 0:
		if ev.Modifiers()&tcell.ModShift != 0 {
			return powder.Stone, true
		}
		return powder.Sand, true
	case buttons&tcell.ButtonSecondary != 0:
		return powder.Water, true
	case buttons&tcell.ButtonMiddle != 0:
		return powder.Empty, true
	}
	return powder.Empty, false
}

func keyCommand(ev *tcell.EventKey) command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit
	case tcell.KeyEnter:
		return cmdPause
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return cmdQuit
		case ' ':
			return cmdPause
		case 'n', 'N':
			return cmdStepOnce
		case 'r', 'R':
			return cmdReset
		case 'c', 'C':
			return cmdClear
		case ']':
			return cmdBrushGrow
		case '[':
			return cmdBrushShrink
		}
	}
	return cmdNone
}

type discard struct{}

func (discard) Spawn(int, int, uint8) {}

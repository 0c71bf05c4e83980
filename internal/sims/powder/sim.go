package powder

import "powder/internal/core"

// Simulation owns a grid and the frame counter that drives tie-break parity.
// It is not safe for concurrent use: spawns, steps and reads must happen in
// separate sequential phases (see SpawnQueue for hosts with input goroutines).
type Simulation struct {
	cfg   Config
	grid  *Grid
	frame uint64
}

// New returns a simulation with the provided dimensions using defaults.
func New(w, h int) *Simulation {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a simulation with every cell Empty and frame 0. The
// scene and layout are stamped by Reset.
func NewWithConfig(cfg Config) *Simulation {
	return &Simulation{cfg: cfg, grid: NewGrid(cfg.Width, cfg.Height)}
}

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return "powder" }

// Size returns the grid dimensions.
func (s *Simulation) Size() core.Size {
	return core.Size{W: s.grid.Width(), H: s.grid.Height()}
}

// Cells exposes the grid bytes for renderers.
func (s *Simulation) Cells() []uint8 { return s.grid.Bytes() }

// Grid returns the grid. Callers must not write to it while Step runs.
func (s *Simulation) Grid() *Grid { return s.grid }

// Frame returns the number of completed steps since the last Reset.
func (s *Simulation) Frame() uint64 { return s.frame }

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() Config { return s.cfg }

// Reset clears the grid, rewinds the frame counter and stamps the configured
// scene and layout. The rule is deterministic so seed is unused.
func (s *Simulation) Reset(seed int64) {
	s.grid.Clear()
	s.frame = 0
	if scene, ok := scenes[s.cfg.Scene]; ok {
		scene(s.grid)
	}
	for _, r := range s.cfg.Layout {
		FillRect(s.grid, r)
	}
}

// Clear empties every cell without touching the frame counter.
func (s *Simulation) Clear() { s.grid.Clear() }

// Step advances the simulation by one pass and increments the frame counter
// exactly once.
func (s *Simulation) Step() {
	Step(s.grid, s.frame)
	s.frame++
}

// Spawn overwrites (x, y) with material v. Out of range coordinates and
// undefined materials are ignored.
func (s *Simulation) Spawn(x, y int, v uint8) {
	s.grid.Spawn(x, y, Cell(v))
}

func init() {
	core.Register("powder", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}

// Package config loads host configuration for the powder toy from YAML files
// and command-line flags.
package config

import (
	"fmt"
	"strconv"

	"powder/internal/sims/powder"
)

// Brush controls how one pointer position expands into spawns.
type Brush struct {
	Radius  int     `yaml:"radius"`
	Density float64 `yaml:"density"`
}

// Rect is a rectangle of material stamped after the scene.
type Rect struct {
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
	W        int    `yaml:"w"`
	H        int    `yaml:"h"`
	Material string `yaml:"material"`
}

// Config is the full host configuration.
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Scale  int    `yaml:"scale"`
	TPS    int    `yaml:"tps"`
	Seed   int64  `yaml:"seed"`
	Scene  string `yaml:"scene"`
	Brush  Brush  `yaml:"brush"`
	Layout []Rect `yaml:"layout"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width:  240,
		Height: 135,
		Scale:  4,
		TPS:    30,
		Seed:   42,
		Scene:  powder.SceneEmpty,
		Brush:  Brush{Radius: 0, Density: 1},
	}
}

// Validate clamps out-of-range numbers to defaults and rejects unknown scenes
// and materials.
func (c *Config) Validate() error {
	def := Default()
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.Scale <= 0 {
		c.Scale = def.Scale
	}
	if c.TPS <= 0 {
		c.TPS = def.TPS
	}
	if c.Brush.Radius < 0 {
		c.Brush.Radius = 0
	}
	if c.Brush.Density < 0 {
		c.Brush.Density = 0
	}
	if c.Brush.Density > 1 {
		c.Brush.Density = 1
	}
	if c.Scene == "" {
		c.Scene = def.Scene
	}
	if !powder.HasScene(c.Scene) {
		return fmt.Errorf("unknown scene %q (available: %v)", c.Scene, powder.SceneNames())
	}
	if _, err := c.PowderLayout(); err != nil {
		return err
	}
	return nil
}

// PowderLayout converts the YAML layout into simulation rectangles.
func (c Config) PowderLayout() ([]powder.Rect, error) {
	rects := make([]powder.Rect, 0, len(c.Layout))
	for i, r := range c.Layout {
		mat, err := powder.ParseCell(r.Material)
		if err != nil {
			return nil, fmt.Errorf("layout[%d]: %w", i, err)
		}
		rects = append(rects, powder.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H, Material: mat})
	}
	return rects, nil
}

// SimOptions renders the simulation-relevant settings as the key/value map
// accepted by registered sim factories.
func (c Config) SimOptions() (map[string]string, error) {
	layout, err := c.PowderLayout()
	if err != nil {
		return nil, err
	}
	opts := map[string]string{
		"w":     strconv.Itoa(c.Width),
		"h":     strconv.Itoa(c.Height),
		"scene": c.Scene,
	}
	if len(layout) > 0 {
		opts["layout"] = powder.FormatLayout(layout)
	}
	return opts, nil
}

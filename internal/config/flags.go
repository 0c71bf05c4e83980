package config

import "github.com/spf13/pflag"

// Flags holds command-line overrides bound to a FlagSet. Only flags the user
// actually set are applied on top of a loaded Config.
type Flags struct {
	fs *pflag.FlagSet
	v  Config
}

// BindFlags attaches the configuration flags to fs.
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs, v: Default()}
	fs.IntVar(&f.v.Width, "width", f.v.Width, "grid width in cells")
	fs.IntVar(&f.v.Height, "height", f.v.Height, "grid height in cells")
	fs.IntVar(&f.v.Scale, "scale", f.v.Scale, "pixel scale multiplier")
	fs.IntVar(&f.v.TPS, "tps", f.v.TPS, "ticks per second")
	fs.Int64Var(&f.v.Seed, "seed", f.v.Seed, "seed for brush density sampling")
	fs.StringVar(&f.v.Scene, "scene", f.v.Scene, "initial scene")
	fs.IntVar(&f.v.Brush.Radius, "brush-radius", f.v.Brush.Radius, "brush radius in cells")
	fs.Float64Var(&f.v.Brush.Density, "brush-density", f.v.Brush.Density, "fraction of brush cells spawned per frame")
	return f
}

// Apply copies every changed flag into c.
func (f *Flags) Apply(c *Config) {
	if f.fs.Changed("width") {
		c.Width = f.v.Width
	}
	if f.fs.Changed("height") {
		c.Height = f.v.Height
	}
	if f.fs.Changed("scale") {
		c.Scale = f.v.Scale
	}
	if f.fs.Changed("tps") {
		c.TPS = f.v.TPS
	}
	if f.fs.Changed("seed") {
		c.Seed = f.v.Seed
	}
	if f.fs.Changed("scene") {
		c.Scene = f.v.Scene
	}
	if f.fs.Changed("brush-radius") {
		c.Brush.Radius = f.v.Brush.Radius
	}
	if f.fs.Changed("brush-density") {
		c.Brush.Density = f.v.Brush.Density
	}
}

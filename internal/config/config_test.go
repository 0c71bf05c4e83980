package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"powder/internal/sims/powder"
)

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "powder.yaml")
	data := []byte(`
width: 64
height: 48
scene: basin
brush:
  radius: 2
layout:
  - {x: 0, y: 20, w: 64, h: 1, material: stone}
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if source != path {
		t.Fatalf("source = %q, want %q", source, path)
	}
	if cfg.Width != 64 || cfg.Height != 48 || cfg.Scene != powder.SceneBasin {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Scale != 4 || cfg.TPS != 30 || cfg.Brush.Density != 1 {
		t.Fatalf("omitted keys must keep defaults, got %+v", cfg)
	}
	if cfg.Brush.Radius != 2 {
		t.Fatalf("brush radius = %d", cfg.Brush.Radius)
	}
	layout, err := cfg.PowderLayout()
	if err != nil || len(layout) != 1 || layout[0].Material != powder.Stone {
		t.Fatalf("layout = %+v, %v", layout, err)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("width: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed custom config")
	}
}

func TestLoadFallsBackToUserThenEmbedded(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, source, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if source != SourceEmbedded {
		t.Fatalf("source = %q, want embedded", source)
	}
	def := Default()
	if cfg.Width != def.Width || cfg.Height != def.Height || cfg.Scale != def.Scale || cfg.TPS != def.TPS || cfg.Scene != def.Scene || cfg.Brush != def.Brush {
		t.Fatalf("embedded defaults diverge from Default(): %+v", cfg)
	}

	userDir := filepath.Join(home, ".powder")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "config.yaml"), []byte("tps: 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, source, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TPS != 12 || source != filepath.Join(userDir, "config.yaml") {
		t.Fatalf("user config not used: tps=%d source=%q", cfg.TPS, source)
	}
}

func TestValidateClampsAndRejects(t *testing.T) {
	cfg := Config{Width: -1, Scale: 0, TPS: -5, Brush: Brush{Radius: -2, Density: 3}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	def := Default()
	if cfg.Width != def.Width || cfg.Height != def.Height || cfg.Scale != def.Scale || cfg.TPS != def.TPS {
		t.Fatalf("expected clamped defaults, got %+v", cfg)
	}
	if cfg.Brush.Radius != 0 || cfg.Brush.Density != 1 || cfg.Scene != powder.SceneEmpty {
		t.Fatalf("brush/scene not clamped: %+v", cfg)
	}

	bad := Default()
	bad.Scene = "volcano"
	if err := bad.Validate(); err == nil {
		t.Fatal("expected unknown scene to be rejected")
	}
	bad = Default()
	bad.Layout = []Rect{{W: 1, H: 1, Material: "lava"}}
	if err := bad.Validate(); err == nil {
		t.Fatal("expected unknown material to be rejected")
	}
}

func TestSimOptionsFeedFactory(t *testing.T) {
	cfg := Default()
	cfg.Width, cfg.Height = 10, 6
	cfg.Scene = powder.SceneFloor
	cfg.Layout = []Rect{{X: 2, Y: 0, W: 1, H: 1, Material: "sand"}}
	opts, err := cfg.SimOptions()
	if err != nil {
		t.Fatal(err)
	}
	pc := powder.FromMap(opts)
	if pc.Width != 10 || pc.Height != 6 || pc.Scene != powder.SceneFloor {
		t.Fatalf("unexpected powder config %+v", pc)
	}
	if len(pc.Layout) != 1 || pc.Layout[0].Material != powder.Sand {
		t.Fatalf("layout lost: %+v", pc.Layout)
	}
}

func TestFlagsOverrideOnlyChangedValues(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := BindFlags(fs)
	if err := fs.Parse([]string{"--width=32", "--scene=funnel", "--brush-density=0.25"}); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	cfg.Height = 99
	flags.Apply(&cfg)
	if cfg.Width != 32 || cfg.Scene != powder.SceneFunnel || cfg.Brush.Density != 0.25 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if cfg.Height != 99 {
		t.Fatalf("unchanged flag overwrote height: %d", cfg.Height)
	}
}

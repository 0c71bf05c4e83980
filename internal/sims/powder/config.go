package powder

import (
	"fmt"
	"strconv"
	"strings"
)

// Rect is a filled rectangle of one material stamped onto the grid after the
// scene. Parts outside the grid are clipped.
type Rect struct {
	X, Y     int
	W, H     int
	Material Cell
}

// Config controls the powder simulation dimensions and initial layout.
type Config struct {
	Width  int
	Height int

	Scene  string
	Layout []Rect
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  240,
		Height: 135,
		Scene:  SceneEmpty,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Malformed values leave the default in place.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["scene"]; ok {
		if HasScene(v) {
			c.Scene = v
		}
	}
	if v, ok := cfg["layout"]; ok {
		if parsed, err := ParseLayout(v); err == nil {
			c.Layout = parsed
		}
	}
	return c
}

// ParseLayout decodes rectangles written as "x,y,w,h,material" and separated
// by semicolons, e.g. "0,100,240,2,stone;10,10,5,5,sand".
func ParseLayout(s string) ([]Rect, error) {
	var rects []Rect
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.Split(part, ",")
		if len(fields) != 5 {
			return nil, fmt.Errorf("layout entry %q: want x,y,w,h,material", part)
		}
		var nums [4]int
		for i := 0; i < 4; i++ {
			n, err := strconv.Atoi(strings.TrimSpace(fields[i]))
			if err != nil {
				return nil, fmt.Errorf("layout entry %q: %w", part, err)
			}
			nums[i] = n
		}
		mat, err := ParseCell(fields[4])
		if err != nil {
			return nil, fmt.Errorf("layout entry %q: %w", part, err)
		}
		rects = append(rects, Rect{X: nums[0], Y: nums[1], W: nums[2], H: nums[3], Material: mat})
	}
	return rects, nil
}

// FormatLayout is the inverse of ParseLayout.
func FormatLayout(rects []Rect) string {
	parts := make([]string, 0, len(rects))
	for _, r := range rects {
		parts = append(parts, fmt.Sprintf("%d,%d,%d,%d,%s", r.X, r.Y, r.W, r.H, r.Material))
	}
	return strings.Join(parts, ";")
}

package core

import (
	"slices"
	"testing"
	"time"
)

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(4, 3)
	if !g.InBounds(3, 2) {
		t.Fatal("expected (3,2) to be in bounds")
	}
	for _, c := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 3}} {
		if g.InBounds(c[0], c[1]) {
			t.Fatalf("expected (%d,%d) to be out of bounds", c[0], c[1])
		}
	}

	g.Set(1, 2, 7)
	if got := g.At(1, 2); got != 7 {
		t.Fatalf("At(1,2) = %d, want 7", got)
	}
	if got := g.Cells()[g.Index(1, 2)]; got != 7 {
		t.Fatalf("backing slice holds %d, want 7", got)
	}
}

func TestByteGridOutOfRangePanics(t *testing.T) {
	g := NewByteGrid(2, 2)
	defer func() {
		if recover() == nil {
			t.Fatal("expected out of range write to panic")
		}
	}()
	g.Set(2, 0, 1)
}

func TestByteGridCloneIsIndependent(t *testing.T) {
	g := NewByteGrid(3, 3)
	g.Set(0, 0, 1)
	c := g.Clone()
	g.Set(0, 0, 2)
	if c.At(0, 0) != 1 {
		t.Fatal("clone must not share storage with the original")
	}
	g.Clear()
	if !slices.Equal(g.Cells(), make([]uint8, 9)) {
		t.Fatal("Clear must zero every cell")
	}
}

func TestNewByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -4)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d with %d cells", g.W, g.H, len(g.Cells()))
	}
}

func TestFixedStepBanksElapsedTime(t *testing.T) {
	now := time.Unix(0, 0)
	fs := NewFixedStepWithClock(10, func() time.Time { return now })

	if !fs.ShouldStep() {
		t.Fatal("first call should step")
	}
	if fs.ShouldStep() {
		t.Fatal("no time elapsed, should not step")
	}

	now = now.Add(250 * time.Millisecond)
	steps := 0
	for fs.ShouldStep() {
		steps++
	}
	if steps != 2 {
		t.Fatalf("expected 2 banked ticks after 250ms at 10 TPS, got %d", steps)
	}
	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("interval = %v, want 100ms", fs.Interval())
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	Register("zz-test", func(map[string]string) Sim { return nil })
	Register("aa-test", func(map[string]string) Sim { return nil })
	Register("", func(map[string]string) Sim { return nil })
	defer func() {
		delete(sims, "zz-test")
		delete(sims, "aa-test")
	}()

	names := SimNames()
	if !slices.IsSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
	if !slices.Contains(names, "aa-test") || !slices.Contains(names, "zz-test") {
		t.Fatalf("registered names missing: %v", names)
	}
	if slices.Contains(names, "") {
		t.Fatal("empty name must be rejected")
	}
}

func TestRNGChanceSaturates(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 100; i++ {
		if !r.Chance(1) || r.Chance(0) {
			t.Fatal("Chance must saturate at 0 and 1")
		}
	}
	a, b := NewRNG(9), NewRNG(9)
	for i := 0; i < 20; i++ {
		if a.IntN(1000) != b.IntN(1000) {
			t.Fatal("equal seeds must produce equal sequences")
		}
	}
}

func TestRNGReseedReplaysSequence(t *testing.T) {
	r := NewRNG(5)
	first := []int{r.IntN(1000), r.IntN(1000), r.IntN(1000)}
	r.Reseed(5)
	again := []int{r.IntN(1000), r.IntN(1000), r.IntN(1000)}
	if !slices.Equal(first, again) {
		t.Fatalf("reseed did not replay: %v vs %v", first, again)
	}
}

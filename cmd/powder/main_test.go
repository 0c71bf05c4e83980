package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"powder/internal/sims/powder"
)

func TestApplyOverrides(t *testing.T) {
	opts := map[string]string{"w": "10", "h": "10", "scene": "empty"}
	err := applyOverrides(opts, []string{"w=4", " scene=basin", "layout=0,0,1,1,sand"})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if opts["w"] != "4" || opts["scene"] != "basin" || opts["layout"] != "0,0,1,1,sand" {
		t.Fatalf("unexpected options %v", opts)
	}

	bad := [][]string{
		{"w"},
		{"w=0"},
		{"h=tall"},
		{"scene=volcano"},
		{"layout=1,2,3"},
		{"seed=4"},
	}
	for _, sets := range bad {
		if err := applyOverrides(map[string]string{}, sets); err == nil {
			t.Fatalf("expected error for %v", sets)
		}
	}
}

func TestSimulateReport(t *testing.T) {
	sim, err := newSim(map[string]string{"w": "3", "h": "3", "layout": "1,0,1,1,sand"}, 1)
	if err != nil {
		t.Fatalf("new sim: %v", err)
	}
	var buf bytes.Buffer
	simulate(&buf, sim, 4, true)
	out := buf.String()
	for _, want := range []string{"  Frame  4", "  sand   1", "  Width   3"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
	if !strings.HasSuffix(out, "...\n...\n.s.\n") {
		t.Fatalf("sand should rest on the bottom row:\n%s", out)
	}
}

func TestScenesListsEveryScene(t *testing.T) {
	var buf bytes.Buffer
	scenesCmd.SetOut(&buf)
	scenesCmd.Run(scenesCmd, nil)
	for name := range sceneDescriptions {
		if !strings.Contains(buf.String(), name) {
			t.Fatalf("scene %q missing from listing:\n%s", name, buf.String())
		}
	}
}

func TestSimulateCommandUsesConfigAndOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "powder.yaml")
	if err := os.WriteFile(path, []byte("width: 5\nheight: 3\nscene: floor\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"simulate", "--config", path, "--steps", "2", "--set", "w=4", "--ascii"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "  stone  4") {
		t.Fatalf("floor scene should hold 4 stone cells:\n%s", out)
	}
	if !strings.HasSuffix(out, "....\n....\n####\n") {
		t.Fatalf("unexpected grid:\n%s", out)
	}
}

func TestSweepScenesSortedAndConserving(t *testing.T) {
	base := map[string]string{"w": "24", "h": "16"}
	scenes := []string{"sandbox", "empty", "floor"}
	results, err := sweepScenes(base, 1, scenes, 50, 2)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, want := range []string{"empty", "floor", "sandbox"} {
		if results[i].Scene != want {
			t.Fatalf("result %d is %q, want %q", i, results[i].Scene, want)
		}
	}
	if !results[0].Settled || results[0].Steps != 1 {
		t.Fatalf("empty scene should settle immediately: %+v", results[0])
	}
	if results[1].Counts[powder.Stone] != 24 {
		t.Fatalf("floor scene should hold a 24 cell floor: %+v", results[1])
	}

	fresh, err := newSim(map[string]string{"w": "24", "h": "16", "scene": "sandbox"}, 1)
	if err != nil {
		t.Fatalf("new sim: %v", err)
	}
	if got, want := results[2].Counts, fresh.Grid().Counts(); got != want {
		t.Fatalf("sandbox counts changed while settling: %v vs %v", got, want)
	}

	var buf bytes.Buffer
	printSweep(&buf, results)
	if lines := strings.Count(buf.String(), "\n"); lines != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines:\n%s", lines, buf.String())
	}
}

func TestSweepUnknownSceneFallsBack(t *testing.T) {
	results, err := sweepScenes(map[string]string{"w": "4", "h": "4"}, 1, []string{"nope"}, 5, 0)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if len(results) != 1 || results[0].Scene != "empty" {
		t.Fatalf("unknown scene should fall back to empty: %+v", results)
	}
}

func TestRootHelpListsControls(t *testing.T) {
	for _, want := range []string{"brush size", "brush preview", "pause", "quit"} {
		if !strings.Contains(rootCmd.Long, want) {
			t.Fatalf("root help missing %q", want)
		}
	}
}

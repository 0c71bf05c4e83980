package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"powder/internal/sims/powder"
	"powder/internal/ui"
)

var (
	flagSteps int
	flagSets  []string
	flagASCII bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless for a number of steps and print stats",
	Long: `Run the simulation without a display and print the frame counter and
material counts. Overrides use the sim option keys w, h, scene and layout.

Examples:
  powder simulate --scene sandbox --steps 1000
  powder simulate --set w=40 --set h=20 --set layout="10,0,4,4,sand" --ascii`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, cfg, err := setup()
		if err != nil {
			return err
		}
		opts, err := cfg.SimOptions()
		if err != nil {
			return err
		}
		if err := applyOverrides(opts, flagSets); err != nil {
			return err
		}
		sim, err := newSim(opts, cfg.Seed)
		if err != nil {
			return err
		}
		logger.Debug("simulating", "steps", flagSteps, "options", opts)
		simulate(cmd.OutOrStdout(), sim, flagSteps, flagASCII)
		return nil
	},
}

func init() {
	simulateCmd.Flags().IntVar(&flagSteps, "steps", 300, "number of steps to run")
	simulateCmd.Flags().StringArrayVar(&flagSets, "set", nil, "sim option override in key=value form (repeatable)")
	simulateCmd.Flags().BoolVar(&flagASCII, "ascii", false, "print the final grid as text")
}

// applyOverrides validates key=value pairs and writes them into opts. Unlike
// the sim factory, which ignores bad values, the CLI rejects them.
func applyOverrides(opts map[string]string, sets []string) error {
	for _, kv := range sets {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("override %q: want key=value", kv)
		}
		key = strings.TrimSpace(key)
		switch key {
		case "w", "h":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return fmt.Errorf("override %s: want a positive integer, got %q", key, value)
			}
		case "scene":
			if !powder.HasScene(value) {
				return fmt.Errorf("override scene: unknown scene %q (available: %v)", value, powder.SceneNames())
			}
		case "layout":
			if _, err := powder.ParseLayout(value); err != nil {
				return fmt.Errorf("override layout: %w", err)
			}
		default:
			return fmt.Errorf("override %q: unknown key (want w, h, scene or layout)", key)
		}
		opts[key] = value
	}
	return nil
}

// simulate steps sim and writes the stats report, optionally with the grid.
func simulate(out io.Writer, sim *powder.Simulation, steps int, ascii bool) {
	for i := 0; i < steps; i++ {
		sim.Step()
	}
	for _, line := range ui.PanelLines(sim.Parameters(), nil) {
		fmt.Fprintln(out, line)
	}
	if ascii {
		fmt.Fprintln(out)
		fmt.Fprint(out, sim.Grid().String())
	}
}

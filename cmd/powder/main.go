// powder is a falling-sand toy: sand, water and stone on a grid, painted with
// the mouse in a window or a terminal.
//
// Usage:
//
//	powder run        - Open the GUI (requires -tags ebiten)
//	powder term       - Run inside the terminal
//	powder simulate   - Run headless and print stats
//	powder scenes     - List built-in scenes
//	powder sweep      - Settle every scene in parallel
//
// Global flags:
//
//	--config <path>     - YAML config file
//	--log-level <lvl>   - debug, info, warn or error
//	--width/--height    - grid size in cells
//	--scene <name>      - initial scene
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"powder/internal/config"
	"powder/internal/core"
	"powder/internal/sims/powder"
)

const simName = "powder"

var (
	flagConfig   string
	flagLogLevel string
	configFlags  *config.Flags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "powder",
	Short: "Falling sand, water and stone",
	Long: `powder simulates granular sand, flowing water and fixed stone on a
grid. Paint with the mouse, watch it settle.

Controls (run and term):
  LMB / Shift+LMB  - sand / stone
  RMB / MMB        - water / erase
  [ ]              - brush size
  B                - brush preview (run only)
  Space / N        - pause / single step
  R / C            - reset / clear
  Q / Esc          - quit

Examples:
  powder term --scene sandbox
  powder run --scale 3 --brush-radius 2
  powder simulate --scene funnel --steps 500 --ascii
  powder sweep --width 120 --height 80 --workers 4`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "path to a YAML config file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "log level: debug, info, warn, error")
	configFlags = config.BindFlags(pf)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scenesCmd)
	rootCmd.AddCommand(sweepCmd)
}

func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "powder",
		Level:           level,
	}), nil
}

// loadConfig resolves file config, applies changed flags and validates.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	configFlags.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config from %s: %w", source, err)
	}
	logger.Debug("config loaded", "source", source, "width", cfg.Width, "height", cfg.Height, "scene", cfg.Scene)
	return cfg, nil
}

// newSim builds the registered powder sim from opts and stamps its scene.
func newSim(opts map[string]string, seed int64) (*powder.Simulation, error) {
	factory, ok := core.Sims()[simName]
	if !ok {
		return nil, fmt.Errorf("sim %q is not registered (have %v)", simName, core.SimNames())
	}
	sim, ok := factory(opts).(*powder.Simulation)
	if !ok {
		return nil, fmt.Errorf("sim %q has unexpected type", simName)
	}
	sim.Reset(seed)
	return sim, nil
}

// setup is the shared prologue of the interactive commands.
func setup() (*log.Logger, config.Config, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, config.Config{}, err
	}
	cfg, err := loadConfig(logger)
	if err != nil {
		return nil, cfg, err
	}
	return logger, cfg, nil
}

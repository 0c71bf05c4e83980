package main

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"powder/internal/config"
	"powder/internal/core"
	"powder/internal/sims/powder"
	"powder/internal/term"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Run the simulation inside the terminal",
	Long: `Run in the terminal with tcell. Each cell is two columns wide; the grid
shrinks to fit the terminal and the bottom row shows frame and material counts.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, cfg, err := setup()
		if err != nil {
			return err
		}
		screen, err := term.OpenScreen()
		if err != nil {
			return err
		}
		var sim *powder.Simulation
		err = term.WithScreen(screen, func() error {
			var runErr error
			sim, runErr = runTerminal(cmd.Context(), screen, cfg, logger)
			return runErr
		})
		if err != nil {
			return err
		}
		logger.Info("terminal session ended", "frame", sim.Frame())
		return nil
	},
}

func runTerminal(ctx context.Context, screen tcell.Screen, cfg config.Config, logger *log.Logger) (*powder.Simulation, error) {
	size := term.GridSize(screen, core.Size{W: cfg.Width, H: cfg.Height})
	cfg.Width, cfg.Height = size.W, size.H
	opts, err := cfg.SimOptions()
	if err != nil {
		return nil, err
	}
	sim, err := newSim(opts, cfg.Seed)
	if err != nil {
		return nil, err
	}
	host, err := term.New(sim, screen, term.Options{
		TPS:    cfg.TPS,
		Seed:   cfg.Seed,
		Brush:  powder.NewBrush(cfg.Brush.Radius, cfg.Brush.Density, cfg.Seed),
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}
	return sim, host.Run(ctx)
}

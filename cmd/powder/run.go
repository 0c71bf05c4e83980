package main

import (
	"github.com/spf13/cobra"

	"powder/internal/sims/powder"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the GUI window",
	Long: `Open an ebiten window showing the grid with a stats panel on the right.
The GUI is only available in builds made with -tags ebiten.`,
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
		sim, err := newSim(opts, cfg.Seed)
		if err != nil {
			return err
		}
		brush := powder.NewBrush(cfg.Brush.Radius, cfg.Brush.Density, cfg.Seed)
		return runGUI(sim, cfg, brush, logger)
	},
}

//go:build ebiten

package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"powder/internal/app"
	"powder/internal/config"
	"powder/internal/sims/powder"
)

func runGUI(sim *powder.Simulation, cfg config.Config, brush *powder.Brush, logger *log.Logger) error {
	game, err := app.New(sim, app.Options{
		Scale:    cfg.Scale,
		Seed:     cfg.Seed,
		HUDWidth: app.DefaultHUDWidth,
		Brush:    brush,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("powder - " + cfg.Scene)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	logger.Info("starting GUI", "width", cfg.Width, "height", cfg.Height, "tps", cfg.TPS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	logger.Info("GUI closed", "frame", sim.Frame())
	return nil
}

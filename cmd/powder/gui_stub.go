//go:build !ebiten

package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"powder/internal/app"
	"powder/internal/config"
	"powder/internal/sims/powder"
)

func runGUI(_ *powder.Simulation, _ config.Config, _ *powder.Brush, logger *log.Logger) error {
	logger.Warn("GUI unavailable in this build, try `powder term`")
	return fmt.Errorf("%w: re-run with `go run -tags ebiten ./cmd/powder run`", app.ErrNoGUI)
}

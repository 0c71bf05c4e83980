package ui

import (
	"fmt"
	"strings"

	"powder/internal/core"
)

// ControlLines lists the key and mouse bindings shown under the stats.
var ControlLines = []string{
	"LMB        sand",
	"Shift+LMB  stone",
	"RMB        water",
	"MMB        erase",
	"[ ]        brush size",
	"B          brush preview",
	"Space      pause",
	"N          step",
	"R          reset",
	"C          clear",
	"Q/Esc      quit",
}

// PanelLines flattens a snapshot into the text rows of the stats panel: a
// header per group followed by "label  value" rows. Extra status rows are
// appended after the groups.
func PanelLines(snap core.ParameterSnapshot, status []string) []string {
	var lines []string
	for _, group := range snap.Groups {
		if len(group.Params) == 0 {
			continue
		}
		lines = append(lines, strings.ToUpper(group.Name))
		width := 0
		for _, p := range group.Params {
			if len(p.Label) > width {
				width = len(p.Label)
			}
		}
		for _, p := range group.Params {
			lines = append(lines, fmt.Sprintf("  %-*s  %s", width, p.Label, p.Value))
		}
	}
	if len(status) > 0 {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, status...)
	}
	return lines
}

// Title returns the panel heading for sim.
func Title(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Stats"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:] + " Stats"
}

package powder

import (
	"strconv"

	"powder/internal/core"
)

// Parameters reports dimensions, frame index and material counts.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	counts := s.grid.Counts()
	materials := make([]core.Parameter, 0, NumCells)
	for _, c := range Materials() {
		materials = append(materials, intParam(c.String(), c.String(), counts[c]))
	}
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", s.grid.Width()),
				intParam("h", "Height", s.grid.Height()),
				{Key: "scene", Label: "Scene", Type: core.ParamTypeString, Value: s.cfg.Scene},
			},
		},
		{
			Name: "Clock",
			Params: []core.Parameter{
				{Key: "frame", Label: "Frame", Type: core.ParamTypeInt, Value: strconv.FormatUint(s.frame, 10)},
			},
		},
		{
			Name:   "Materials",
			Params: materials,
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

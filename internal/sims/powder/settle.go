package powder

// SettleResult summarises a run that stops once a step moves nothing.
type SettleResult struct {
	Scene string
	// Steps is how many steps were executed.
	Steps int
	// LastActiveStep is the 1-based index of the last step that moved a cell,
	// or 0 if nothing ever moved.
	LastActiveStep int
	Settled        bool
	Counts         [NumCells]int
}

// Settle steps sim until a step leaves the grid unchanged or maxSteps is
// reached. A step that moves nothing moves nothing under either tie-break
// order, so a settled grid stays settled.
func Settle(sim *Simulation, maxSteps int) SettleResult {
	res := SettleResult{Scene: sim.cfg.Scene}
	prev := sim.grid.Clone()
	for i := 0; i < maxSteps; i++ {
		sim.Step()
		res.Steps++
		if sim.grid.Equal(prev) {
			res.Settled = true
			break
		}
		res.LastActiveStep = res.Steps
		copy(prev.Bytes(), sim.grid.Bytes())
	}
	res.Counts = sim.grid.Counts()
	return res
}

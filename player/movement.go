package player

// MovementCommand is the outcome of one movement step.
type MovementCommand struct {
	DX       float64 // kinematic translation along x, world units
	ImpulseY float64 // upward impulse, zero when no jump was issued
	Jumped   bool
}

// Movement turns the horizontal axis and jump edge into a translation and
// an optional jump impulse.
type Movement struct {
	BaseSpeed     float64
	RunMultiplier float64
	JumpImpulse   float64
}

// Speed returns the effective horizontal speed for the run modifier.
func (m Movement) Speed(run bool) float64 {
	if run {
		return m.BaseSpeed * m.RunMultiplier
	}
	return m.BaseSpeed
}

// Step computes this tick's movement. A jump is only honored on the ground;
// airborne jump edges are dropped, which rules out double jumps.
func (m Movement) Step(axis float64, run, grounded, jump bool, dt float64) MovementCommand {
	cmd := MovementCommand{
		DX: clampAxis(axis) * m.Speed(run) * dt,
	}
	if grounded && jump {
		cmd.ImpulseY = m.JumpImpulse
		cmd.Jumped = true
	}
	return cmd
}

package player

// GroundQuery answers overlap tests against the level geometry.
// Positions and radius are in world units (y-up).
type GroundQuery interface {
	Overlaps(x, y, radius float64, mask ...string) bool
}

// Anchor exposes a world position, e.g. the character's feet.
type Anchor interface {
	Position() (x, y float64)
}

// GroundContact is recomputed every tick except Jumping, which survives
// until the landed animation event clears it.
type GroundContact struct {
	Grounded bool
	Jumping  bool
}

// GroundSensor checks for ground under a fixed-radius circle.
type GroundSensor struct {
	Query  GroundQuery
	Radius float64
	Mask   []string
}

// Sense reports whether any collider matching the mask overlaps the
// sensor circle centred at (x, y).
func (s GroundSensor) Sense(x, y float64) bool {
	if s.Query == nil {
		return false
	}
	return s.Query.Overlaps(x, y, s.Radius, s.Mask...)
}

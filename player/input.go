package player

// Input is the per-tick input snapshot consumed by the controller.
// Jump and Attack are edges: true only on the tick the button went down.
type Input struct {
	Horizontal float64 // [-1, 1]
	Run        bool
	Jump       bool
	Attack     bool
}

func clampAxis(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

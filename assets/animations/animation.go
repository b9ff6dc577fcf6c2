package animations

// Animation steps through frame indices on a fixed tick cadence.
type Animation struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	SpeedInTps       float32 // how many ticks before next frame
	frameCounter     float32
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
	frozen           bool
}

// Update advances the counter by one tick. It reports true when playback
// entered a new frame on this tick.
func (a *Animation) Update() bool {
	if a.frozen {
		return false
	}
	a.frameCounter -= 1.0
	if a.frameCounter >= 0.0 {
		return false
	}
	a.frameCounter = a.SpeedInTps
	a.frame += a.Step
	if a.frame > a.Last {
		a.Looped = true
		if a.FreezeOnComplete {
			// Stay on last frame
			a.frame = a.Last
			a.frozen = true
			return false
		}
		// loop back to the beginning
		a.frame = a.First
	}
	if a.FreezeOnComplete && a.frame == a.Last {
		a.frozen = true
		a.Looped = true
	}
	return true
}

func (a *Animation) Frame() int {
	return a.frame
}

// Progress is the position of the current frame within the clip, 0 to 1.
func (a *Animation) Progress() float64 {
	if a.Last <= a.First {
		return 1
	}
	return float64(a.frame-a.First) / float64(a.Last-a.First)
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Looped = false
	a.frozen = false
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
		Looped:       false,
	}
}

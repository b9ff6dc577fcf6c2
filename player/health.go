package player

// Health tracks remaining life. Life is not clamped at zero; any value
// at or below zero means dead.
type Health struct {
	life float64
	max  float64
}

// NewHealth returns a Health with life set to max.
func NewHealth(max float64) *Health {
	return &Health{life: max, max: max}
}

// ApplyDamage subtracts amount from life. Damage after death is still
// accepted; it has no further effect on gameplay.
func (h *Health) ApplyDamage(amount float64) {
	if h == nil || amount <= 0 {
		return
	}
	h.life -= amount
}

// IsDead reports whether life has dropped to zero or below.
func (h *Health) IsDead() bool {
	return h == nil || h.life <= 0
}

func (h *Health) Life() float64 {
	if h == nil {
		return 0
	}
	return h.life
}

func (h *Health) Max() float64 {
	if h == nil {
		return 0
	}
	return h.max
}

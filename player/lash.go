package player

// LashState is the phase of the melee attack.
type LashState int

const (
	LashIdle LashState = iota
	LashLashing
	LashHitboxActive
)

func (s LashState) String() string {
	switch s {
	case LashIdle:
		return "idle"
	case LashLashing:
		return "lashing"
	case LashHitboxActive:
		return "hitbox_active"
	}
	return "unknown"
}

// Hitbox is the damage collider swung by the lash.
type Hitbox interface {
	SetEnabled(enabled bool)
}

// Lash sequences the melee attack. It has no timer; the animation system
// drives it through WeaponExtended and Finished.
type Lash struct {
	state    LashState
	hitbox   Hitbox
	animator AnimatorSink
}

// NewLash returns an idle Lash with its hitbox disabled.
func NewLash(hitbox Hitbox, animator AnimatorSink) *Lash {
	l := &Lash{hitbox: hitbox, animator: animator}
	if hitbox != nil {
		hitbox.SetEnabled(false)
	}
	return l
}

func (l *Lash) State() LashState {
	return l.state
}

// Press starts an attack when idle. Presses mid-attack are dropped, not
// queued. It reports whether an attack started.
func (l *Lash) Press() bool {
	if l.state != LashIdle {
		return false
	}
	l.state = LashLashing
	l.animator.SetBool(ParamLash, true)
	return true
}

// WeaponExtended opens the hitbox window. Only valid while lashing.
func (l *Lash) WeaponExtended() bool {
	if l.state != LashLashing {
		return false
	}
	l.state = LashHitboxActive
	l.hitbox.SetEnabled(true)
	return true
}

// Finished ends the attack from either active phase.
func (l *Lash) Finished() bool {
	if l.state == LashIdle {
		return false
	}
	l.state = LashIdle
	l.hitbox.SetEnabled(false)
	l.animator.SetBool(ParamLash, false)
	return true
}

// Cancel drops any attack in progress without touching the animator.
func (l *Lash) Cancel() {
	if l.state == LashIdle {
		return
	}
	l.state = LashIdle
	l.hitbox.SetEnabled(false)
}

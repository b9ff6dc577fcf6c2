package player

// Animator parameter names written by the controller.
const (
	ParamWalking = "walking"
	ParamRunning = "running"
	ParamJump    = "jump"
	ParamLash    = "lash"
	ParamDie     = "die"
)

// AnimationEvent is a notification posted by the animation system while a
// clip plays.
type AnimationEvent string

const (
	EventWeaponExtended         AnimationEvent = "weapon-extended"
	EventAttackFinished         AnimationEvent = "attack-finished"
	EventLanded                 AnimationEvent = "landed"
	EventDeathAnimationComplete AnimationEvent = "death-animation-complete"
)

// AnimatorSink receives parameter writes. Clip selection and playback
// belong to the implementation.
type AnimatorSink interface {
	SetFloat(name string, v float64)
	SetBool(name string, v bool)
}

package player

import (
	"errors"
	"math"
)

var (
	ErrNoBody        = errors.New("player: physics body is nil")
	ErrNoAnimator    = errors.New("player: animator is nil")
	ErrNoGroundQuery = errors.New("player: ground query is nil")
	ErrNoAnchor      = errors.New("player: foot anchor is nil")
	ErrNoHitbox      = errors.New("player: lash hitbox is nil")
)

// PhysicsBody executes movement. Translation is kinematic; the impulse is
// handed to the physics integration. Units are world units, y-up.
type PhysicsBody interface {
	Translate(dx, dy float64)
	ApplyImpulse(x, y float64)
}

// DefeatObserver is told once when the player dies.
type DefeatObserver interface {
	Defeated()
}

// DefeatFunc adapts a function to DefeatObserver.
type DefeatFunc func()

func (f DefeatFunc) Defeated() { f() }

// Despawner removes the character after a delay in seconds.
type Despawner interface {
	DespawnAfter(delay float64)
}

// Deps are the collaborators a Controller drives. Defeat and Despawner are
// optional; the rest are required.
type Deps struct {
	Body      PhysicsBody
	Animator  AnimatorSink
	Ground    GroundQuery
	Feet      Anchor
	Hitbox    Hitbox
	Defeat    DefeatObserver
	Despawner Despawner
}

// Settings holds the tunable scalars.
type Settings struct {
	Life          float64
	MoveSpeed     float64
	RunMultiplier float64
	JumpImpulse   float64
	GroundRadius  float64
	GroundMask    []string
	Damage        DamageTable
	RemovalDelay  float64 // seconds between death and removal
}

// DefaultSettings returns the stock tuning of the pirate.
func DefaultSettings() Settings {
	return Settings{
		Life:          100,
		MoveSpeed:     0.9,
		RunMultiplier: 2,
		JumpImpulse:   6.5,
		GroundRadius:  0.1,
		GroundMask:    []string{"ground"},
		Damage: DamageTable{
			HeavyMelee: 10,
			LightMelee: 1,
			Projectile: 10,
		},
		RemovalDelay: 1,
	}
}

// Controller runs the player's per-tick update. One instance per
// character; it owns the health, ground contact and lash state.
type Controller struct {
	deps     Deps
	settings Settings

	health   *Health
	sensor   GroundSensor
	movement Movement
	lash     *Lash
	ground   GroundContact

	lastDirection float64
	dead          bool
	deathClipDone bool
}

// New validates deps and returns an idle, grounded-unknown controller.
func New(deps Deps, settings Settings) (*Controller, error) {
	var errs []error
	if deps.Body == nil {
		errs = append(errs, ErrNoBody)
	}
	if deps.Animator == nil {
		errs = append(errs, ErrNoAnimator)
	}
	if deps.Ground == nil {
		errs = append(errs, ErrNoGroundQuery)
	}
	if deps.Feet == nil {
		errs = append(errs, ErrNoAnchor)
	}
	if deps.Hitbox == nil {
		errs = append(errs, ErrNoHitbox)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return &Controller{
		deps:     deps,
		settings: settings,
		health:   NewHealth(settings.Life),
		sensor: GroundSensor{
			Query:  deps.Ground,
			Radius: settings.GroundRadius,
			Mask:   settings.GroundMask,
		},
		movement: Movement{
			BaseSpeed:     settings.MoveSpeed,
			RunMultiplier: settings.RunMultiplier,
			JumpImpulse:   settings.JumpImpulse,
		},
		lash:          NewLash(deps.Hitbox, deps.Animator),
		lastDirection: 1,
	}, nil
}

// Tick runs one frame. Once dead the controller only finalizes its death
// the first time and does nothing afterwards.
func (c *Controller) Tick(in Input, dt float64) {
	if c.health.IsDead() {
		c.die()
		return
	}

	c.ground.Grounded = c.sensor.Sense(c.deps.Feet.Position())

	if in.Horizontal != 0 {
		c.lastDirection = math.Copysign(1, in.Horizontal)
	}

	cmd := c.movement.Step(in.Horizontal, in.Run, c.ground.Grounded, in.Jump, dt)
	if cmd.DX != 0 {
		c.deps.Body.Translate(cmd.DX, 0)
	}
	if cmd.Jumped {
		c.deps.Body.ApplyImpulse(0, cmd.ImpulseY)
		c.ground.Jumping = true
	}

	c.writeLocomotion(in)

	if in.Attack {
		c.lash.Press()
	}
}

func (c *Controller) writeLocomotion(in Input) {
	walking, running := 0.0, false
	if c.ground.Grounded {
		walking = math.Abs(clampAxis(in.Horizontal))
		running = in.Run
	}
	c.deps.Animator.SetFloat(ParamWalking, walking)
	c.deps.Animator.SetBool(ParamRunning, running)
	c.deps.Animator.SetBool(ParamJump, c.ground.Jumping)
}

func (c *Controller) die() {
	if c.dead {
		return
	}
	c.dead = true

	c.lash.Cancel()
	c.deps.Animator.SetFloat(ParamWalking, 0)
	c.deps.Animator.SetBool(ParamRunning, false)
	c.deps.Animator.SetBool(ParamLash, false)
	c.deps.Animator.SetBool(ParamDie, true)

	if c.deps.Defeat != nil {
		c.deps.Defeat.Defeated()
	}
	if c.deps.Despawner != nil {
		c.deps.Despawner.DespawnAfter(c.settings.RemovalDelay)
	}
}

// HandleAnimationEvent applies a notification from the animation system.
// Events other than death-animation-complete are dropped once the player
// is dead.
func (c *Controller) HandleAnimationEvent(evt AnimationEvent) {
	if evt == EventDeathAnimationComplete {
		if c.dead {
			c.deathClipDone = true
		}
		return
	}
	if c.health.IsDead() {
		return
	}

	switch evt {
	case EventWeaponExtended:
		c.lash.WeaponExtended()
	case EventAttackFinished:
		c.lash.Finished()
	case EventLanded:
		c.ground.Jumping = false
	}
}

// HandleContact applies a hazard contact. Contacts are ignored once dead.
func (c *Controller) HandleContact(ct Contact) {
	if c.health.IsDead() {
		return
	}
	if ct.Kind == HazardProjectile && ct.Projectile != nil {
		ct.Projectile.Remove()
	}
	c.ApplyDamage(c.settings.Damage.For(ct.Kind))
}

// ApplyDamage subtracts life. The death itself is handled on the next Tick.
func (c *Controller) ApplyDamage(amount float64) {
	c.health.ApplyDamage(amount)
}

// Alive reports whether life is still above zero.
func (c *Controller) Alive() bool { return !c.health.IsDead() }

func (c *Controller) Life() float64 { return c.health.Life() }

func (c *Controller) MaxLife() float64 { return c.health.Max() }

func (c *Controller) Grounded() bool { return c.ground.Grounded }

func (c *Controller) Jumping() bool { return c.ground.Jumping }

func (c *Controller) LashState() LashState { return c.lash.State() }

// Facing returns -1 or 1 for the last nonzero horizontal input.
func (c *Controller) Facing() float64 { return c.lastDirection }

// DeathFinalized reports whether the death side effects have run.
func (c *Controller) DeathFinalized() bool { return c.dead }

// DeathAnimationDone reports whether the die clip has played out.
func (c *Controller) DeathAnimationDone() bool { return c.deathClipDone }

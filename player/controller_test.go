package player

import (
	"errors"
	"math"
	"testing"
)

const dt = 1.0 / 60.0

func TestNewRequiresCollaborators(t *testing.T) {
	full := Deps{
		Body:     &fakeBody{},
		Animator: newFakeAnimator(),
		Ground:   &fakeGround{},
		Feet:     fakeAnchor{},
		Hitbox:   &fakeHitbox{},
	}

	tests := []struct {
		name  string
		strip func(d *Deps)
		want  error
	}{
		{"no_body", func(d *Deps) { d.Body = nil }, ErrNoBody},
		{"no_animator", func(d *Deps) { d.Animator = nil }, ErrNoAnimator},
		{"no_ground", func(d *Deps) { d.Ground = nil }, ErrNoGroundQuery},
		{"no_feet", func(d *Deps) { d.Feet = nil }, ErrNoAnchor},
		{"no_hitbox", func(d *Deps) { d.Hitbox = nil }, ErrNoHitbox},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := full
			tc.strip(&d)
			ctrl, err := New(d, DefaultSettings())
			if ctrl != nil {
				t.Fatalf("expected nil controller")
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}

	t.Run("all_missing", func(t *testing.T) {
		_, err := New(Deps{}, DefaultSettings())
		for _, want := range []error{ErrNoBody, ErrNoAnimator, ErrNoGroundQuery, ErrNoAnchor, ErrNoHitbox} {
			if !errors.Is(err, want) {
				t.Fatalf("joined error missing %v: %v", want, err)
			}
		}
	})

	t.Run("optional_observers", func(t *testing.T) {
		if _, err := New(full, DefaultSettings()); err != nil {
			t.Fatalf("defeat and despawner are optional: %v", err)
		}
	})
}

func TestTickMovesAndWritesLocomotion(t *testing.T) {
	r := newRig(t, true)

	r.ctrl.Tick(Input{Horizontal: 1, Run: true}, 1)

	if len(r.body.translations) != 1 {
		t.Fatalf("translations = %v", r.body.translations)
	}
	if got := r.body.translations[0][0]; math.Abs(got-1.8) > 1e-9 {
		t.Fatalf("dx = %v, want 1.8", got)
	}
	if r.animator.floats[ParamWalking] != 1 || !r.animator.bools[ParamRunning] {
		t.Fatalf("walking=%v running=%v", r.animator.floats[ParamWalking], r.animator.bools[ParamRunning])
	}
	if r.ground.calls != 1 || r.ground.radius != 0.1 {
		t.Fatalf("ground sensed %d times with radius %v", r.ground.calls, r.ground.radius)
	}
}

func TestTickAirborneZeroesLocomotion(t *testing.T) {
	r := newRig(t, false)

	r.ctrl.Tick(Input{Horizontal: -0.5, Run: true}, dt)

	if r.animator.floats[ParamWalking] != 0 || r.animator.bools[ParamRunning] {
		t.Fatalf("airborne should not walk/run: walking=%v running=%v",
			r.animator.floats[ParamWalking], r.animator.bools[ParamRunning])
	}
	if len(r.body.translations) != 1 {
		t.Fatalf("movement still applies in the air")
	}
	if r.ctrl.Facing() != -1 {
		t.Fatalf("facing = %v, want -1", r.ctrl.Facing())
	}
}

func TestFacingPersistsThroughZeroInput(t *testing.T) {
	r := newRig(t, true)
	r.ctrl.Tick(Input{Horizontal: -1}, dt)
	r.ctrl.Tick(Input{}, dt)
	r.ctrl.Tick(Input{}, dt)
	if r.ctrl.Facing() != -1 {
		t.Fatalf("facing = %v, want -1", r.ctrl.Facing())
	}
	if len(r.body.translations) != 1 {
		t.Fatalf("zero input should not translate, got %v", r.body.translations)
	}
}

func TestJumpRequiresGroundAndEdge(t *testing.T) {
	t.Run("airborne_edge", func(t *testing.T) {
		r := newRig(t, false)
		r.ctrl.Tick(Input{Jump: true}, dt)
		if len(r.body.impulses) != 0 {
			t.Fatalf("impulse issued while airborne")
		}
		if r.ctrl.Jumping() {
			t.Fatalf("Jumping changed without an impulse")
		}
	})

	t.Run("grounded_edge", func(t *testing.T) {
		r := newRig(t, true)
		r.ctrl.Tick(Input{Jump: true}, dt)
		if len(r.body.impulses) != 1 || r.body.impulses[0] != [2]float64{0, 6.5} {
			t.Fatalf("impulses = %v", r.body.impulses)
		}
		if !r.ctrl.Jumping() || !r.animator.bools[ParamJump] {
			t.Fatalf("jump flag not raised")
		}
	})

	t.Run("held_while_airborne", func(t *testing.T) {
		r := newRig(t, true)
		r.ctrl.Tick(Input{Jump: true}, dt)
		r.ground.grounded = false
		for i := 0; i < 10; i++ {
			r.ctrl.Tick(Input{Jump: true}, dt)
		}
		if len(r.body.impulses) != 1 {
			t.Fatalf("impulses = %d, want 1", len(r.body.impulses))
		}
	})
}

func TestLandedClearsJumping(t *testing.T) {
	r := newRig(t, true)
	r.ctrl.Tick(Input{Jump: true}, dt)

	// touching ground again does not clear it on its own
	r.ctrl.Tick(Input{}, dt)
	if !r.ctrl.Jumping() {
		t.Fatalf("jumping cleared without landed event")
	}

	r.ctrl.HandleAnimationEvent(EventLanded)
	r.ctrl.Tick(Input{}, dt)
	if r.ctrl.Jumping() || r.animator.bools[ParamJump] {
		t.Fatalf("landed should clear jumping")
	}
}

func TestAttackCycle(t *testing.T) {
	r := newRig(t, true)

	r.ctrl.Tick(Input{Attack: true}, dt)
	if r.ctrl.LashState() != LashLashing || r.animator.raises[ParamLash] != 1 {
		t.Fatalf("state=%v raises=%d", r.ctrl.LashState(), r.animator.raises[ParamLash])
	}

	r.ctrl.Tick(Input{Attack: true}, dt)
	if r.ctrl.LashState() != LashLashing || r.animator.raises[ParamLash] != 1 {
		t.Fatalf("second press changed state=%v raises=%d", r.ctrl.LashState(), r.animator.raises[ParamLash])
	}

	r.ctrl.HandleAnimationEvent(EventWeaponExtended)
	if r.ctrl.LashState() != LashHitboxActive || !r.hitbox.enabled {
		t.Fatalf("state=%v hitbox=%v", r.ctrl.LashState(), r.hitbox.enabled)
	}

	r.ctrl.Tick(Input{Attack: true}, dt)
	if r.ctrl.LashState() != LashHitboxActive {
		t.Fatalf("press during hitbox window changed state to %v", r.ctrl.LashState())
	}

	r.ctrl.HandleAnimationEvent(EventAttackFinished)
	if r.ctrl.LashState() != LashIdle || r.hitbox.enabled || r.animator.bools[ParamLash] {
		t.Fatalf("attack not reset")
	}

	r.ctrl.Tick(Input{Attack: true}, dt)
	if r.animator.raises[ParamLash] != 2 {
		t.Fatalf("a new attack should raise lash again, raises=%d", r.animator.raises[ParamLash])
	}
}

func TestHeavyMeleeThreeTimes(t *testing.T) {
	r := newRig(t, true)
	for i := 0; i < 3; i++ {
		r.ctrl.HandleContact(Contact{Kind: HazardHeavyMelee})
		r.ctrl.Tick(Input{}, dt)
	}
	if r.ctrl.Life() != 70 || !r.ctrl.Alive() {
		t.Fatalf("life=%v alive=%v", r.ctrl.Life(), r.ctrl.Alive())
	}
	if r.defeats != 0 {
		t.Fatalf("defeat fired while alive")
	}
}

func TestContactDamageTable(t *testing.T) {
	removed := 0
	tests := []struct {
		name    string
		contact Contact
		want    float64
	}{
		{"heavy", Contact{Kind: HazardHeavyMelee}, 90},
		{"light", Contact{Kind: HazardLightMelee}, 99},
		{"projectile", Contact{Kind: HazardProjectile, Projectile: RemoverFunc(func() { removed++ })}, 90},
		{"unknown", Contact{Kind: HazardNone}, 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newRig(t, true)
			r.ctrl.HandleContact(tc.contact)
			if r.ctrl.Life() != tc.want {
				t.Fatalf("life = %v, want %v", r.ctrl.Life(), tc.want)
			}
		})
	}
	if removed != 1 {
		t.Fatalf("projectile removed %d times, want 1", removed)
	}
}

func TestDeathRunsOnce(t *testing.T) {
	settings := DefaultSettings()
	settings.Life = 5
	r := newRig(t, true)
	ctrl, err := New(r.ctrl.deps, settings)
	if err != nil {
		t.Fatal(err)
	}
	r.ctrl = ctrl

	r.ctrl.Tick(Input{Attack: true}, dt)
	r.ctrl.HandleAnimationEvent(EventWeaponExtended)

	r.ctrl.ApplyDamage(10)
	if r.ctrl.Life() != -5 || r.ctrl.Alive() {
		t.Fatalf("life=%v alive=%v", r.ctrl.Life(), r.ctrl.Alive())
	}

	moves := len(r.body.translations)
	for i := 0; i < 5; i++ {
		r.ctrl.Tick(Input{Horizontal: 1, Jump: true, Attack: true}, dt)
	}

	if r.defeats != 1 {
		t.Fatalf("defeat fired %d times, want 1", r.defeats)
	}
	if len(r.despawner.delays) != 1 || r.despawner.delays[0] != 1 {
		t.Fatalf("despawn scheduled %v", r.despawner.delays)
	}
	if len(r.body.translations) != moves || len(r.body.impulses) != 0 {
		t.Fatalf("dead player moved")
	}
	if !r.animator.bools[ParamDie] || r.animator.raises[ParamDie] != 1 {
		t.Fatalf("die trigger raises=%d", r.animator.raises[ParamDie])
	}
	if r.animator.floats[ParamWalking] != 0 || r.animator.bools[ParamRunning] || r.animator.bools[ParamLash] {
		t.Fatalf("locomotion/attack flags not cleared")
	}
	if r.hitbox.enabled || r.ctrl.LashState() != LashIdle {
		t.Fatalf("hitbox still live after death")
	}
	if !r.ctrl.DeathFinalized() {
		t.Fatalf("death not finalized")
	}
}

func TestDeadIgnoresContactsAndEvents(t *testing.T) {
	r := newRig(t, true)
	r.ctrl.Tick(Input{Jump: true}, dt)
	r.ctrl.ApplyDamage(100)
	r.ctrl.Tick(Input{}, dt)

	removed := false
	r.ctrl.HandleContact(Contact{Kind: HazardProjectile, Projectile: RemoverFunc(func() { removed = true })})
	if removed || r.ctrl.Life() != 0 {
		t.Fatalf("dead player reacted to contact: removed=%v life=%v", removed, r.ctrl.Life())
	}

	r.ctrl.HandleAnimationEvent(EventLanded)
	if !r.ctrl.Jumping() {
		t.Fatalf("landed should be ignored after death")
	}

	// direct damage is accepted but inert
	r.ctrl.ApplyDamage(3)
	if r.ctrl.Life() != -3 || r.ctrl.Alive() {
		t.Fatalf("life=%v alive=%v", r.ctrl.Life(), r.ctrl.Alive())
	}

	if r.ctrl.DeathAnimationDone() {
		t.Fatalf("death clip not reported yet")
	}
	r.ctrl.HandleAnimationEvent(EventDeathAnimationComplete)
	if !r.ctrl.DeathAnimationDone() {
		t.Fatalf("death clip completion not recorded")
	}
}

func TestLifeIsInitialMinusDamageSum(t *testing.T) {
	r := newRig(t, true)
	damages := []float64{1, 10, 1, 1, 10}
	sum := 0.0
	for i, d := range damages {
		if i%2 == 0 {
			r.ctrl.Tick(Input{Horizontal: 1}, dt)
		}
		r.ctrl.ApplyDamage(d)
		sum += d
	}
	if r.ctrl.Life() != 100-sum {
		t.Fatalf("life = %v, want %v", r.ctrl.Life(), 100-sum)
	}
}

package player

import "testing"

func TestLashTransitions(t *testing.T) {
	hb := &fakeHitbox{}
	anim := newFakeAnimator()
	l := NewLash(hb, anim)

	if l.State() != LashIdle {
		t.Fatalf("initial state = %v", l.State())
	}
	if l.WeaponExtended() {
		t.Fatalf("weapon-extended while idle must be ignored")
	}
	if hb.enabled {
		t.Fatalf("hitbox enabled without lashing first")
	}

	if !l.Press() {
		t.Fatalf("press from idle should start a lash")
	}
	if l.State() != LashLashing || !anim.bools[ParamLash] || hb.enabled {
		t.Fatalf("after press: state=%v lash=%v hitbox=%v", l.State(), anim.bools[ParamLash], hb.enabled)
	}

	if !l.WeaponExtended() {
		t.Fatalf("weapon-extended while lashing should activate hitbox")
	}
	if l.State() != LashHitboxActive || !hb.enabled {
		t.Fatalf("after extend: state=%v hitbox=%v", l.State(), hb.enabled)
	}

	if !l.Finished() {
		t.Fatalf("finish should return to idle")
	}
	if l.State() != LashIdle || hb.enabled || anim.bools[ParamLash] {
		t.Fatalf("after finish: state=%v hitbox=%v lash=%v", l.State(), hb.enabled, anim.bools[ParamLash])
	}
}

func TestLashIgnoresPressMidAttack(t *testing.T) {
	for _, extend := range []bool{false, true} {
		name := "lashing"
		if extend {
			name = "hitbox_active"
		}
		t.Run(name, func(t *testing.T) {
			anim := newFakeAnimator()
			l := NewLash(&fakeHitbox{}, anim)
			l.Press()
			if extend {
				l.WeaponExtended()
			}
			before := l.State()
			if l.Press() {
				t.Fatalf("press mid-attack should be ignored")
			}
			if l.State() != before {
				t.Fatalf("state changed from %v to %v", before, l.State())
			}
			if anim.raises[ParamLash] != 1 {
				t.Fatalf("lash raised %d times, want 1", anim.raises[ParamLash])
			}
		})
	}
}

func TestLashFinishedWhileLashing(t *testing.T) {
	hb := &fakeHitbox{}
	anim := newFakeAnimator()
	l := NewLash(hb, anim)
	l.Press()

	if !l.Finished() {
		t.Fatalf("finish while lashing should still reset")
	}
	if l.State() != LashIdle || anim.bools[ParamLash] || hb.enabled {
		t.Fatalf("not reset: state=%v lash=%v hitbox=%v", l.State(), anim.bools[ParamLash], hb.enabled)
	}
	if l.Finished() {
		t.Fatalf("finish while idle should be a no-op")
	}
}

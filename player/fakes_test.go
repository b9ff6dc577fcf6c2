package player

import "testing"

type fakeBody struct {
	translations [][2]float64
	impulses     [][2]float64
}

func (b *fakeBody) Translate(dx, dy float64) {
	b.translations = append(b.translations, [2]float64{dx, dy})
}

func (b *fakeBody) ApplyImpulse(x, y float64) {
	b.impulses = append(b.impulses, [2]float64{x, y})
}

type fakeAnimator struct {
	floats map[string]float64
	bools  map[string]bool
	// raises counts false->true transitions of bool params
	raises map[string]int
}

func newFakeAnimator() *fakeAnimator {
	return &fakeAnimator{
		floats: map[string]float64{},
		bools:  map[string]bool{},
		raises: map[string]int{},
	}
}

func (a *fakeAnimator) SetFloat(name string, v float64) { a.floats[name] = v }

func (a *fakeAnimator) SetBool(name string, v bool) {
	if v && !a.bools[name] {
		a.raises[name]++
	}
	a.bools[name] = v
}

type fakeGround struct {
	grounded bool
	calls    int
	lastMask []string
	radius   float64
}

func (g *fakeGround) Overlaps(x, y, radius float64, mask ...string) bool {
	g.calls++
	g.lastMask = mask
	g.radius = radius
	return g.grounded
}

type fakeAnchor struct{ x, y float64 }

func (a fakeAnchor) Position() (float64, float64) { return a.x, a.y }

type fakeHitbox struct {
	enabled bool
	toggles int
}

func (h *fakeHitbox) SetEnabled(enabled bool) {
	if h.enabled != enabled {
		h.toggles++
	}
	h.enabled = enabled
}

type fakeDespawner struct {
	delays []float64
}

func (d *fakeDespawner) DespawnAfter(delay float64) { d.delays = append(d.delays, delay) }

type rig struct {
	body      *fakeBody
	animator  *fakeAnimator
	ground    *fakeGround
	hitbox    *fakeHitbox
	despawner *fakeDespawner
	defeats   int
	ctrl      *Controller
}

func newRig(t *testing.T, grounded bool) *rig {
	t.Helper()
	r := &rig{
		body:      &fakeBody{},
		animator:  newFakeAnimator(),
		ground:    &fakeGround{grounded: grounded},
		hitbox:    &fakeHitbox{},
		despawner: &fakeDespawner{},
	}
	ctrl, err := New(Deps{
		Body:      r.body,
		Animator:  r.animator,
		Ground:    r.ground,
		Feet:      fakeAnchor{x: 1, y: 0},
		Hitbox:    r.hitbox,
		Defeat:    DefeatFunc(func() { r.defeats++ }),
		Despawner: r.despawner,
	}, DefaultSettings())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r.ctrl = ctrl
	return r
}

package player

import "testing"

func TestGroundSensorSense(t *testing.T) {
	g := &fakeGround{grounded: true}
	s := GroundSensor{Query: g, Radius: 0.1, Mask: []string{"ground"}}

	if !s.Sense(0, 0) {
		t.Fatalf("expected grounded")
	}
	if g.radius != 0.1 || len(g.lastMask) != 1 || g.lastMask[0] != "ground" {
		t.Fatalf("query got radius=%v mask=%v", g.radius, g.lastMask)
	}

	g.grounded = false
	if s.Sense(0, 0) {
		t.Fatalf("expected not grounded")
	}

	var empty GroundSensor
	if empty.Sense(0, 0) {
		t.Fatalf("sensor without query must report not grounded")
	}
}

func TestParseHazardKind(t *testing.T) {
	tests := map[string]HazardKind{
		"heavy_melee": HazardHeavyMelee,
		"light_melee": HazardLightMelee,
		"projectile":  HazardProjectile,
		"lava":        HazardNone,
	}
	for in, want := range tests {
		if got := ParseHazardKind(in); got != want {
			t.Errorf("ParseHazardKind(%q) = %v, want %v", in, got, want)
		}
		if want != HazardNone && want.String() != in {
			t.Errorf("%v.String() = %q", want, want.String())
		}
	}
}

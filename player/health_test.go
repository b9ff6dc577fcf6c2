package player

import "testing"

func TestHealthApplyDamage(t *testing.T) {
	tests := []struct {
		name     string
		max      float64
		damages  []float64
		wantLife float64
		wantDead bool
	}{
		{"no_damage", 100, nil, 100, false},
		{"three_heavy_hits", 100, []float64{10, 10, 10}, 70, false},
		{"mixed", 100, []float64{10, 1, 10, 1}, 78, false},
		{"exact_zero", 20, []float64{10, 10}, 0, true},
		{"overkill_goes_negative", 5, []float64{10}, -5, true},
		{"non_positive_ignored", 100, []float64{0, -5}, 100, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHealth(tc.max)
			for _, d := range tc.damages {
				h.ApplyDamage(d)
			}
			if h.Life() != tc.wantLife {
				t.Fatalf("life = %v, want %v", h.Life(), tc.wantLife)
			}
			if h.IsDead() != tc.wantDead {
				t.Fatalf("IsDead = %v, want %v", h.IsDead(), tc.wantDead)
			}
		})
	}
}

func TestHealthDeathIsMonotonic(t *testing.T) {
	h := NewHealth(5)
	h.ApplyDamage(10)
	if !h.IsDead() {
		t.Fatalf("expected dead")
	}
	for i := 0; i < 3; i++ {
		h.ApplyDamage(1)
		if !h.IsDead() {
			t.Fatalf("dead flipped back after %d more hits", i+1)
		}
	}
	if h.Life() != -8 {
		t.Fatalf("post-death damage should still subtract, life = %v", h.Life())
	}
}

package player

import (
	"math"
	"testing"
)

func TestMovementStep(t *testing.T) {
	m := Movement{BaseSpeed: 0.9, RunMultiplier: 2, JumpImpulse: 6.5}

	tests := []struct {
		name       string
		axis       float64
		run        bool
		grounded   bool
		jump       bool
		dt         float64
		wantDX     float64
		wantJumped bool
	}{
		{"walk_right", 1, false, true, false, 1, 0.9, false},
		{"run_left", -1, true, true, false, 0.5, -0.9, false},
		{"half_axis", 0.5, false, false, false, 2, 0.9, false},
		{"axis_clamped", 3, false, true, false, 1, 0.9, false},
		{"grounded_jump", 0, false, true, true, 1, 0, true},
		{"airborne_jump_ignored", 0, false, false, true, 1, 0, false},
		{"grounded_no_edge", 0, false, true, false, 1, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd := m.Step(tc.axis, tc.run, tc.grounded, tc.jump, tc.dt)
			if math.Abs(cmd.DX-tc.wantDX) > 1e-9 {
				t.Fatalf("DX = %v, want %v", cmd.DX, tc.wantDX)
			}
			if cmd.Jumped != tc.wantJumped {
				t.Fatalf("Jumped = %v, want %v", cmd.Jumped, tc.wantJumped)
			}
			if tc.wantJumped && cmd.ImpulseY != 6.5 {
				t.Fatalf("ImpulseY = %v, want 6.5", cmd.ImpulseY)
			}
			if !tc.wantJumped && cmd.ImpulseY != 0 {
				t.Fatalf("unexpected impulse %v", cmd.ImpulseY)
			}
		})
	}
}

package components

import (
	cfg "github.com/automoto/piratecave/config"
	"github.com/yohamta/donburi"
)

// BodyData is a dynamic body moved by UpdatePhysics. Velocities and queued
// translations are in pixels (y-down); the methods take world units (y-up).
type BodyData struct {
	VelX, VelY float64 // pixels per second
	Mass       float64
	Gravity    float64 // pixels per second squared

	// Translation queued this frame, consumed by the physics step
	PendingX, PendingY float64

	// Frozen bodies keep their position (dying characters)
	Frozen bool
}

// Translate queues a kinematic displacement.
func (b *BodyData) Translate(dx, dy float64) {
	b.PendingX += cfg.ToPixels(dx)
	b.PendingY -= cfg.ToPixels(dy)
}

// ApplyImpulse changes velocity by impulse / mass.
func (b *BodyData) ApplyImpulse(x, y float64) {
	m := b.Mass
	if m <= 0 {
		m = 1
	}
	b.VelX += cfg.ToPixels(x / m)
	b.VelY -= cfg.ToPixels(y / m)
}

var Body = donburi.NewComponentType[BodyData]()

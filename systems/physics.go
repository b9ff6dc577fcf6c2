package systems

import (
	"math"

	"github.com/automoto/piratecave/components"
	cfg "github.com/automoto/piratecave/config"
	"github.com/automoto/piratecave/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	// contactEpsilon absorbs float drift after snapping onto a surface.
	contactEpsilon = 0.01
	// broadphasePad widens the cell lookup so a body resting flush on a
	// cell boundary still sees the surface under it.
	broadphasePad = 2.0
)

// UpdatePhysics integrates gravity, applies queued translations and
// resolves bodies against solid objects, horizontal axis first.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := cfg.DeltaTime()
	maxFall := cfg.ToPixels(cfg.Physics.MaxFallSpeed)

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		obj := components.Object.Get(e).Object

		// Dying bodies freeze in place
		if body.Frozen {
			body.PendingX, body.PendingY = 0, 0
			body.VelX, body.VelY = 0, 0
			return
		}

		body.VelY += body.Gravity * dt
		if body.VelY > maxFall {
			body.VelY = maxFall
		}

		dx := body.PendingX + body.VelX*dt
		dy := body.PendingY + body.VelY*dt
		body.PendingX, body.PendingY = 0, 0

		if dx != 0 {
			moved := sweepX(obj, dx)
			if moved != dx {
				body.VelX = 0
			}
			obj.X += moved
			obj.Update()
		}

		if dy != 0 {
			moved := sweepY(obj, dy)
			if moved != dy {
				body.VelY = 0
			}
			obj.Y += moved
			obj.Update()
		}
	})
}

// sweepX clamps a horizontal move so obj stops flush against the nearest
// solid in its path.
func sweepX(obj *resolv.Object, dx float64) float64 {
	check := obj.Check(dx+math.Copysign(broadphasePad, dx), 0, tags.ResolvSolid)
	if check == nil {
		return dx
	}
	for _, o := range check.Objects {
		if o.Y >= obj.Y+obj.H-contactEpsilon || o.Y+o.H <= obj.Y+contactEpsilon {
			continue
		}
		if dx > 0 && o.X >= obj.X+obj.W-contactEpsilon {
			dx = math.Min(dx, o.X-(obj.X+obj.W))
		}
		if dx < 0 && o.X+o.W <= obj.X+contactEpsilon {
			dx = math.Max(dx, o.X+o.W-obj.X)
		}
	}
	return dx
}

// sweepY is sweepX for the vertical axis.
func sweepY(obj *resolv.Object, dy float64) float64 {
	check := obj.Check(0, dy+math.Copysign(broadphasePad, dy), tags.ResolvSolid)
	if check == nil {
		return dy
	}
	for _, o := range check.Objects {
		if o.X >= obj.X+obj.W-contactEpsilon || o.X+o.W <= obj.X+contactEpsilon {
			continue
		}
		if dy > 0 && o.Y >= obj.Y+obj.H-contactEpsilon {
			dy = math.Min(dy, o.Y-(obj.Y+obj.H))
		}
		if dy < 0 && o.Y+o.H <= obj.Y+contactEpsilon {
			dy = math.Max(dy, o.Y+o.H-obj.Y)
		}
	}
	return dy
}

// overlaps is a strict AABB test; resolv's Check only narrows by cell.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

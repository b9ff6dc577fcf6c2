package systems

import (
	"log"

	"github.com/automoto/piratecave/components"
	"github.com/automoto/piratecave/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLash keeps each player's lash reach in front of them and, while
// the hitbox is enabled, cuts projectiles and damages emitters.
func UpdateLash(ecs *ecs.ECS) {
	var broken []*donburi.Entry

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		ctrl := components.Player.Get(e).Controller
		hb := components.LashHitbox.Get(e)
		body := components.Object.Get(e).Object

		if ctrl.Facing() >= 0 {
			hb.Object.X = body.X + body.W
		} else {
			hb.Object.X = body.X - hb.Object.W
		}
		hb.Object.Y = body.Y + body.H/2 - hb.Object.H/2
		hb.Object.Update()

		if !hb.Enabled {
			return
		}

		check := hb.Object.Check(0, 0, tags.ResolvProjectile, tags.ResolvEmitter)
		if check == nil {
			return
		}
		for _, o := range check.Objects {
			if !overlaps(hb.Object, o) {
				continue
			}
			target, ok := o.Data.(*donburi.Entry)
			if !ok || !target.Valid() || hb.HitEntities[target] {
				continue
			}
			hb.HitEntities[target] = true

			switch {
			case target.HasComponent(components.Projectile):
				components.Projectile.Get(target).Removed = true
			case target.HasComponent(components.Health):
				hp := components.Health.Get(target)
				hp.Current--
				if hp.Current <= 0 {
					broken = append(broken, target)
				}
			}
		}
	})

	for _, e := range broken {
		log.Printf("[lash] emitter destroyed")
		removeEntity(ecs, e)
	}
}

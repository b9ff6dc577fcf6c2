package systems

import (
	"github.com/automoto/piratecave/components"
	cfg "github.com/automoto/piratecave/config"
	"github.com/automoto/piratecave/systems/factory"
	"github.com/automoto/piratecave/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEmitters fires a projectile from every emitter whose cooldown ran
// out. Emitters do not aim.
func UpdateEmitters(ecs *ecs.ECS) {
	var firing []*donburi.Entry
	tags.Emitter.Each(ecs.World, func(e *donburi.Entry) {
		em := components.Emitter.Get(e)
		em.Cooldown--
		if em.Cooldown <= 0 {
			em.Cooldown = em.IntervalFrames
			firing = append(firing, e)
		}
	})

	for _, e := range firing {
		em := components.Emitter.Get(e)
		obj := components.Object.Get(e).Object
		cx, cy := obj.X+obj.W/2, obj.Y+obj.H/2
		x := cx + em.Direction*(obj.W/2+cfg.Projectile.Width/2+1)
		factory.CreateProjectile(ecs, e, x, cy, em.Direction)
	}
}

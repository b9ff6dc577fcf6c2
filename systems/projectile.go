package systems

import (
	"log"

	"github.com/automoto/piratecave/components"
	cfg "github.com/automoto/piratecave/config"
	"github.com/automoto/piratecave/player"
	"github.com/automoto/piratecave/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves projectiles, removes them on walls or outside
// the level, and reports player hits as contacts.
func UpdateProjectiles(ecs *ecs.ECS) {
	dt := cfg.DeltaTime()
	width, height := levelBounds(ecs)

	var spent []*donburi.Entry
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		obj := components.Object.Get(e).Object

		if p.Removed {
			spent = append(spent, e)
			return
		}

		obj.X += p.VelX * dt
		obj.Y += p.VelY * dt
		obj.Update()

		if obj.X+obj.W < 0 || obj.Y+obj.H < 0 || obj.X > width || obj.Y > height {
			spent = append(spent, e)
			return
		}

		check := obj.Check(0, 0, tags.ResolvSolid, tags.ResolvPlayer)
		if check == nil {
			return
		}
		for _, o := range check.Objects {
			if !overlaps(obj, o) {
				continue
			}
			if o.HasTags(tags.ResolvSolid) {
				spent = append(spent, e)
				return
			}
			ctrl, _, ok := controllerOf(o.Data)
			if !ok {
				continue
			}
			ctrl.HandleContact(player.Contact{
				Kind:       player.HazardProjectile,
				Projectile: player.RemoverFunc(func() { p.Removed = true }),
			})
			if p.Removed {
				if cfg.Debug.LogEvents {
					log.Printf("[projectile] hit player, life %.0f", ctrl.Life())
				}
				spent = append(spent, e)
				return
			}
		}
	})

	for _, e := range spent {
		removeEntity(ecs, e)
	}
}

// levelBounds returns the level size in pixels, or the screen size when
// no level is loaded.
func levelBounds(ecs *ecs.ECS) (float64, float64) {
	if e, ok := components.Level.First(ecs.World); ok {
		if lvl := components.Level.Get(e).CurrentLevel; lvl != nil {
			return float64(lvl.Width), float64(lvl.Height)
		}
	}
	return float64(cfg.C.Width), float64(cfg.C.Height)
}

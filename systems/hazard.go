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

// UpdateHazards pulses slash zones. A player entering an active zone gets
// one contact; staying inside does not repeat it until the zone re-arms.
func UpdateHazards(ecs *ecs.ECS) {
	tags.Hazard.Each(ecs.World, func(e *donburi.Entry) {
		hz := components.Hazard.Get(e)
		obj := components.Object.Get(e).Object

		// Quiet for the first part of each cycle, dangerous for the rest
		hz.Timer = (hz.Timer + 1) % hz.CycleFrames
		hz.Active = hz.Timer >= hz.CycleFrames-hz.ActiveFrames

		if !hz.Active {
			if len(hz.Touching) > 0 {
				hz.Touching = map[*donburi.Entry]bool{}
			}
			return
		}

		touching := map[*donburi.Entry]bool{}
		if check := obj.Check(0, 0, tags.ResolvPlayer); check != nil {
			for _, o := range check.Objects {
				if !overlaps(obj, o) {
					continue
				}
				ctrl, target, ok := controllerOf(o.Data)
				if !ok {
					continue
				}
				touching[target] = true
				if hz.Touching[target] {
					continue
				}
				ctrl.HandleContact(player.Contact{Kind: hz.Kind})
				if cfg.Debug.LogEvents {
					log.Printf("[hazard] %s hit player, life %.0f", hz.Kind, ctrl.Life())
				}
			}
		}
		hz.Touching = touching
	})
}

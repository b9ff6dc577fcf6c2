package systems

import (
	"log"

	"github.com/automoto/piratecave/components"
	cfg "github.com/automoto/piratecave/config"
	"github.com/automoto/piratecave/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths counts down removal timers and fades dying entities out.
func UpdateDeaths(ecs *ecs.ECS) {
	dt := float32(cfg.DeltaTime())

	var expired []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		if death.Fade != nil {
			death.Alpha, _ = death.Fade.Update(dt)
		}
		death.Timer--
		if death.Timer <= 0 {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		if e.HasComponent(tags.Player) {
			log.Printf("[death] player removed")
		}
		removeEntity(ecs, e)
	}
}

// deathAlpha is the fade of a dying entity, 1 for the living.
func deathAlpha(e *donburi.Entry) float32 {
	if !e.HasComponent(components.Death) {
		return 1
	}
	return components.Death.Get(e).Alpha
}

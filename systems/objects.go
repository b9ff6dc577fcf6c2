package systems

import (
	"github.com/automoto/piratecave/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// removeEntity takes an entity's collision objects out of the space and
// removes it from the world.
func removeEntity(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		if e.HasComponent(components.Object) {
			space.Remove(components.Object.Get(e).Object)
		}
		if e.HasComponent(components.LashHitbox) {
			space.Remove(components.LashHitbox.Get(e).Object)
		}
	}
	ecs.World.Remove(e.Entity())
}

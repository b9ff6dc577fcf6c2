package factory

import (
	"github.com/automoto/piratecave/archetypes"
	"github.com/automoto/piratecave/assets"
	"github.com/automoto/piratecave/components"
	cfg "github.com/automoto/piratecave/config"
	"github.com/automoto/piratecave/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEmitter spawns a cannon centred on the spawn point.
func CreateEmitter(ecs *ecs.ECS, spawn assets.EmitterSpawn) *donburi.Entry {
	e := archetypes.Emitter.Spawn(ecs)

	w, h := cfg.Emitter.Width, cfg.Emitter.Height
	obj := resolv.NewObject(spawn.X-w/2, spawn.Y-h/2, w, h, tags.ResolvEmitter)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	interval := spawn.Interval
	if interval <= 0 {
		interval = cfg.Projectile.DefaultInterval
	}
	frames := cfg.SecondsToFrames(interval)

	components.Emitter.SetValue(e, components.EmitterData{
		Direction:      spawn.Direction,
		IntervalFrames: frames,
		Cooldown:       frames,
	})
	components.Health.SetValue(e, components.HealthData{
		Current: cfg.Emitter.Health,
		Max:     cfg.Emitter.Health,
	})

	return e
}

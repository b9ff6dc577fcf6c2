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

// CreateHazard spawns a pulsing slash zone.
func CreateHazard(ecs *ecs.ECS, spawn assets.HazardSpawn) *donburi.Entry {
	h := archetypes.Hazard.Spawn(ecs)

	obj := resolv.NewObject(spawn.X, spawn.Y, spawn.Width, spawn.Height, tags.ResolvHazard)
	obj.Data = h
	components.Object.SetValue(h, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	cycle := spawn.CycleFrames
	if cycle <= 0 {
		cycle = cfg.Hazard.DefaultCycleFrames
	}
	active := spawn.ActiveFrames
	if active <= 0 {
		active = cfg.Hazard.DefaultActiveFrames
	}
	if active > cycle {
		active = cycle
	}

	components.Hazard.SetValue(h, components.HazardData{
		Kind:         spawn.Kind,
		CycleFrames:  cycle,
		ActiveFrames: active,
		Touching:     map[*donburi.Entry]bool{},
	})

	return h
}

package factory

import (
	"fmt"

	"github.com/automoto/piratecave/archetypes"
	"github.com/automoto/piratecave/assets"
	"github.com/automoto/piratecave/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads an embedded level by file name.
func CreateLevel(ecs *ecs.ECS, name string) (*donburi.Entry, error) {
	lvl, err := assets.LoadLevel(name)
	if err != nil {
		return nil, fmt.Errorf("create level: %w", err)
	}
	return CreateLevelFrom(ecs, lvl), nil
}

// CreateLevelFrom stores an already parsed level.
func CreateLevelFrom(ecs *ecs.ECS, lvl *assets.Level) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		CurrentLevel: lvl,
		Name:         lvl.Name,
	})
	return level
}

// PopulateLevel creates the collision space and every level object, then
// spawns the player at the first spawn point.
func PopulateLevel(ecs *ecs.ECS, lvl *assets.Level) (*donburi.Entry, error) {
	cellW, cellH := lvl.TileWidth, lvl.TileHeight
	if cellW <= 0 || cellH <= 0 {
		cellW, cellH = 32, 32
	}
	CreateSpace(ecs, lvl.Width, lvl.Height, cellW, cellH)

	for _, g := range lvl.Ground {
		CreateGround(ecs, g.X, g.Y, g.Width, g.Height)
	}
	for _, h := range lvl.Hazards {
		CreateHazard(ecs, h)
	}
	for _, em := range lvl.Emitters {
		CreateEmitter(ecs, em)
	}

	if len(lvl.PlayerSpawns) == 0 {
		return nil, fmt.Errorf("level %s: no player spawn", lvl.Name)
	}
	spawn := lvl.PlayerSpawns[0]
	return CreatePlayer(ecs, spawn.X, spawn.Y)
}

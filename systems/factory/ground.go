package factory

import (
	"github.com/automoto/piratecave/archetypes"
	"github.com/automoto/piratecave/components"
	"github.com/automoto/piratecave/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGround adds a solid rectangle the player can stand on.
func CreateGround(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid, tags.ResolvGround)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = ground // Link for O(1) lookup

	components.Object.SetValue(ground, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return ground
}

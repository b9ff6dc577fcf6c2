package factory

import (
	"github.com/automoto/piratecave/archetypes"
	"github.com/automoto/piratecave/components"
	cfg "github.com/automoto/piratecave/config"
	"github.com/automoto/piratecave/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns a bullet centred on (x, y) travelling
// horizontally in direction (-1 or 1).
func CreateProjectile(ecs *ecs.ECS, owner *donburi.Entry, x, y, direction float64) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	obj := resolv.NewObject(
		x-cfg.Projectile.Width/2,
		y-cfg.Projectile.Height/2,
		cfg.Projectile.Width,
		cfg.Projectile.Height,
		tags.ResolvProjectile,
	)
	obj.Data = p
	components.Object.Set(p, &components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Projectile.Set(p, &components.ProjectileData{
		Owner: owner,
		VelX:  cfg.ToPixels(cfg.Projectile.Speed) * direction,
	})

	return p
}

package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Ground     = donburi.NewTag().SetName("Ground")
	Hazard     = donburi.NewTag().SetName("Hazard")
	Projectile = donburi.NewTag().SetName("Projectile")
	Emitter    = donburi.NewTag().SetName("Emitter")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvGround     = "ground"
	ResolvPlayer     = "Player"
	ResolvHazard     = "hazard"
	ResolvProjectile = "projectile"
	ResolvEmitter    = "emitter"
	ResolvLash       = "lash"
)

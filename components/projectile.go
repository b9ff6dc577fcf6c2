package components

import (
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Owner   *donburi.Entry
	VelX    float64 // pixels per second
	VelY    float64
	Removed bool // queued for removal at the end of the frame
}

var Projectile = donburi.NewComponentType[ProjectileData]()

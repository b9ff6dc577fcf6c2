package components

import "github.com/yohamta/donburi"

// EmitterData fires a projectile along Direction every IntervalFrames.
type EmitterData struct {
	Direction      float64
	IntervalFrames int
	Cooldown       int
}

var Emitter = donburi.NewComponentType[EmitterData]()

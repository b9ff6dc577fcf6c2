package components

import "github.com/yohamta/donburi"

// HealthData counts hits a breakable prop can take.
type HealthData struct {
	Current int
	Max     int
}

var Health = donburi.NewComponentType[HealthData]()

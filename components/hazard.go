package components

import (
	"github.com/automoto/piratecave/player"
	"github.com/yohamta/donburi"
)

// HazardData is a slash zone that pulses on and off. Contact is reported
// once per overlap, when a character enters while the zone is active.
type HazardData struct {
	Kind         player.HazardKind
	CycleFrames  int
	ActiveFrames int
	Timer        int
	Active       bool
	Touching     map[*donburi.Entry]bool
}

var Hazard = donburi.NewComponentType[HazardData]()

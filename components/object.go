package components

import (
	cfg "github.com/automoto/piratecave/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()
var Space = donburi.NewComponentType[resolv.Space]()

// FootAnchor reports the bottom-centre of a collision object in world
// units with y pointing up.
type FootAnchor struct {
	Object *resolv.Object
}

func (a FootAnchor) Position() (x, y float64) {
	return cfg.ToUnits(a.Object.X + a.Object.W/2), -cfg.ToUnits(a.Object.Y + a.Object.H)
}

package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// LashHitboxData is the reach of the player's lash. It only hurts while
// Enabled; each entity is hit at most once per swing.
type LashHitboxData struct {
	Object      *resolv.Object
	Enabled     bool
	HitEntities map[*donburi.Entry]bool // Entities already hit (prevent multiple hits)
}

func (h *LashHitboxData) SetEnabled(on bool) {
	if on && !h.Enabled {
		h.HitEntities = map[*donburi.Entry]bool{}
	}
	h.Enabled = on
}

var LashHitbox = donburi.NewComponentType[LashHitboxData]()

package components

import (
	"github.com/automoto/piratecave/player"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Controller *player.Controller
}

var Player = donburi.NewComponentType[PlayerData]()

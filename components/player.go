package components

import (
	"github.com/automoto/motioncore/cooldown"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Sensitivity float64 // pixels per second per held direction
	Fire        cooldown.Cooldown
	ShotsFired  int
	Moving      bool
}

var Player = donburi.NewComponentType[PlayerData]()

package components

import (
	"github.com/automoto/motioncore/body"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Name   string
	Bounds body.Rect // bullets leaving this rectangle are despawned
}

var Level = donburi.NewComponentType[LevelData]()

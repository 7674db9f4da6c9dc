package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DroneData moves a drone along the offsets produced by a tween sequence.
type DroneData struct {
	Path   *gween.Sequence
	Offset float32 // last sampled offset from the patrol origin
}

var Drone = donburi.NewComponentType[DroneData]()

package components

import (
	"github.com/automoto/motioncore/physics"
	"github.com/yohamta/donburi"
)

// MotionData owns the entity's position and body through its integrator.
type MotionData struct {
	*physics.Integrator
}

var Motion = donburi.NewComponentType[MotionData]()

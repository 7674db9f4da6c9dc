// Package physics turns per-tick forces into entity motion.
//
// Motion uses direct displacement: a Velocity-mode force already holds the
// distance to travel this tick (the caller multiplies its per-second rate by
// delta), and Step adds it straight to the position. Speed is therefore
// independent of frame rate, but a large delta spike moves a body in one jump;
// there is no sub-stepping. Nothing carries over between ticks.
package physics

import (
	"fmt"

	"github.com/automoto/motioncore/shared/gamemath"
)

// Mode selects how the integrator applies a Force.
type Mode uint8

const (
	// ModeVelocity adds the vector to the position for this tick only.
	ModeVelocity Mode = iota
)

func (m Mode) String() string {
	switch m {
	case ModeVelocity:
		return "velocity"
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// Force is a transient 2D vector tagged with an application mode.
type Force struct {
	Vector gamemath.Vector
	Mode   Mode
}

// Velocity returns a ModeVelocity force for a per-second rate scaled by
// delta seconds.
func Velocity(perSecond gamemath.Vector, delta float64) Force {
	return Force{Vector: perSecond.Scale(delta), Mode: ModeVelocity}
}

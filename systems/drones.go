package systems

import (
	"github.com/automoto/motioncore/components"
	"github.com/automoto/motioncore/physics"
	"github.com/automoto/motioncore/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDrones samples each drone's patrol tween and submits the change in
// offset since the last tick as this tick's displacement.
func UpdateDrones(ecs *ecs.ECS) {
	tickEntry, ok := components.Tick.First(ecs.World)
	if !ok {
		return
	}
	delta := components.Tick.Get(tickEntry).Delta
	if delta <= 0 {
		return
	}

	components.Drone.Each(ecs.World, func(e *donburi.Entry) {
		drone := components.Drone.Get(e)
		if drone.Path == nil {
			return
		}

		offset, _, done := drone.Path.Update(float32(delta))
		step := offset - drone.Offset
		drone.Offset = offset
		if done {
			drone.Path.Reset()
		}

		// Already a per-tick distance, so no further delta scaling.
		components.Motion.Get(e).Submit(physics.Force{
			Vector: gamemath.Vector{X: float64(step)},
			Mode:   physics.ModeVelocity,
		})
	})
}

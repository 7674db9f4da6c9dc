package systems

import (
	"math"

	"github.com/automoto/motioncore/body"
	"github.com/automoto/motioncore/components"
	"github.com/automoto/motioncore/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMotion steps every integrator with this tick's delta. Forces submitted
// earlier in the tick are applied and drained here. Players that stepped out
// of the level are put back on its edge.
func UpdateMotion(ecs *ecs.ECS) {
	tickEntry, ok := components.Tick.First(ecs.World)
	if !ok {
		return
	}
	delta := components.Tick.Get(tickEntry).Delta

	components.Motion.Each(ecs.World, func(e *donburi.Entry) {
		components.Motion.Get(e).Step(delta)
	})

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	bounds := components.Level.Get(levelEntry).Bounds
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		motion := components.Motion.Get(e)
		if clamped := clampToRect(motion.Position(), bounds); clamped != motion.Position() {
			motion.Teleport(clamped)
		}
	})
}

func clampToRect(p gamemath.Position, r body.Rect) gamemath.Position {
	return gamemath.Position{
		X: math.Max(r.X, math.Min(p.X, r.Right())),
		Y: math.Max(r.Y, math.Min(p.Y, r.Bottom())),
	}
}

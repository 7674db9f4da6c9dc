package systems

import (
	"github.com/automoto/motioncore/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimation advances every animation clock to this tick's time.
func UpdateAnimation(ecs *ecs.ECS) {
	tickEntry, ok := components.Tick.First(ecs.World)
	if !ok {
		return
	}
	now := components.Tick.Get(tickEntry).Now

	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Advance(now)
		}
	})
}

package systems

import (
	"time"

	"github.com/automoto/motioncore/components"
	"github.com/yohamta/donburi/ecs"
)

// AdvanceTick samples the clock for this tick. Delta is the time since the
// previous sample in seconds; the first sample has a zero delta. now should
// come from time.Now so it carries a monotonic reading.
func AdvanceTick(ecs *ecs.ECS, now time.Time) *components.TickData {
	tick := getOrCreateTick(ecs)
	if tick.Count > 0 {
		tick.Delta = now.Sub(tick.Now).Seconds()
	} else {
		tick.Delta = 0
	}
	tick.Now = now
	tick.Count++
	return tick
}

func getOrCreateTick(ecs *ecs.ECS) *components.TickData {
	entry, ok := components.Tick.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Tick))
	}
	return components.Tick.Get(entry)
}

package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// TickData is the per-tick clock sample written by the scene before systems
// run. Delta is in seconds; Now is a monotonic reading.
type TickData struct {
	Delta float64
	Now   time.Time
	Count uint64
}

var Tick = donburi.NewComponentType[TickData]()

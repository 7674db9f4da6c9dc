package systems

import (
	"github.com/automoto/motioncore/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves each broad-phase object onto its body's hitbox.
// Immovable bodies never leave their spawn position and are skipped.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		if !e.HasComponent(components.Motion) {
			continue
		}
		motion := components.Motion.Get(e)
		if !motion.Body().Movable() {
			continue
		}
		obj := components.Object.Get(e)
		motion.Body().SyncObject(obj.Object, motion.Position())
	}
}

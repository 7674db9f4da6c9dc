package factory

import (
	"github.com/automoto/motioncore/archetypes"
	"github.com/automoto/motioncore/body"
	"github.com/automoto/motioncore/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateTick adds the clock singleton systems read delta and now from.
func CreateTick(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Tick.Spawn(ecs)
}

// CreateInput adds the input singleton filled by the input system.
func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Input.Spawn(ecs)
}

func CreateLevel(ecs *ecs.ECS, name string, bounds body.Rect) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Name:   name,
		Bounds: bounds,
	})
	return level
}

// addToSpace registers obj with the space if one exists.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

// Destroy removes an entity and its broad-phase object.
func Destroy(ecs *ecs.ECS, e *donburi.Entry) {
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil {
			if spaceEntry, ok := components.Space.First(ecs.World); ok {
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
	}
	ecs.World.Remove(e.Entity())
}

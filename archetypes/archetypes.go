package archetypes

import (
	"github.com/automoto/motioncore/components"
	cfg "github.com/automoto/motioncore/config"
	"github.com/automoto/motioncore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Motion,
		components.Object,
		components.Animation,
		components.ShapeStyle,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Bullet,
		components.Motion,
		components.Object,
		components.ShapeStyle,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Motion,
		components.Object,
		components.ShapeStyle,
	)
	Drone = newArchetype(
		tags.Drone,
		components.Drone,
		components.Motion,
		components.Object,
		components.Animation,
		components.ShapeStyle,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Tick = newArchetype(
		components.Tick,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

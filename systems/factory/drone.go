package factory

import (
	"fmt"

	"github.com/automoto/motioncore/archetypes"
	"github.com/automoto/motioncore/assets/animations"
	"github.com/automoto/motioncore/body"
	"github.com/automoto/motioncore/components"
	cfg "github.com/automoto/motioncore/config"
	"github.com/automoto/motioncore/physics"
	"github.com/automoto/motioncore/shared/gamemath"
	"github.com/automoto/motioncore/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDrone spawns a movable drone that patrols horizontally from pos.
func CreateDrone(ecs *ecs.ECS, pos gamemath.Position, frames []*ebiten.Image) (*donburi.Entry, error) {
	hitbox, err := body.NewCircle(0, 0, cfg.Drone.Radius)
	if err != nil {
		return nil, fmt.Errorf("drone hitbox: %w", err)
	}
	mass, err := body.MassFromScalar(cfg.Drone.Mass)
	if err != nil {
		return nil, fmt.Errorf("drone mass: %w", err)
	}
	b, err := body.New(hitbox, mass)
	if err != nil {
		return nil, fmt.Errorf("drone body: %w", err)
	}
	anim, err := animations.NewAnimation(frames, cfg.Animation.DroneFPS, true)
	if err != nil {
		return nil, fmt.Errorf("drone animation: %w", err)
	}

	drone := archetypes.Drone.Spawn(ecs)

	components.Motion.SetValue(drone, components.MotionData{
		Integrator: physics.NewIntegrator(b, pos),
	})

	obj := b.NewObject(pos, tags.ResolvDrone)
	obj.Data = drone
	components.Object.SetValue(drone, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	// The drone patrols using a *gween.Sequence of tweens, moving it back and forth.
	span := float32(cfg.Drone.Distance)
	path := gween.NewSequence()
	path.Add(
		gween.New(0, span, cfg.Drone.Duration, ease.InOutSine),
		gween.New(span, 0, cfg.Drone.Duration, ease.InOutSine),
	)
	components.Drone.SetValue(drone, components.DroneData{Path: path})

	components.Animation.SetValue(drone, components.AnimationData{
		CurrentAnimation: anim,
		CurrentSheet:     components.SheetMoving,
		Sheets:           map[components.Sheet][]*ebiten.Image{components.SheetMoving: frames},
	})
	components.ShapeStyle.SetValue(drone, components.ShapeStyleData{Color: cfg.LightRed})

	return drone, nil
}

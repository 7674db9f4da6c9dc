package factory

import (
	"fmt"

	"github.com/automoto/motioncore/archetypes"
	"github.com/automoto/motioncore/assets/animations"
	"github.com/automoto/motioncore/body"
	"github.com/automoto/motioncore/components"
	cfg "github.com/automoto/motioncore/config"
	"github.com/automoto/motioncore/cooldown"
	"github.com/automoto/motioncore/physics"
	"github.com/automoto/motioncore/shared/gamemath"
	"github.com/automoto/motioncore/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the controllable entity centred on pos. sheets must
// hold at least an idle frame set.
func CreatePlayer(ecs *ecs.ECS, pos gamemath.Position, sheets map[components.Sheet][]*ebiten.Image) (*donburi.Entry, error) {
	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	hitbox, err := body.NewRect(-w/2, -h/2, w, h)
	if err != nil {
		return nil, fmt.Errorf("player hitbox: %w", err)
	}
	mass, err := body.MassFromScalar(cfg.Player.Mass)
	if err != nil {
		return nil, fmt.Errorf("player mass: %w", err)
	}
	b, err := body.New(hitbox, mass)
	if err != nil {
		return nil, fmt.Errorf("player body: %w", err)
	}
	anim, err := animations.NewAnimation(sheets[components.SheetIdle], cfg.Animation.PlayerFPS, true)
	if err != nil {
		return nil, fmt.Errorf("player animation: %w", err)
	}

	player := archetypes.Player.Spawn(ecs)

	components.Motion.SetValue(player, components.MotionData{
		Integrator: physics.NewIntegrator(b, pos),
	})

	obj := b.NewObject(pos, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		Sensitivity: cfg.Player.Sensitivity,
		Fire:        cooldown.New(cfg.Player.FireCooldown),
	})
	components.Animation.SetValue(player, components.AnimationData{
		CurrentAnimation: anim,
		CurrentSheet:     components.SheetIdle,
		Sheets:           sheets,
	})
	components.ShapeStyle.SetValue(player, components.ShapeStyleData{Color: cfg.Player.Color})

	return player, nil
}

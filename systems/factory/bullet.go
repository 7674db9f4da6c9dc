package factory

import (
	"fmt"
	"time"

	"github.com/automoto/motioncore/archetypes"
	"github.com/automoto/motioncore/body"
	"github.com/automoto/motioncore/components"
	cfg "github.com/automoto/motioncore/config"
	"github.com/automoto/motioncore/physics"
	"github.com/automoto/motioncore/shared/gamemath"
	"github.com/automoto/motioncore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBullet spawns a projectile at origin travelling at velocity pixels
// per second. origin must already be a copy the caller no longer mutates.
func CreateBullet(ecs *ecs.ECS, origin *gamemath.Position, velocity gamemath.Vector, now time.Time) (*donburi.Entry, error) {
	hitbox, err := body.NewCircle(0, 0, cfg.Bullet.Radius)
	if err != nil {
		return nil, fmt.Errorf("bullet hitbox: %w", err)
	}
	mass, err := body.MassFromScalar(cfg.Bullet.Mass)
	if err != nil {
		return nil, fmt.Errorf("bullet mass: %w", err)
	}
	b, err := body.New(hitbox, mass)
	if err != nil {
		return nil, fmt.Errorf("bullet body: %w", err)
	}

	bullet := archetypes.Bullet.Spawn(ecs)

	components.Motion.SetValue(bullet, components.MotionData{
		Integrator: physics.NewIntegrator(b, *origin),
	})

	obj := b.NewObject(*origin, tags.ResolvBullet)
	obj.Data = bullet
	components.Object.SetValue(bullet, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Bullet.SetValue(bullet, components.BulletData{
		Velocity: velocity,
		Expires:  now.Add(cfg.Bullet.Lifetime),
	})
	components.ShapeStyle.SetValue(bullet, components.ShapeStyleData{Color: cfg.Bullet.Color})

	return bullet, nil
}

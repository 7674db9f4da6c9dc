package systems

import (
	"github.com/automoto/motioncore/body"
	"github.com/automoto/motioncore/components"
	"github.com/automoto/motioncore/physics"
	"github.com/automoto/motioncore/systems/factory"
	"github.com/automoto/motioncore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBullets submits each live bullet's velocity for this tick and
// removes bullets past their lifetime. Must run before UpdateMotion.
func UpdateBullets(ecs *ecs.ECS) {
	tickEntry, ok := components.Tick.First(ecs.World)
	if !ok {
		return
	}
	tick := components.Tick.Get(tickEntry)

	var expired []*donburi.Entry
	tags.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		bullet := components.Bullet.Get(e)
		if !tick.Now.Before(bullet.Expires) {
			expired = append(expired, e)
			return
		}
		components.Motion.Get(e).Submit(physics.Velocity(bullet.Velocity, tick.Delta))
	})

	for _, e := range expired {
		factory.Destroy(ecs, e)
	}
}

// UpdateBulletHits removes bullets that left the level or overlap a wall.
// Must run after UpdateObjects so the broad phase sees this tick's positions.
func UpdateBulletHits(ecs *ecs.ECS) {
	var bounds body.Shape
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		bounds = components.Level.Get(levelEntry).Bounds
	}

	var spent []*donburi.Entry
	tags.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		hitbox := components.Motion.Get(e).Hitbox()
		if bounds != nil && !hitbox.CollidesWith(bounds) {
			spent = append(spent, e)
			return
		}
		if hitsWall(e, hitbox) {
			spent = append(spent, e)
		}
	})

	for _, e := range spent {
		factory.Destroy(ecs, e)
	}
}

// hitsWall runs the exact test against every solid the broad phase reports.
func hitsWall(e *donburi.Entry, hitbox body.Shape) bool {
	obj := components.Object.Get(e).Object
	check := obj.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return false
	}
	for _, other := range check.ObjectsByTags(tags.ResolvSolid) {
		wall, ok := other.Data.(*donburi.Entry)
		if !ok || !wall.Valid() || !wall.HasComponent(components.Motion) {
			continue
		}
		if body.Collide(hitbox, components.Motion.Get(wall).Hitbox()) {
			return true
		}
	}
	return false
}

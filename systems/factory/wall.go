package factory

import (
	"fmt"

	"github.com/automoto/motioncore/archetypes"
	"github.com/automoto/motioncore/body"
	"github.com/automoto/motioncore/components"
	cfg "github.com/automoto/motioncore/config"
	"github.com/automoto/motioncore/physics"
	"github.com/automoto/motioncore/shared/gamemath"
	"github.com/automoto/motioncore/shared/leveldata"
	"github.com/automoto/motioncore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall adds an immovable body. The hitbox is in world coordinates, so
// the wall sits at the origin.
func CreateWall(ecs *ecs.ECS, hitbox body.Shape) (*donburi.Entry, error) {
	b, err := body.New(hitbox, body.Immovable)
	if err != nil {
		return nil, fmt.Errorf("create wall: %w", err)
	}

	wall := archetypes.Wall.Spawn(ecs)

	origin := gamemath.Position{}
	components.Motion.SetValue(wall, components.MotionData{
		Integrator: physics.NewIntegrator(b, origin),
	})

	obj := b.NewObject(origin, tags.ResolvSolid)
	obj.Data = wall // Link for O(1) lookup
	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	components.ShapeStyle.SetValue(wall, components.ShapeStyleData{Color: cfg.Wall.Color})

	addToSpace(ecs, obj)

	return wall, nil
}

// WallShape converts a parsed level wall into its hitbox. Circle walls are
// inscribed in their box, so unequal sides use the shorter one.
func WallShape(w leveldata.Wall) (body.Shape, error) {
	switch w.Kind {
	case leveldata.ShapeCircle:
		r := min(w.W, w.H) / 2
		return body.NewCircle(w.X+w.W/2, w.Y+w.H/2, r)
	case leveldata.ShapePolygon:
		pts := make([]gamemath.Vector, len(w.Points))
		for i, p := range w.Points {
			pts[i] = gamemath.Vector{X: p.X, Y: p.Y}
		}
		return body.NewPolygon(pts...)
	default:
		return body.NewRect(w.X, w.Y, w.W, w.H)
	}
}

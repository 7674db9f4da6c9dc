package body

import (
	"github.com/automoto/motioncore/shared/gamemath"
	"github.com/kvartborg/vector"
	"github.com/solarlune/resolv"
)

type collideFunc func(a, b Shape) bool

// collisionTable holds one test per unordered variant pair. Only entries with
// row <= column are filled; Collide swaps its arguments into that order, so a
// mixed pair always runs the same routine whichever side asks.
var collisionTable = [kindCount][kindCount]collideFunc{
	KindRect: {
		KindRect: func(a, b Shape) bool {
			return polygonsOverlap(a.(Rect).collider(), b.(Rect).collider())
		},
		KindCircle: func(a, b Shape) bool {
			r := a.(Rect)
			return polygonCircleOverlap(r.collider(), r.Center(), b.(Circle).collider())
		},
		KindPolygon: func(a, b Shape) bool {
			return polygonsOverlap(a.(Rect).collider(), b.(Polygon).collider())
		},
	},
	KindCircle: {
		KindCircle: func(a, b Shape) bool {
			return circlesOverlap(a.(Circle).collider(), b.(Circle).collider())
		},
		KindPolygon: func(a, b Shape) bool {
			p := b.(Polygon)
			return polygonCircleOverlap(p.collider(), p.centroid(), a.(Circle).collider())
		},
	},
	KindPolygon: {
		KindPolygon: func(a, b Shape) bool {
			return polygonsOverlap(a.(Polygon).collider(), b.(Polygon).collider())
		},
	},
}

// Collide reports whether a and b overlap. Collide(a, b) always equals
// Collide(b, a). Shapes that fail their constructor's checks never collide.
func Collide(a, b Shape) bool {
	if a == nil || b == nil || !a.valid() || !b.valid() {
		return false
	}
	if a.Kind() > b.Kind() {
		a, b = b, a
	}
	fn := collisionTable[a.Kind()][b.Kind()]
	if fn == nil {
		return false
	}
	return fn(a, b)
}

// resolv only reports crossing outlines, so each test also checks whether one
// shape sits wholly inside the other.

func polygonsOverlap(a, b *resolv.ConvexPolygon) bool {
	return a.Intersection(0, 0, b) != nil || b.Intersection(0, 0, a) != nil ||
		a.ContainedBy(b) || b.ContainedBy(a)
}

// polygonCircleOverlap takes any point inside p as inner.
func polygonCircleOverlap(p *resolv.ConvexPolygon, inner gamemath.Vector, c *resolv.Circle) bool {
	return p.Intersection(0, 0, c) != nil ||
		p.PointInside(vector.Vector{c.X, c.Y}) ||
		c.PointInside(toVector(inner))
}

func circlesOverlap(a, b *resolv.Circle) bool {
	return a.Intersection(0, 0, b) != nil ||
		a.PointInside(vector.Vector{b.X, b.Y}) ||
		b.PointInside(vector.Vector{a.X, a.Y})
}

func toVector(v gamemath.Vector) vector.Vector {
	return vector.Vector{v.X, v.Y}
}

package body

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/motioncore/shared/gamemath"
	"github.com/solarlune/resolv"
)

// ErrInvalidArgument is returned when a shape or body is built from values
// that would break its invariants.
var ErrInvalidArgument = errors.New("invalid argument")

// Kind identifies a Shape variant. The set is closed: every variant is
// declared in this file and has a row in the collision table.
type Kind uint8

const (
	KindRect Kind = iota
	KindCircle
	KindPolygon
	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindCircle:
		return "circle"
	case KindPolygon:
		return "polygon"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Shape is a geometric collision primitive. The variant fields are exported
// for reading; only the constructors guarantee a usable shape. A hand-built
// value that would fail its constructor contains no points and collides with
// nothing.
type Shape interface {
	Kind() Kind
	// Bounds returns the axis-aligned bounding box.
	Bounds() Rect
	// Contains reports whether p lies inside the shape.
	Contains(p gamemath.Vector) bool
	// CollidesWith reports whether the two shapes overlap.
	CollidesWith(other Shape) bool
	// Offset returns a copy moved by (dx, dy).
	Offset(dx, dy float64) Shape
	// Equal reports structural equality.
	Equal(other Shape) bool

	valid() bool
	sealed()
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// NewRect returns a rectangle with a non-zero extent.
func NewRect(x, y, w, h float64) (Rect, error) {
	if !(w > 0) || !(h > 0) {
		return Rect{}, fmt.Errorf("%w: rect extent %gx%g", ErrInvalidArgument, w, h)
	}
	return Rect{X: x, Y: y, W: w, H: h}, nil
}

func (r Rect) Kind() Kind   { return KindRect }
func (r Rect) Bounds() Rect { return r }
func (r Rect) sealed()      {}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Center() gamemath.Vector {
	return gamemath.Vector{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func (r Rect) Contains(p gamemath.Vector) bool {
	return r.valid() && r.collider().PointInside(toVector(p))
}

func (r Rect) CollidesWith(other Shape) bool {
	return Collide(r, other)
}

func (r Rect) Offset(dx, dy float64) Shape {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

func (r Rect) Equal(other Shape) bool {
	o, ok := other.(Rect)
	return ok && o == r
}

func (r Rect) valid() bool { return r.W > 0 && r.H > 0 }

func (r Rect) collider() *resolv.ConvexPolygon {
	return resolv.NewRectangle(r.X, r.Y, r.W, r.H)
}

// Circle is a disc given by its center and radius.
type Circle struct {
	X, Y, R float64
}

// NewCircle returns a circle with a positive radius.
func NewCircle(x, y, r float64) (Circle, error) {
	if !(r > 0) {
		return Circle{}, fmt.Errorf("%w: circle radius %g", ErrInvalidArgument, r)
	}
	return Circle{X: x, Y: y, R: r}, nil
}

func (c Circle) Kind() Kind { return KindCircle }
func (c Circle) sealed()    {}

func (c Circle) Center() gamemath.Vector {
	return gamemath.Vector{X: c.X, Y: c.Y}
}

func (c Circle) Bounds() Rect {
	return Rect{X: c.X - c.R, Y: c.Y - c.R, W: 2 * c.R, H: 2 * c.R}
}

func (c Circle) Contains(p gamemath.Vector) bool {
	return c.valid() && c.collider().PointInside(toVector(p))
}

func (c Circle) CollidesWith(other Shape) bool {
	return Collide(c, other)
}

func (c Circle) Offset(dx, dy float64) Shape {
	return Circle{X: c.X + dx, Y: c.Y + dy, R: c.R}
}

func (c Circle) Equal(other Shape) bool {
	o, ok := other.(Circle)
	return ok && o == c
}

func (c Circle) valid() bool { return c.R > 0 }

func (c Circle) collider() *resolv.Circle {
	return resolv.NewCircle(c.X, c.Y, c.R)
}

// Polygon is a convex polygon. Points may wind either way.
type Polygon struct {
	Points []gamemath.Vector
}

// NewPolygon copies points into a convex polygon. It rejects fewer than three
// points, zero area, concave and self-intersecting outlines.
func NewPolygon(points ...gamemath.Vector) (Polygon, error) {
	if len(points) < 3 {
		return Polygon{}, fmt.Errorf("%w: polygon needs at least 3 points, got %d", ErrInvalidArgument, len(points))
	}
	if !isConvex(points) {
		return Polygon{}, fmt.Errorf("%w: polygon is degenerate or concave", ErrInvalidArgument)
	}
	pts := make([]gamemath.Vector, len(points))
	copy(pts, points)
	return Polygon{Points: pts}, nil
}

func (p Polygon) Kind() Kind { return KindPolygon }
func (p Polygon) sealed()    {}

func (p Polygon) Bounds() Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range p.Points {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

func (p Polygon) Contains(pt gamemath.Vector) bool {
	return p.valid() && p.collider().PointInside(toVector(pt))
}

func (p Polygon) CollidesWith(other Shape) bool {
	return Collide(p, other)
}

func (p Polygon) Offset(dx, dy float64) Shape {
	pts := make([]gamemath.Vector, len(p.Points))
	for i, v := range p.Points {
		pts[i] = gamemath.Vector{X: v.X + dx, Y: v.Y + dy}
	}
	return Polygon{Points: pts}
}

func (p Polygon) Equal(other Shape) bool {
	o, ok := other.(Polygon)
	if !ok || len(o.Points) != len(p.Points) {
		return false
	}
	for i := range p.Points {
		if p.Points[i] != o.Points[i] {
			return false
		}
	}
	return true
}

// valid only counts points; convexity is checked once, by NewPolygon.
func (p Polygon) valid() bool { return len(p.Points) >= 3 }

func (p Polygon) collider() *resolv.ConvexPolygon {
	coords := make([]float64, 0, 2*len(p.Points))
	for _, v := range p.Points {
		coords = append(coords, v.X, v.Y)
	}
	return resolv.NewConvexPolygon(0, 0, coords...)
}

// centroid is the vertex average, which lies inside any convex polygon.
func (p Polygon) centroid() gamemath.Vector {
	var sum gamemath.Vector
	for _, v := range p.Points {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / float64(len(p.Points)))
}

func (p Polygon) clone() Polygon {
	pts := make([]gamemath.Vector, len(p.Points))
	copy(pts, p.Points)
	return Polygon{Points: pts}
}

func cross(a, b gamemath.Vector) float64 {
	return a.X*b.Y - a.Y*b.X
}

const turnTolerance = 1e-6

// isConvex wants every turn in the same direction and the turns to add up to
// one full revolution. A star turns the same way at each vertex but winds
// around more than once.
func isConvex(points []gamemath.Vector) bool {
	var pos, neg bool
	var turning float64
	n := len(points)
	for i := 0; i < n; i++ {
		a, b, c := points[i], points[(i+1)%n], points[(i+2)%n]
		e1, e2 := b.Sub(a), c.Sub(b)
		z := cross(e1, e2)
		if z > 0 {
			pos = true
		} else if z < 0 {
			neg = true
		}
		if pos && neg {
			return false
		}
		turning += math.Atan2(z, e1.Dot(e2))
	}
	// all collinear
	if !pos && !neg {
		return false
	}
	return math.Abs(math.Abs(turning)-2*math.Pi) < turnTolerance
}

// cloneShape returns a copy that shares no memory with s.
func cloneShape(s Shape) Shape {
	if p, ok := s.(Polygon); ok {
		return p.clone()
	}
	return s
}

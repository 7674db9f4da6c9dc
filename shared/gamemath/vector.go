// Package gamemath holds the plain 2D math shared by the body, physics and
// systems packages. It has no dependencies on ebitengine, donburi, or resolv.
package gamemath

import "math"

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vector) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector, or the zero vector for a zero input.
func (v Vector) Normalize() Vector {
	l := v.Len()
	if l == 0 {
		return Vector{}
	}
	return Vector{X: v.X / l, Y: v.Y / l}
}

// Position is a mutable world coordinate owned by exactly one entity.
type Position struct {
	X, Y float64
}

// Copy returns an independent copy. Use it before handing a position to a
// spawned entity so the two never alias.
func (p *Position) Copy() *Position {
	c := *p
	return &c
}

// Vector returns the position as a vector from the origin.
func (p Position) Vector() Vector {
	return Vector{X: p.X, Y: p.Y}
}

// Translate returns the position moved by v.
func (p Position) Translate(v Vector) Position {
	return Position{X: p.X + v.X, Y: p.Y + v.Y}
}

// ApproxEqual reports whether two floats differ by at most eps.
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

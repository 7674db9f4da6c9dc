// Package body pairs collision shapes with mass. A Body is a value: two
// bodies with equal shapes and equal masses are equal, whoever owns them.
package body

import (
	"fmt"

	"github.com/automoto/motioncore/shared/gamemath"
)

// Mass is either a positive finite mass or Immovable. The zero value is
// Immovable.
type Mass struct {
	kg      float64
	movable bool
}

// Immovable is infinite mass. Forces applied to an immovable body are
// dropped without error.
var Immovable = Mass{}

// Movable returns a finite mass. It fails for non-positive values.
func Movable(kg float64) (Mass, error) {
	if !(kg > 0) {
		return Mass{}, fmt.Errorf("%w: movable mass must be positive, got %g", ErrInvalidArgument, kg)
	}
	return Mass{kg: kg, movable: true}, nil
}

// MassFromScalar maps the scalar encoding used by level files and configs:
// any negative value means infinite mass. Zero is rejected.
func MassFromScalar(m float64) (Mass, error) {
	if m < 0 {
		return Immovable, nil
	}
	return Movable(m)
}

func (m Mass) IsMovable() bool { return m.movable }

// Kilograms returns the finite mass and false for an immovable mass.
func (m Mass) Kilograms() (float64, bool) {
	return m.kg, m.movable
}

// Scalar returns the scalar encoding, -1 for Immovable.
func (m Mass) Scalar() float64 {
	if !m.movable {
		return -1
	}
	return m.kg
}

func (m Mass) String() string {
	if !m.movable {
		return "immovable"
	}
	return fmt.Sprintf("%gkg", m.kg)
}

// Body is a rigid object: one hitbox in local coordinates plus a mass.
type Body struct {
	hitbox Shape
	mass   Mass
}

// New builds a body. The hitbox is copied so the body never shares it.
func New(hitbox Shape, mass Mass) (*Body, error) {
	if hitbox == nil {
		return nil, fmt.Errorf("%w: body needs a hitbox", ErrInvalidArgument)
	}
	return &Body{hitbox: cloneShape(hitbox), mass: mass}, nil
}

func (b *Body) Hitbox() Shape { return cloneShape(b.hitbox) }
func (b *Body) Mass() Mass    { return b.mass }

// Movable reports whether forces may move the body.
func (b *Body) Movable() bool { return b.mass.IsMovable() }

// At returns the hitbox placed at pos.
func (b *Body) At(pos gamemath.Position) Shape {
	return b.hitbox.Offset(pos.X, pos.Y)
}

// Equal compares hitbox and mass. Identity is not considered.
func (b *Body) Equal(other *Body) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.mass == other.mass && b.hitbox.Equal(other.hitbox)
}

package body

import (
	"errors"
	"testing"

	"github.com/automoto/motioncore/shared/gamemath"
)

func mustRect(t *testing.T, x, y, w, h float64) Rect {
	t.Helper()
	r, err := NewRect(x, y, w, h)
	if err != nil {
		t.Fatalf("NewRect(%g, %g, %g, %g): %v", x, y, w, h, err)
	}
	return r
}

func mustCircle(t *testing.T, x, y, r float64) Circle {
	t.Helper()
	c, err := NewCircle(x, y, r)
	if err != nil {
		t.Fatalf("NewCircle(%g, %g, %g): %v", x, y, r, err)
	}
	return c
}

func mustPolygon(t *testing.T, pts ...gamemath.Vector) Polygon {
	t.Helper()
	p, err := NewPolygon(pts...)
	if err != nil {
		t.Fatalf("NewPolygon: %v", err)
	}
	return p
}

func mustMovable(t *testing.T, kg float64) Mass {
	t.Helper()
	m, err := Movable(kg)
	if err != nil {
		t.Fatalf("Movable(%g): %v", kg, err)
	}
	return m
}

func mustBody(t *testing.T, s Shape, m Mass) *Body {
	t.Helper()
	b, err := New(s, m)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b
}

func TestBodyEquality(t *testing.T) {
	square := mustRect(t, 0, 0, 10, 10)
	other := mustRect(t, 0, 0, 10, 12)
	one := mustMovable(t, 1)
	two := mustMovable(t, 2)

	tests := []struct {
		name string
		a, b *Body
		want bool
	}{
		{"same shape and mass", mustBody(t, square, one), mustBody(t, square, one), true},
		{"both immovable", mustBody(t, square, Immovable), mustBody(t, square, Immovable), true},
		{"different mass", mustBody(t, square, one), mustBody(t, square, two), false},
		{"different shape", mustBody(t, square, one), mustBody(t, other, one), false},
		{"movable vs immovable", mustBody(t, square, one), mustBody(t, square, Immovable), false},
		{"rect vs circle", mustBody(t, square, one), mustBody(t, mustCircle(t, 5, 5, 5), one), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("a.Equal(b) = %v, want %v", got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("b.Equal(a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBodyEqualityFromScalarMass(t *testing.T) {
	square := mustRect(t, 0, 0, 4, 4)
	a, err := MassFromScalar(-1)
	if err != nil {
		t.Fatal(err)
	}
	b, err := MassFromScalar(-250)
	if err != nil {
		t.Fatal(err)
	}
	if !mustBody(t, square, a).Equal(mustBody(t, square, b)) {
		t.Error("two negative scalar masses should both be immovable and compare equal")
	}
	if a.Scalar() != -1 {
		t.Errorf("Scalar() = %g, want -1", a.Scalar())
	}
}

func TestMassValidation(t *testing.T) {
	for _, kg := range []float64{0, -3} {
		if _, err := Movable(kg); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Movable(%g) err = %v, want ErrInvalidArgument", kg, err)
		}
	}
	if _, err := MassFromScalar(0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("MassFromScalar(0) err = %v, want ErrInvalidArgument", err)
	}
	m := mustMovable(t, 3)
	if kg, ok := m.Kilograms(); !ok || kg != 3 {
		t.Errorf("Kilograms() = %g, %v, want 3, true", kg, ok)
	}
	if _, ok := Immovable.Kilograms(); ok {
		t.Error("Immovable.Kilograms() reported a finite mass")
	}
}

func TestBodyOwnsItsHitbox(t *testing.T) {
	pts := []gamemath.Vector{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8}}
	poly := mustPolygon(t, pts...)
	b := mustBody(t, poly, Immovable)

	poly.Points[0] = gamemath.Vector{X: 100, Y: 100}
	got := b.Hitbox().(Polygon)
	if got.Points[0] != (gamemath.Vector{}) {
		t.Errorf("body hitbox changed through the caller's polygon: %+v", got.Points[0])
	}

	got.Points[1] = gamemath.Vector{X: -1, Y: -1}
	if b.Hitbox().(Polygon).Points[1] != (gamemath.Vector{X: 10, Y: 0}) {
		t.Error("body hitbox changed through a returned copy")
	}
}

func TestNewRejectsNilHitbox(t *testing.T) {
	if _, err := New(nil, Immovable); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("New(nil) err = %v, want ErrInvalidArgument", err)
	}
}

func TestBodyAt(t *testing.T) {
	b := mustBody(t, mustRect(t, -5, -5, 10, 10), Immovable)
	got := b.At(gamemath.Position{X: 100, Y: 50})
	want := Rect{X: 95, Y: 45, W: 10, H: 10}
	if !got.Equal(want) {
		t.Errorf("At() = %+v, want %+v", got, want)
	}
}

func TestNewObjectCoversBounds(t *testing.T) {
	b := mustBody(t, mustCircle(t, 0, 0, 4), mustMovable(t, 1))
	obj := b.NewObject(gamemath.Position{X: 20, Y: 30}, "bullet")
	if obj.X != 16 || obj.Y != 26 || obj.W != 8 || obj.H != 8 {
		t.Errorf("object = (%g, %g, %g, %g), want (16, 26, 8, 8)", obj.X, obj.Y, obj.W, obj.H)
	}
	if !obj.HasTags("bullet") {
		t.Error("object lost its tag")
	}
}

package body

import (
	"github.com/automoto/motioncore/shared/gamemath"
	"github.com/solarlune/resolv"
)

// NewObject builds the broad-phase resolv object for a body placed at pos.
// The object covers the hitbox bounds; exact tests go through Collide.
func (b *Body) NewObject(pos gamemath.Position, tags ...string) *resolv.Object {
	bounds := b.At(pos).Bounds()
	obj := resolv.NewObject(bounds.X, bounds.Y, bounds.W, bounds.H, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, bounds.W, bounds.H))
	return obj
}

// SyncObject moves obj so it covers the body placed at pos.
func (b *Body) SyncObject(obj *resolv.Object, pos gamemath.Position) {
	bounds := b.At(pos).Bounds()
	obj.X = bounds.X
	obj.Y = bounds.Y
	obj.Update()
}

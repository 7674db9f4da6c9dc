package physics

import (
	"github.com/automoto/motioncore/body"
	"github.com/automoto/motioncore/shared/gamemath"
)

// Integrator accumulates the forces an entity submits during a tick and
// advances that entity's position when stepped. One integrator per entity;
// it is not safe for concurrent use.
type Integrator struct {
	body    *body.Body
	pos     gamemath.Position
	pending []Force
}

// NewIntegrator starts an integrator for b at start.
func NewIntegrator(b *body.Body, start gamemath.Position) *Integrator {
	return &Integrator{
		body:    b,
		pos:     start,
		pending: make([]Force, 0, 4),
	}
}

// Submit queues f for the next Step.
func (in *Integrator) Submit(f Force) {
	in.pending = append(in.pending, f)
}

// Step applies and drains the queued forces. An immovable body or a
// non-positive delta leaves the position where it is; the forces are
// dropped either way.
func (in *Integrator) Step(delta float64) gamemath.Position {
	defer in.drain()

	if in.body == nil || !in.body.Movable() || delta <= 0 {
		return in.pos
	}

	for _, f := range in.pending {
		switch f.Mode {
		case ModeVelocity:
			in.pos = in.pos.Translate(f.Vector)
		}
	}
	return in.pos
}

func (in *Integrator) drain() {
	clear(in.pending)
	in.pending = in.pending[:0]
}

func (in *Integrator) Position() gamemath.Position { return in.pos }
func (in *Integrator) Body() *body.Body            { return in.body }

// Pending returns the number of forces waiting for the next Step.
func (in *Integrator) Pending() int { return len(in.pending) }

// Teleport places the entity without going through forces.
func (in *Integrator) Teleport(pos gamemath.Position) {
	in.pos = pos
}

// Hitbox returns the body's hitbox at the current position.
func (in *Integrator) Hitbox() body.Shape {
	return in.body.At(in.pos)
}

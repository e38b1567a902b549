package controller

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/physics"
)

type fakeBody struct {
	pos      cp.Vector
	vel      cp.Vector
	angle    float64
	angVel   float64
	mass     float64
	force    cp.Vector
	impulses []cp.Vector
}

func newFakeBody(pos, vel cp.Vector) *fakeBody {
	return &fakeBody{pos: pos, vel: vel, mass: 1}
}

func (b *fakeBody) Position() cp.Vector { return b.pos }
func (b *fakeBody) Velocity() cp.Vector { return b.vel }
func (b *fakeBody) SetVelocity(x, y float64) { b.vel = cp.Vector{X: x, Y: y} }
func (b *fakeBody) Angle() float64 { return b.angle }
func (b *fakeBody) SetAngle(angle float64) { b.angle = angle }
func (b *fakeBody) AngularVelocity() float64 { return b.angVel }
func (b *fakeBody) SetAngularVelocity(w float64) { b.angVel = w }
func (b *fakeBody) ApplyForceAtWorldPoint(f, _ cp.Vector) {
	b.force = b.force.Add(f)
}
func (b *fakeBody) ApplyImpulseAtWorldPoint(j, _ cp.Vector) {
	b.impulses = append(b.impulses, j)
	b.vel = b.vel.Add(j.Mult(1 / b.mass))
}

type fakeQuerier struct {
	hit     bool
	calls   int
	exclude *cp.Shape
	start   cp.Vector
	end     cp.Vector
}

func (q *fakeQuerier) SegmentQueryFirst(start, end cp.Vector, exclude *cp.Shape) (physics.Hit, bool) {
	q.calls++
	q.exclude = exclude
	q.start = start
	q.end = end
	if !q.hit {
		return physics.Hit{}, false
	}
	return physics.Hit{Shape: &cp.Shape{}}, true
}

package controller

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/physics"
)

// Body is the subset of *cp.Body the controller reads and writes.
type Body interface {
	Position() cp.Vector
	Velocity() cp.Vector
	SetVelocity(x, y float64)
	Angle() float64
	SetAngle(angle float64)
	AngularVelocity() float64
	SetAngularVelocity(w float64)
	ApplyForceAtWorldPoint(force, point cp.Vector)
	ApplyImpulseAtWorldPoint(impulse, point cp.Vector)
}

// SegmentQuerier answers nearest-hit ray queries against the physics world.
type SegmentQuerier interface {
	SegmentQueryFirst(start, end cp.Vector, exclude *cp.Shape) (physics.Hit, bool)
}

// GroundResolver decides whether a body is supported.
type GroundResolver struct {
	space  SegmentQuerier
	tuning GroundTuning
}

func NewGroundResolver(space SegmentQuerier, tuning GroundTuning) *GroundResolver {
	return &GroundResolver{space: space, tuning: tuning}
}

// Tuning returns the active constants.
func (g *GroundResolver) Tuning() GroundTuning {
	if g == nil {
		return GroundTuning{}
	}
	return g.tuning
}

// SetTuning replaces the active constants.
func (g *GroundResolver) SetTuning(t GroundTuning) {
	if g == nil {
		return
	}
	g.tuning = t
}

// OnGround reports whether body is resting on something other than self.
// A body rising faster than the rising threshold is never grounded.
func (g *GroundResolver) OnGround(body Body, self *cp.Shape) bool {
	if g == nil || body == nil {
		return false
	}
	pos := body.Position()
	vel := body.Velocity()

	if vel.Y > g.tuning.RisingThreshold {
		return false
	}

	if g.probe(pos, self) {
		return true
	}
	return g.nearGroundReference(pos)
}

func (g *GroundResolver) probe(pos cp.Vector, self *cp.Shape) bool {
	if g.space == nil || g.tuning.ProbeDistance <= 0 {
		return false
	}
	bottom := pos.Y - g.halfHeight(self)
	start := cp.Vector{X: pos.X, Y: bottom}
	end := cp.Vector{X: pos.X, Y: bottom - g.tuning.ProbeDistance}

	hit, ok := g.space.SegmentQueryFirst(start, end, self)
	return ok && hit.Shape != nil && hit.Shape != self
}

func (g *GroundResolver) nearGroundReference(pos cp.Vector) bool {
	if g.tuning.GroundTolerance <= 0 {
		return false
	}
	return pos.Y <= g.tuning.GroundReference+g.tuning.GroundTolerance
}

// halfHeight uses the shape's bounding box so a tilted body probes from its
// lowest extent.
func (g *GroundResolver) halfHeight(self *cp.Shape) float64 {
	if self != nil {
		bb := self.BB()
		if h := bb.T - bb.B; h > 0 {
			return h / 2
		}
	}
	return g.tuning.HalfHeight
}

// Package physics owns the Chipmunk space and the shapes added to it.
package physics

import (
	"errors"
	"math"

	"github.com/jakecoffman/cp"
)

var ErrInvalidShape = errors.New("physics: shape dimensions must be positive")

// Config describes the global simulation parameters.
type Config struct {
	Gravity    cp.Vector
	Iterations uint
}

// World wraps a cp.Space. Bodies and shapes created through it are owned by
// the space; callers keep references only.
type World struct {
	space *cp.Space
}

// NewWorld creates an empty space with the given gravity.
func NewWorld(cfg Config) *World {
	space := cp.NewSpace()
	if cfg.Iterations > 0 {
		space.Iterations = cfg.Iterations
	}
	space.SetGravity(cfg.Gravity)
	return &World{space: space}
}

// Space returns the underlying Chipmunk space.
func (pw *World) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// SetGravity replaces the global gravity vector.
func (pw *World) SetGravity(g cp.Vector) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.space.SetGravity(g)
}

// AddGround adds a static segment between a and b.
func (pw *World) AddGround(a, b cp.Vector, radius, friction float64) *cp.Shape {
	if pw == nil || pw.space == nil {
		return nil
	}
	shape := cp.NewSegment(pw.space.StaticBody, a, b, radius)
	shape.SetFriction(friction)
	pw.space.AddShape(shape)
	return shape
}

// BoxDef describes a dynamic box body.
type BoxDef struct {
	Position cp.Vector
	Width    float64
	Height   float64
	Mass     float64
	Friction float64
	// FixedRotation gives the body an infinite moment.
	FixedRotation bool
}

// AddBox creates a dynamic box body and its shape.
func (pw *World) AddBox(def BoxDef) (*cp.Body, *cp.Shape, error) {
	if pw == nil || pw.space == nil {
		return nil, nil, errors.New("physics: world not initialized")
	}
	if def.Width <= 0 || def.Height <= 0 {
		return nil, nil, ErrInvalidShape
	}
	mass := def.Mass
	if mass <= 0 {
		mass = 1
	}
	moment := cp.MomentForBox(mass, def.Width, def.Height)
	if def.FixedRotation {
		moment = math.Inf(1)
	}

	body := pw.space.AddBody(cp.NewBody(mass, moment))
	body.SetPosition(def.Position)
	body.SetAngle(0)
	body.SetAngularVelocity(0)

	shape := pw.space.AddShape(cp.NewBox(body, def.Width, def.Height, 0))
	shape.SetFriction(def.Friction)
	return body, shape, nil
}

// Remove takes a body and its shapes out of the space.
func (pw *World) Remove(body *cp.Body, shapes ...*cp.Shape) {
	if pw == nil || pw.space == nil {
		return
	}
	for _, shape := range shapes {
		if shape != nil && pw.space.ContainsShape(shape) {
			pw.space.RemoveShape(shape)
		}
	}
	if body != nil && body != pw.space.StaticBody && pw.space.ContainsBody(body) {
		pw.space.RemoveBody(body)
	}
}

// Step advances the simulation by dt seconds.
func (pw *World) Step(dt float64) {
	if pw == nil || pw.space == nil || dt <= 0 {
		return
	}
	pw.space.Step(dt)
}

// Hit is the nearest result of a segment query.
type Hit struct {
	Shape  *cp.Shape
	Point  cp.Vector
	Normal cp.Vector
	Alpha  float64
}

// SegmentQueryFirst returns the nearest shape touched by the segment
// start→end, never returning exclude.
func (pw *World) SegmentQueryFirst(start, end cp.Vector, exclude *cp.Shape) (Hit, bool) {
	if pw == nil || pw.space == nil {
		return Hit{}, false
	}
	best := Hit{Alpha: math.Inf(1)}
	found := false
	pw.space.SegmentQuery(start, end, 0, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, point, normal cp.Vector, alpha float64, data interface{}) {
		if shape == nil || shape == exclude || shape.Sensor() {
			return
		}
		if alpha < best.Alpha {
			best = Hit{Shape: shape, Point: point, Normal: normal, Alpha: alpha}
			found = true
		}
	}, nil)
	if !found {
		return Hit{}, false
	}
	return best, true
}

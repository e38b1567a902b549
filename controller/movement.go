package controller

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Controller turns intents into forces and impulses on a single body.
type Controller struct {
	tuning MoveTuning
	ground *GroundResolver
}

func New(tuning MoveTuning, ground *GroundResolver) *Controller {
	return &Controller{tuning: tuning, ground: ground}
}

// Tuning returns the active constants.
func (c *Controller) Tuning() MoveTuning {
	if c == nil {
		return MoveTuning{}
	}
	return c.tuning
}

// SetTuning replaces the active constants.
func (c *Controller) SetTuning(t MoveTuning) {
	if c == nil {
		return
	}
	c.tuning = t
}

// Ground returns the resolver used for jump eligibility.
func (c *Controller) Ground() *GroundResolver {
	if c == nil {
		return nil
	}
	return c.ground
}

// UpdateMovement applies one frame of control to body. It must run before
// the physics step; jump eligibility is judged on the pre-step state.
// It reports whether a jump impulse was applied.
func (c *Controller) UpdateMovement(body Body, shape *cp.Shape, in Intent) bool {
	if c == nil || body == nil {
		return false
	}
	t := c.tuning

	if w := body.AngularVelocity(); math.Abs(w) > t.SpinThreshold {
		body.SetAngularVelocity(w * t.SpinDamping)
	}

	if a := body.Angle(); math.Abs(a) > t.TiltLimit {
		body.SetAngle(a * t.TiltDecay)
	}

	vel := body.Velocity()
	pos := body.Position()

	// Forces are world-space so orientation never bends the drive direction.
	if in.Left && vel.X > -t.MaxSpeed {
		body.ApplyForceAtWorldPoint(cp.Vector{X: -t.MoveForce, Y: 0}, pos)
	}
	if in.Right && vel.X < t.MaxSpeed {
		body.ApplyForceAtWorldPoint(cp.Vector{X: t.MoveForce, Y: 0}, pos)
	}

	if !in.Left && !in.Right {
		body.SetVelocity(vel.X*t.IdleDamping, vel.Y)
	}

	// No latch: a held jump re-fires on every grounded frame.
	if in.Jump && c.ground.OnGround(body, shape) {
		body.ApplyImpulseAtWorldPoint(cp.Vector{X: 0, Y: t.JumpImpulse}, pos)
		return true
	}
	return false
}

package controller

import "math"

// Intent is one frame of player input, as currently held.
type Intent struct {
	Left  bool
	Right bool
	Jump  bool
}

// MoveTuning holds the constants used by Controller.UpdateMovement.
type MoveTuning struct {
	SpinThreshold float64 // rad/s above which angular velocity is damped
	SpinDamping   float64
	TiltLimit     float64 // rad above which the body is eased upright
	TiltDecay     float64
	MoveForce     float64
	MaxSpeed      float64
	IdleDamping   float64
	JumpImpulse   float64
}

// GroundTuning holds the constants used by GroundResolver.OnGround.
type GroundTuning struct {
	RisingThreshold float64
	ProbeDistance   float64
	// HalfHeight is used for the probe origin when no shape extent is known.
	HalfHeight float64
	// GroundReference is the resting body height above the static ground.
	// The fallback is disabled when GroundTolerance <= 0.
	GroundReference float64
	GroundTolerance float64
}

func DefaultMoveTuning() MoveTuning {
	return MoveTuning{
		SpinThreshold: 2.0,
		SpinDamping:   0.5,
		TiltLimit:     math.Pi / 6,
		TiltDecay:     0.9,
		MoveForce:     1500,
		MaxSpeed:      250,
		IdleDamping:   0.8,
		JumpImpulse:   400,
	}
}

func DefaultGroundTuning() GroundTuning {
	return GroundTuning{
		RisingThreshold: 10,
		ProbeDistance:   10,
		HalfHeight:      25,
		GroundReference: 75,
		GroundTolerance: 5,
	}
}

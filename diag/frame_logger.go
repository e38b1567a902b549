package diag

import (
	"github.com/milk9111/platformer/anim"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"go.uber.org/zap"
)

// FrameLogger is a frame observer that logs the player's pose changes,
// ground transitions and jumps at debug level. With summaryEvery > 0 it
// also logs the body pose every summaryEvery frames.
type FrameLogger struct {
	log          *zap.Logger
	summaryEvery uint64

	seen     bool
	state    anim.State
	grounded bool
}

func NewFrameLogger(log *zap.Logger, summaryEvery uint64) *FrameLogger {
	if log == nil {
		log = zap.NewNop()
	}
	return &FrameLogger{log: log, summaryEvery: summaryEvery}
}

func (f *FrameLogger) AfterFrame(w *ecs.World, frame uint64, dt float64) {
	if f == nil || w == nil {
		return
	}
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}

	st, ok := ecs.Get(w, player, component.PlayerStateComponent.Kind())
	if !ok {
		return
	}
	state := anim.Idle
	if a, ok := ecs.Get(w, player, component.AnimationComponent.Kind()); ok && a.Machine != nil {
		state = a.Machine.State()
	}

	if st.Jumped {
		f.log.Debug("jump", zap.Uint64("frame", frame))
	}
	if !f.seen || st.Grounded != f.grounded {
		f.log.Debug("ground contact",
			zap.Uint64("frame", frame),
			zap.Bool("grounded", st.Grounded),
		)
	}
	if !f.seen || state != f.state {
		f.log.Debug("animation state",
			zap.Uint64("frame", frame),
			zap.Stringer("state", state),
		)
	}
	f.seen = true
	f.state = state
	f.grounded = st.Grounded

	if f.summaryEvery == 0 || frame%f.summaryEvery != 0 {
		return
	}
	if pb, ok := ecs.Get(w, player, component.PhysicsBodyComponent.Kind()); ok && pb.Body != nil {
		pos := pb.Body.Position()
		vel := pb.Body.Velocity()
		f.log.Debug("player pose",
			zap.Uint64("frame", frame),
			zap.Float64("dt", dt),
			zap.Float64("x", pos.X),
			zap.Float64("y", pos.Y),
			zap.Float64("vx", vel.X),
			zap.Float64("vy", vel.Y),
		)
	}
}

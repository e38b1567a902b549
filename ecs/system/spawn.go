package system

import (
	"errors"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"go.uber.org/zap"
)

// SpawnSystem turns spawn requests into boxes. Requests beyond the box
// limit are rejected and logged; each request is consumed either way.
type SpawnSystem struct {
	scene    *entity.Scene
	logger   *zap.Logger
	rejected int
}

func NewSpawnSystem(scene *entity.Scene, logger *zap.Logger) *SpawnSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SpawnSystem{scene: scene, logger: logger}
}

// Rejected returns how many requests hit the box limit.
func (s *SpawnSystem) Rejected() int {
	if s == nil {
		return 0
	}
	return s.rejected
}

func (s *SpawnSystem) Update(w *ecs.World, _ float64) {
	if s == nil || w == nil || s.scene == nil {
		return
	}

	ecs.ForEach(w, component.SpawnRequestComponent.Kind(), func(e ecs.Entity, req *component.SpawnRequest) {
		pos := cp.Vector{X: req.X, Y: req.Y}
		ecs.DestroyEntity(w, e)

		box, err := s.scene.SpawnBox(pos)
		switch {
		case errors.Is(err, entity.ErrBoxLimit):
			s.rejected++
			s.logger.Info("box limit reached", zap.Int("max", s.scene.Spec.MaxBoxes))
		case err != nil:
			s.logger.Error("spawn box", zap.Error(err))
		default:
			s.logger.Debug("spawned box",
				zap.Stringer("entity", box),
				zap.Float64("x", pos.X),
				zap.Float64("y", pos.Y),
			)
		}
	})
}

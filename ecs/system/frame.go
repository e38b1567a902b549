package system

import (
	"github.com/milk9111/platformer/controller"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/entity"
	"go.uber.org/zap"
)

// NewFrameScheduler wires the per-frame order: input, spawns, control,
// physics step, ground contact, animation. Control judges jumps on the
// pre-step state; animation reads the post-step state.
func NewFrameScheduler(scene *entity.Scene, source IntentSource, logger *zap.Logger) *ecs.Scheduler {
	ground := controller.NewGroundResolver(scene.Physics, controller.DefaultGroundTuning())
	return ecs.NewScheduler(
		NewInputSystem(source),
		NewSpawnSystem(scene, logger),
		NewPlayerControllerSystem(ground),
		NewPhysicsSystem(scene.Physics),
		NewGroundContactSystem(ground),
		NewAnimationSystem(),
	)
}

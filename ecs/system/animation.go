package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// AnimationSystem feeds post-step velocity and ground contact into each
// animation machine and advances its timer.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach3(w,
		component.AnimationComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
		component.PlayerStateComponent.Kind(),
		func(_ ecs.Entity, animComp *component.Animation, bodyComp *component.PhysicsBody, state *component.PlayerState) {
			if animComp.Machine == nil || bodyComp.Body == nil {
				return
			}
			animComp.Machine.Update(state.Grounded, bodyComp.Body.Velocity().X, dt)
		})
}

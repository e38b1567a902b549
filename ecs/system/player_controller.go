package system

import (
	"github.com/milk9111/platformer/controller"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// PlayerControllerSystem applies the frame's intent to the player body
// before the physics step.
type PlayerControllerSystem struct {
	ctrl *controller.Controller
}

func NewPlayerControllerSystem(ground *controller.GroundResolver) *PlayerControllerSystem {
	return &PlayerControllerSystem{ctrl: controller.New(controller.DefaultMoveTuning(), ground)}
}

func (p *PlayerControllerSystem) Update(w *ecs.World, _ float64) {
	if p == nil || w == nil {
		return
	}

	ecs.ForEach3(w,
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
		func(e ecs.Entity, player *component.Player, input *component.Input, bodyComp *component.PhysicsBody) {
			if bodyComp.Body == nil {
				return
			}
			p.ctrl.SetTuning(player.Move)
			p.ctrl.Ground().SetTuning(player.Ground)

			jumped := p.ctrl.UpdateMovement(bodyComp.Body, bodyComp.Shape, input.Intent)
			if state, ok := ecs.Get(w, e, component.PlayerStateComponent.Kind()); ok {
				state.Jumped = jumped
			}
		})
}

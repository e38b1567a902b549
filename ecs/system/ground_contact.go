package system

import (
	"github.com/milk9111/platformer/controller"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// GroundContactSystem records the post-step ground result used for
// animation selection.
type GroundContactSystem struct {
	ground *controller.GroundResolver
}

func NewGroundContactSystem(ground *controller.GroundResolver) *GroundContactSystem {
	return &GroundContactSystem{ground: ground}
}

func (g *GroundContactSystem) Update(w *ecs.World, _ float64) {
	if g == nil || w == nil {
		return
	}

	ecs.ForEach3(w,
		component.PlayerComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
		component.PlayerStateComponent.Kind(),
		func(_ ecs.Entity, player *component.Player, bodyComp *component.PhysicsBody, state *component.PlayerState) {
			if bodyComp.Body == nil {
				state.Grounded = false
				return
			}
			g.ground.SetTuning(player.Ground)
			state.Grounded = g.ground.OnGround(bodyComp.Body, bodyComp.Shape)
		})
}

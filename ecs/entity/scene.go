package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/physics"
	"github.com/milk9111/platformer/prefabs"
)

// Scene is the populated world: physics space, ground and player.
type Scene struct {
	World   *ecs.World
	Physics *physics.World
	Ground  ecs.Entity
	Player  ecs.Entity
	Spec    *prefabs.WorldSpec
}

// NewScene builds the physics space and the starting entities.
func NewScene(ws *prefabs.WorldSpec, ps *prefabs.PlayerSpec) (*Scene, error) {
	if ws == nil {
		return nil, fmt.Errorf("scene: nil world spec")
	}
	phys := physics.NewWorld(physics.Config{
		Gravity:    ws.Gravity.Vector(),
		Iterations: ws.Iterations,
	})
	w := ecs.NewWorld()

	ground, err := NewGround(w, phys, ws.Ground)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	player, err := NewPlayer(w, phys, ps)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return &Scene{World: w, Physics: phys, Ground: ground, Player: player, Spec: ws}, nil
}

// SpawnBox adds an auxiliary box using the world's box prefab and limit.
func (s *Scene) SpawnBox(pos cp.Vector) (ecs.Entity, error) {
	return NewBox(s.World, s.Physics, s.Spec.Box, s.Spec.MaxBoxes, pos)
}

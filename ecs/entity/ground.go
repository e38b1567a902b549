package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/physics"
	"github.com/milk9111/platformer/prefabs"
)

// NewGround adds the static ground segment.
func NewGround(w *ecs.World, phys *physics.World, spec prefabs.GroundSpec) (ecs.Entity, error) {
	shape := phys.AddGround(spec.From.Vector(), spec.To.Vector(), spec.Radius, spec.Friction)
	if shape == nil {
		return 0, fmt.Errorf("entity: ground: physics world not initialized")
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.GroundTagComponent.Kind(), &component.GroundTag{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Body:     shape.Body(),
		Shape:    shape,
		Width:    spec.To.X - spec.From.X,
		Friction: spec.Friction,
		Static:   true,
	}); err != nil {
		return 0, err
	}
	return e, nil
}

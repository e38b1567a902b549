package entity

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/physics"
	"github.com/milk9111/platformer/prefabs"
)

// ErrBoxLimit is returned when the world already holds the maximum number
// of dynamic boxes.
var ErrBoxLimit = errors.New("entity: box limit reached")

// NewBox adds a dynamic box centred at pos. limit counts every box entity,
// the player included; limit <= 0 disables the check.
func NewBox(w *ecs.World, phys *physics.World, spec prefabs.BoxSpec, limit int, pos cp.Vector) (ecs.Entity, error) {
	if limit > 0 && ecs.Count(w, component.BoxTagComponent.Kind()) >= limit {
		return 0, fmt.Errorf("entity: box at (%.0f, %.0f): %w", pos.X, pos.Y, ErrBoxLimit)
	}
	return newBody(w, phys, physics.BoxDef{
		Position: pos,
		Width:    spec.Width,
		Height:   spec.Height,
		Mass:     spec.Mass,
		Friction: spec.Friction,
	})
}

func newBody(w *ecs.World, phys *physics.World, def physics.BoxDef) (ecs.Entity, error) {
	body, shape, err := phys.AddBox(def)
	if err != nil {
		return 0, fmt.Errorf("entity: box: %w", err)
	}

	e := ecs.CreateEntity(w)
	errs := []error{
		ecs.Add(w, e, component.BoxTagComponent.Kind(), &component.BoxTag{}),
		ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: def.Position.X, Y: def.Position.Y}),
		ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
			Body:     body,
			Shape:    shape,
			Width:    def.Width,
			Height:   def.Height,
			Mass:     def.Mass,
			Friction: def.Friction,
		}),
	}
	if err := errors.Join(errs...); err != nil {
		phys.Remove(body, shape)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("entity: box: %w", err)
	}
	return e, nil
}

// DestroyBody removes e and its physics body.
func DestroyBody(w *ecs.World, phys *physics.World, e ecs.Entity) bool {
	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && !pb.Static {
		phys.Remove(pb.Body, pb.Shape)
	}
	return ecs.DestroyEntity(w, e)
}

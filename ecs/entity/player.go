package entity

import (
	"fmt"

	"github.com/milk9111/platformer/anim"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/physics"
	"github.com/milk9111/platformer/prefabs"
)

// NewPlayer adds the controlled box described by spec.
func NewPlayer(w *ecs.World, phys *physics.World, spec *prefabs.PlayerSpec) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("player: nil spec")
	}
	clips, err := spec.ClipSet()
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	e, err := newBody(w, phys, physics.BoxDef{
		Position: spec.Spawn.Vector(),
		Width:    spec.Collider.Width,
		Height:   spec.Collider.Height,
		Mass:     spec.Mass,
		Friction: spec.Friction,
	})
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	scale := spec.Sprite.Scale
	if scale <= 0 {
		scale = 1
	}
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		Move:   spec.MoveTuning(),
		Ground: spec.GroundTuning(),
	}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerStateComponent.Kind(), &component.PlayerState{}); err != nil {
		return 0, fmt.Errorf("player: add state: %w", err)
	}
	if err := ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
		Machine: anim.NewMachine(clips, spec.AnimTuning()),
	}); err != nil {
		return 0, fmt.Errorf("player: add animation: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Sheet: spec.Sprite.Sheet,
		Scale: scale,
	}); err != nil {
		return 0, fmt.Errorf("player: add sprite: %w", err)
	}
	return e, nil
}

// ApplyPlayerSpec swaps tuning and clips on an existing player. The body
// keeps its pose and velocity.
func ApplyPlayerSpec(w *ecs.World, e ecs.Entity, spec *prefabs.PlayerSpec) error {
	if spec == nil {
		return fmt.Errorf("player: nil spec")
	}
	clips, err := spec.ClipSet()
	if err != nil {
		return fmt.Errorf("player: %w", err)
	}
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return fmt.Errorf("player: reload %v: %w", e, ecs.ErrEntityNotAlive)
	}
	p.Move = spec.MoveTuning()
	p.Ground = spec.GroundTuning()

	if a, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok && a.Machine != nil {
		a.Machine.SetTuning(spec.AnimTuning())
		a.Machine.SetClips(clips)
	}
	if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		s.Sheet = spec.Sprite.Sheet
		if spec.Sprite.Scale > 0 {
			s.Scale = spec.Sprite.Scale
		}
	}
	return nil
}

package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/controller"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// IntentSource reports the player's held intent for the current frame.
type IntentSource interface {
	Intent() controller.Intent
}

// SpawnSource is implemented by intent sources that also request boxes.
// Positions are in physics space.
type SpawnSource interface {
	Spawns() []cp.Vector
}

// StaticIntent is an IntentSource that always reports the same intent.
type StaticIntent controller.Intent

func (s StaticIntent) Intent() controller.Intent { return controller.Intent(s) }

// InputSystem snapshots the intent once per frame onto every player.
type InputSystem struct {
	source IntentSource
}

func NewInputSystem(source IntentSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World, _ float64) {
	if i == nil || w == nil || i.source == nil {
		return
	}

	intent := i.source.Intent()
	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.InputComponent.Kind(), func(_ ecs.Entity, _ *component.PlayerTag, in *component.Input) {
		in.Intent = intent
	})

	spawner, ok := i.source.(SpawnSource)
	if !ok {
		return
	}
	for _, pos := range spawner.Spawns() {
		e := ecs.CreateEntity(w)
		_ = ecs.Add(w, e, component.SpawnRequestComponent.Kind(), &component.SpawnRequest{X: pos.X, Y: pos.Y})
	}
}

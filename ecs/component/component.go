package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentKind identifies one component type in the ECS storage. Every
// component in this package (Transform, PhysicsBody, Input, Player,
// PlayerState, Animation, Sprite, SpawnRequest and the tags) gets its kind
// from a package-level handle, e.g. PhysicsBodyComponent.Kind().
type ComponentKind[T any] struct {
	id ComponentID
}

func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{id: ComponentID(nextComponentID.Add(1))}
}

func (k ComponentKind[T]) ID() ComponentID {
	return k.id
}

func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}

// ComponentHandle is the exported value each component file declares, such
// as TransformComponent. Pass Kind() to the ecs helpers.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

// NewComponent allocates a fresh kind; call it once per component type at
// package init.
func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}

type ComponentID uint32

var nextComponentID atomic.Uint32

package ecs

import "github.com/milk9111/platformer/ecs/component"

// Add attaches value to e, replacing any existing component of that kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	w.store(kind.ID(), true).set(e, value)
	return nil
}

// Remove detaches the component of kind from e.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).remove(e)
}

// Has reports whether e carries a component of kind.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

// Get returns the stored component pointer; mutations are visible to
// every later reader.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	raw, ok := w.store(kind.ID(), false).get(e)
	if !ok {
		return nil, false
	}
	v, ok := raw.(*T)
	return v, ok
}

// First returns the first live entity carrying kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	var found Entity
	ok := false
	each(w, kind.ID(), func(e Entity, _ any) bool {
		found = e
		ok = true
		return false
	})
	return found, ok
}

// Count returns the number of live entities carrying kind.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	n := 0
	each(w, kind.ID(), func(Entity, any) bool {
		n++
		return true
	})
	return n
}

// ForEach visits every entity carrying kind.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	each(w, kind.ID(), func(e Entity, raw any) bool {
		if v, ok := raw.(*T); ok {
			fn(e, v)
		}
		return true
	})
}

// ForEach2 visits entities carrying both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	ForEach(w, ka, func(e Entity, a *A) {
		b, ok := Get(w, e, kb)
		if !ok {
			return
		}
		fn(e, a, b)
	})
}

// ForEach3 visits entities carrying all three kinds.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	ForEach2(w, ka, kb, func(e Entity, a *A, b *B) {
		c, ok := Get(w, e, kc)
		if !ok {
			return
		}
		fn(e, a, b, c)
	})
}

// each iterates a snapshot so fn may add or destroy entities.
func each(w *World, id component.ComponentID, fn func(Entity, any) bool) {
	if w == nil {
		return
	}
	s := w.store(id, false)
	if s.len() == 0 {
		return
	}
	ents := append([]Entity(nil), s.dense...)
	for _, e := range ents {
		if !w.entities.isAlive(e) {
			continue
		}
		raw, ok := s.get(e)
		if !ok {
			continue
		}
		if !fn(e, raw) {
			return
		}
	}
}

package ecs

import "github.com/milk9111/carpark/ecs/component"

// CreateEntity allocates a new entity in w.
func CreateEntity(w *World) Entity {
	return w.CreateEntity()
}

// DestroyEntity removes e and its components from w.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.DestroyEntity(e)
}

// IsAlive reports whether e is a live entity of w.
func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

// Entities returns all live entities of w.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// Add sets the component of kind k on e. Components are stored by pointer, so
// mutating a value returned by Get updates the world.
func Add[T any](w *World, e Entity, k component.ComponentKind[T], v *T) error {
	if v == nil {
		return component.ErrNilComponent
	}
	if !k.Valid() {
		return component.ErrInvalidComponentKind
	}
	return w.addComponent(e, k.ID(), v)
}

// Get returns the component of kind k on e.
func Get[T any](w *World, e Entity, k component.ComponentKind[T]) (*T, bool) {
	v, ok := w.getComponent(e, k.ID())
	if !ok {
		return nil, false
	}
	cast, ok := v.(*T)
	return cast, ok
}

// Has reports whether e has a component of kind k.
func Has[T any](w *World, e Entity, k component.ComponentKind[T]) bool {
	_, ok := w.getComponent(e, k.ID())
	return ok
}

// Remove deletes the component of kind k from e.
func Remove[T any](w *World, e Entity, k component.ComponentKind[T]) bool {
	return w.removeComponent(e, k.ID())
}

// ForEach calls fn for every live entity with a component of kind k. fn may
// add, remove, or destroy freely; iteration runs over a snapshot.
func ForEach[T any](w *World, k component.ComponentKind[T], fn func(Entity, *T)) {
	for _, e := range w.Query(k) {
		if v, ok := Get(w, e, k); ok {
			fn(e, v)
		}
	}
}

// ForEach2 calls fn for every live entity that has both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	for _, e := range w.Query(ka, kb) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

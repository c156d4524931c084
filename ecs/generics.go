package ecs

import "github.com/milk9111/tweens/ecs/component"

// Add stores value for e. Components are held by pointer so systems mutate
// them in place.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if value == nil {
		return component.ErrNilComponent
	}
	return w.AddComponent(e, kind.ID(), value)
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return w.RemoveComponent(e, kind.ID())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return w.HasComponent(e, kind.ID())
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	value, ok := w.GetComponent(e, kind.ID())
	if !ok {
		return nil, false
	}
	cast, ok := value.(*T)
	return cast, ok
}

// ForEach visits every live entity holding kind. The entity list is
// snapshotted first, so fn may add, remove or destroy.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.storage.set(kind.ID()).Entities() {
		if v, ok := Get(w, e, kind); ok {
			fn(e, v)
		}
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range Query(w, ka, kb) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

// First returns the earliest-added entity holding kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, *T, bool) {
	if w == nil {
		return 0, nil, false
	}
	for _, e := range w.storage.set(kind.ID()).Entities() {
		if v, ok := Get(w, e, kind); ok {
			return e, v, true
		}
	}
	return 0, nil, false
}

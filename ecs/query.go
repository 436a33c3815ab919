package ecs

import "github.com/milk9111/lanerunner/ecs/component"

// ForEach visits every entity carrying kind in insertion order. It iterates
// a snapshot, so fn may add, remove or destroy freely.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	set := setFor(w, kind, false)
	if set == nil || set.Len() == 0 {
		return
	}
	snapshot := append([]Entity(nil), set.Entities()...)
	for _, e := range snapshot {
		v, ok := set.Get(e)
		if !ok {
			continue
		}
		fn(e, v)
	}
}

// ForEach2 visits entities carrying both kinds, in the insertion order of a.
func ForEach2[A, B any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], fn func(Entity, *A, *B)) {
	setA := setFor(w, a, false)
	setB := setFor(w, b, false)
	if setA == nil || setB == nil {
		return
	}
	snapshot := append([]Entity(nil), setA.Entities()...)
	for _, e := range snapshot {
		va, ok := setA.Get(e)
		if !ok {
			continue
		}
		vb, ok := setB.Get(e)
		if !ok {
			continue
		}
		fn(e, va, vb)
	}
}

// ForEachReverse walks the live set from newest to oldest. fn may destroy
// the entity it is visiting; the entries not yet visited keep their
// positions. Returning false stops the walk.
func ForEachReverse[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T) bool) {
	set := setFor(w, kind, false)
	for i := set.Len() - 1; i >= 0; i-- {
		if i >= set.Len() {
			continue
		}
		e, v := set.at(i)
		if !fn(e, v) {
			return
		}
	}
}

// First returns the oldest entity carrying kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	set := setFor(w, kind, false)
	if set.Len() == 0 {
		return 0, false
	}
	return set.Entities()[0], true
}

// Query returns a copy of the entities carrying kind, in insertion order.
func Query[T any](w *World, kind component.ComponentKind[T]) []Entity {
	set := setFor(w, kind, false)
	if set.Len() == 0 {
		return nil
	}
	return append([]Entity(nil), set.Entities()...)
}

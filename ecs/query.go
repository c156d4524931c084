package ecs

import "github.com/milk9111/tweens/ecs/component"

// Query returns the live entities holding every kind, in the dense order of
// the smallest store.
func Query(w *World, kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		set := w.storage.set(k.ID())
		if set.Len() == 0 {
			return nil
		}
		sets = append(sets, set)
	}
	return IntersectEntities(sets...)
}

// IntersectEntities returns entities present in all sets.
func IntersectEntities(sets ...*SparseSet) []Entity {
	if len(sets) == 0 {
		return nil
	}
	smallest := sets[0]
	for _, s := range sets[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}
	var out []Entity
	for _, e := range smallest.Entities() {
		shared := true
		for _, s := range sets {
			if !s.Has(e) {
				shared = false
				break
			}
		}
		if shared {
			out = append(out, e)
		}
	}
	return out
}

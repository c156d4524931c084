package ecs

import "github.com/milk9111/tweens/ecs/component"

// storage maps each component id to its sparse set. Sets are created on the
// first write.
type storage struct {
	sets map[component.ComponentID]*SparseSet
}

func (s *storage) set(id component.ComponentID) *SparseSet {
	return s.sets[id]
}

func (s *storage) ensure(id component.ComponentID) *SparseSet {
	if s.sets == nil {
		s.sets = make(map[component.ComponentID]*SparseSet)
	}
	set, ok := s.sets[id]
	if !ok {
		set = newSparseSet()
		s.sets[id] = set
	}
	return set
}

func (s *storage) removeAll(e Entity) {
	for _, set := range s.sets {
		set.Remove(e)
	}
}

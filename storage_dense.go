package ecs

// denseStorage is a classic sparse-set: a packed, cache-friendly dense
// array of values alongside a sparse array mapping an entity's raw id to
// its slot in the dense array, so Insert/Remove/Get are all O(1) and
// iteration over Len() touches no gaps.
type denseStorage[C any] struct {
	sparse   []int // raw entity id -> index into dense/denseEntities, -1 if absent
	dense    []C
	denseEnt []Entity
	mask     entityBitset
}

// NewDenseStorage constructs a ComponentStorage[C] backed by a sparse set.
// Appropriate for components most entities carry, where packed iteration
// matters.
func NewDenseStorage[C any]() ComponentStorage[C] {
	return &denseStorage[C]{}
}

func (s *denseStorage[C]) growSparse(id int) {
	if id < len(s.sparse) {
		return
	}
	grown := make([]int, id+1)
	for i := range grown {
		grown[i] = -1
	}
	copy(grown, s.sparse)
	s.sparse = grown
}

func (s *denseStorage[C]) slotOf(entity Entity) int {
	id := int(entity)
	if id < 0 || id >= len(s.sparse) {
		return -1
	}
	return s.sparse[id]
}

// Insert adds value for entity. Precondition: !Contains(entity).
func (s *denseStorage[C]) Insert(entity Entity, value C) error {
	if s.Contains(entity) {
		return ComponentExistsError{ComponentType: componentTypeOf[C]().String(), Entity: entity}
	}
	s.growSparse(int(entity))
	s.sparse[int(entity)] = len(s.dense)
	s.dense = append(s.dense, value)
	s.denseEnt = append(s.denseEnt, entity)
	s.mask.Set(uint64(entity))
	return nil
}

// Remove drops entity's value via swap-remove, fixing up the sparse entry
// of whichever value took its place in the dense array.
func (s *denseStorage[C]) Remove(entity Entity) error {
	slot := s.slotOf(entity)
	if slot == -1 {
		return ComponentNotFoundError{ComponentType: componentTypeOf[C]().String(), Entity: entity}
	}
	last := len(s.dense) - 1
	if slot != last {
		s.dense[slot] = s.dense[last]
		s.denseEnt[slot] = s.denseEnt[last]
		s.sparse[int(s.denseEnt[slot])] = slot
	}
	var zero C
	s.dense[last] = zero
	s.dense = s.dense[:last]
	s.denseEnt = s.denseEnt[:last]
	s.sparse[int(entity)] = -1
	s.mask.Clear(uint64(entity))
	return nil
}

// Contains reports whether entity currently has a value.
func (s *denseStorage[C]) Contains(entity Entity) bool {
	return s.slotOf(entity) != -1
}

// Get returns a pointer to entity's packed value.
func (s *denseStorage[C]) Get(entity Entity) (*C, error) {
	slot := s.slotOf(entity)
	if slot == -1 {
		return nil, ComponentNotFoundError{ComponentType: componentTypeOf[C]().String(), Entity: entity}
	}
	return &s.dense[slot], nil
}

// Mask returns the membership bitset.
func (s *denseStorage[C]) Mask() *entityBitset { return &s.mask }

// Clear drops every live value.
func (s *denseStorage[C]) Clear() {
	s.sparse = nil
	s.dense = nil
	s.denseEnt = nil
	s.mask.ClearAll()
}

// Len returns the number of entities currently stored.
func (s *denseStorage[C]) Len() int { return len(s.dense) }

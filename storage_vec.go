package ecs

// vecStorage indexes values by (entity - base) in a flat slice, where base
// is the lowest entity id ever inserted. Costs one C-sized slot per id
// between base and the highest id seen (even absent ones) in exchange for
// a direct slice-indexed Get; suited to components nearly every entity carries. base
// rebases down (shifting existing payloads right by the delta) whenever an
// id smaller than the current base arrives, so a component first attached
// to a high-id entity doesn't allocate a slot for every id below it.
type vecStorage[C any] struct {
	base    int
	hasBase bool
	values  []C
	mask    entityBitset
	count   int
}

// NewVecStorage constructs a ComponentStorage[C] backed by a
// base-relative, entity-id-indexed slice.
func NewVecStorage[C any]() ComponentStorage[C] {
	return &vecStorage[C]{}
}

// rebase establishes base on the first insert, or shifts the backing slice
// right by (base-id) and lowers base to id if id arrives below it.
func (s *vecStorage[C]) rebase(id int) {
	if !s.hasBase {
		s.base = id
		s.hasBase = true
		return
	}
	if id < s.base {
		delta := s.base - id
		grown := make([]C, len(s.values)+delta)
		copy(grown[delta:], s.values)
		s.values = grown
		s.base = id
	}
}

func (s *vecStorage[C]) index(id int) int { return id - s.base }

func (s *vecStorage[C]) grow(idx int) {
	if idx < len(s.values) {
		return
	}
	grown := make([]C, idx+1)
	copy(grown, s.values)
	s.values = grown
}

// Insert adds value for entity. Precondition: !Contains(entity).
func (s *vecStorage[C]) Insert(entity Entity, value C) error {
	if s.Contains(entity) {
		return ComponentExistsError{ComponentType: componentTypeOf[C]().String(), Entity: entity}
	}
	id := int(entity)
	s.rebase(id)
	idx := s.index(id)
	s.grow(idx)
	s.values[idx] = value
	s.mask.Set(uint64(entity))
	s.count++
	return nil
}

// Remove drops entity's value.
func (s *vecStorage[C]) Remove(entity Entity) error {
	if !s.Contains(entity) {
		return ComponentNotFoundError{ComponentType: componentTypeOf[C]().String(), Entity: entity}
	}
	var zero C
	s.values[s.index(int(entity))] = zero
	s.mask.Clear(uint64(entity))
	s.count--
	return nil
}

// Contains reports whether entity currently has a value.
func (s *vecStorage[C]) Contains(entity Entity) bool {
	return s.mask.Contains(uint64(entity))
}

// Get returns a pointer to entity's value.
func (s *vecStorage[C]) Get(entity Entity) (*C, error) {
	if !s.Contains(entity) {
		return nil, ComponentNotFoundError{ComponentType: componentTypeOf[C]().String(), Entity: entity}
	}
	return &s.values[s.index(int(entity))], nil
}

// Mask returns the membership bitset.
func (s *vecStorage[C]) Mask() *entityBitset { return &s.mask }

// Clear drops every live value.
func (s *vecStorage[C]) Clear() {
	s.base = 0
	s.hasBase = false
	s.values = nil
	s.mask.ClearAll()
	s.count = 0
}

// Len returns the number of entities currently stored.
func (s *vecStorage[C]) Len() int { return s.count }

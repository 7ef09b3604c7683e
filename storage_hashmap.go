package ecs

// hashMapStorage indexes values by entity in a Go map. No wasted space for
// entity ids that never carry the component; lookup is a hash instead of
// an array index. Suited to rare components.
type hashMapStorage[C any] struct {
	values map[Entity]*C
	mask   entityBitset
}

// NewHashMapStorage constructs a ComponentStorage[C] backed by a Go map.
func NewHashMapStorage[C any]() ComponentStorage[C] {
	return &hashMapStorage[C]{values: make(map[Entity]*C)}
}

// Insert adds value for entity. Precondition: !Contains(entity). Values are
// boxed (map[Entity]*C, not map[Entity]C) since Go map elements aren't
// addressable and Get must hand back a stable, mutable pointer.
func (s *hashMapStorage[C]) Insert(entity Entity, value C) error {
	if _, ok := s.values[entity]; ok {
		return ComponentExistsError{ComponentType: componentTypeOf[C]().String(), Entity: entity}
	}
	s.values[entity] = &value
	s.mask.Set(uint64(entity))
	return nil
}

// Remove drops entity's value.
func (s *hashMapStorage[C]) Remove(entity Entity) error {
	if _, ok := s.values[entity]; !ok {
		return ComponentNotFoundError{ComponentType: componentTypeOf[C]().String(), Entity: entity}
	}
	delete(s.values, entity)
	s.mask.Clear(uint64(entity))
	return nil
}

// Contains reports whether entity currently has a value.
func (s *hashMapStorage[C]) Contains(entity Entity) bool {
	_, ok := s.values[entity]
	return ok
}

// Get returns entity's boxed value pointer.
func (s *hashMapStorage[C]) Get(entity Entity) (*C, error) {
	v, ok := s.values[entity]
	if !ok {
		return nil, ComponentNotFoundError{ComponentType: componentTypeOf[C]().String(), Entity: entity}
	}
	return v, nil
}

// Mask returns the membership bitset.
func (s *hashMapStorage[C]) Mask() *entityBitset { return &s.mask }

// Clear drops every live value.
func (s *hashMapStorage[C]) Clear() {
	s.values = make(map[Entity]*C)
	s.mask.ClearAll()
}

// Len returns the number of entities currently stored.
func (s *hashMapStorage[C]) Len() int { return len(s.values) }

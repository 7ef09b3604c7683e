package ecs

import (
	"fmt"
	"reflect"
)

// tagStorage backs zero-sized marker components: only presence matters, no
// per-entity payload is stored. Get always returns a
// pointer to a single shared zero value; callers must not rely on it being
// distinct per entity.
type tagStorage[C any] struct {
	mask entityBitset
	zero C
}

// NewTagStorage constructs a ComponentStorage[C] for marker components that
// carry no data of their own. Panics if C is not zero-sized: a Tag storage
// holds no payload, so a non-empty C would silently discard fields on
// every Insert.
func NewTagStorage[C any]() ComponentStorage[C] {
	if size := reflect.TypeOf((*C)(nil)).Elem().Size(); size != 0 {
		panic(fmt.Sprintf("ecs: NewTagStorage[%s]: type is not zero-sized (%d bytes)", componentTypeOf[C](), size))
	}
	return &tagStorage[C]{}
}

// Insert marks entity present, ignoring value's contents.
func (s *tagStorage[C]) Insert(entity Entity, value C) error {
	if s.Contains(entity) {
		return ComponentExistsError{ComponentType: componentTypeOf[C]().String(), Entity: entity}
	}
	s.mask.Set(uint64(entity))
	return nil
}

// Remove clears entity's presence bit.
func (s *tagStorage[C]) Remove(entity Entity) error {
	if !s.Contains(entity) {
		return ComponentNotFoundError{ComponentType: componentTypeOf[C]().String(), Entity: entity}
	}
	s.mask.Clear(uint64(entity))
	return nil
}

// Contains reports whether entity's presence bit is set.
func (s *tagStorage[C]) Contains(entity Entity) bool {
	return s.mask.Contains(uint64(entity))
}

// Get returns a pointer to the shared zero value if entity is present.
func (s *tagStorage[C]) Get(entity Entity) (*C, error) {
	if !s.Contains(entity) {
		return nil, ComponentNotFoundError{ComponentType: componentTypeOf[C]().String(), Entity: entity}
	}
	return &s.zero, nil
}

// Mask returns the membership bitset.
func (s *tagStorage[C]) Mask() *entityBitset { return &s.mask }

// Clear drops every live value.
func (s *tagStorage[C]) Clear() { s.mask.ClearAll() }

// Len returns the number of entities currently marked present.
func (s *tagStorage[C]) Len() int { return s.mask.Count() }

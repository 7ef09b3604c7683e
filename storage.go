package ecs

import "reflect"

// ComponentStorage is the common contract of every storage strategy: a
// mapping from Entity to C plus a membership bitset. An entity is in the
// membership bitset iff its data is present.
type ComponentStorage[C any] interface {
	// Insert adds value for entity. Precondition: !Contains(entity).
	Insert(entity Entity, value C) error
	// Remove drops entity's value. Precondition: Contains(entity).
	Remove(entity Entity) error
	// Contains reports whether entity currently has a value.
	Contains(entity Entity) bool
	// Get returns a pointer to entity's value. Precondition: Contains(entity).
	// The pointer is mutable; callers rely on the scheduler's dependency DAG
	// to avoid aliasing writes.
	Get(entity Entity) (*C, error)
	// Mask returns the membership bitset.
	Mask() *entityBitset
	// Clear drops every live value. Safe to call in any state.
	Clear()
	// Len returns the number of entities currently stored.
	Len() int
}

func componentTypeOf[C any]() reflect.Type {
	return reflect.TypeOf((*C)(nil)).Elem()
}

// RegisterComponent assigns storage a process-wide ComponentID (if C has not
// already been assigned one), deposits storage into world as the singleton
// ComponentStorage[C] resource, and deposits a removal thunk into the
// global component registry so EntityIndex.Kill can drop C's data for a
// killed entity without knowing C statically.
func RegisterComponent[C any](world *World, storage ComponentStorage[C]) ComponentID {
	Insert(world, func() ComponentStorage[C] { return storage })
	t := componentTypeOf[C]()
	AddComponentInfos(ComponentInfo{
		Type: t,
		Remove: func(w *World, e Entity) {
			s, ok := TryFetch[ComponentStorage[C]](w)
			if !ok {
				return
			}
			if (*s).Contains(e) {
				_ = (*s).Remove(e)
			}
		},
	})
	id, _ := componentIDFor(t)
	return id
}

// ComponentIDFor returns the process-wide ComponentID for C, registering it
// (without a World-bound storage or removal thunk) if this is the first
// time C has been seen. Useful for building Matchers before a storage
// exists, e.g. in tests.
func ComponentIDFor[C any]() ComponentID {
	t := componentTypeOf[C]()
	if id, ok := componentIDFor(t); ok {
		return id
	}
	AddComponentInfos(ComponentInfo{Type: t})
	id, _ := componentIDFor(t)
	return id
}

// StorageOf fetches the ComponentStorage[C] resource registered for C in
// world. Fatal (panics with the type name) if C was never registered,
// mirroring World.Fetch's contract.
func StorageOf[C any](world *World) ComponentStorage[C] {
	return *Fetch[ComponentStorage[C]](world)
}

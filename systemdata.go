package ecs

import "reflect"

// ResourceIDOf returns the process-wide ResourceID for R, for use when
// building a SystemInfo's resource-id sets.
func ResourceIDOf[R any]() ResourceID { return componentTypeOf[R]() }

// ComponentStorageIDOf returns the ResourceID of C's ComponentStorage[C]
// resource. A system that reads or writes component C declares this ID in
// the appropriate set, since component storages live in the World as
// ordinary resources (RegisterComponent inserts them as such).
func ComponentStorageIDOf[C any]() ResourceID {
	return reflect.TypeOf((*ComponentStorage[C])(nil)).Elem()
}

type entitiesResourceMarker struct{}

// EntitiesResourceID is the synthetic ResourceID standing in for the
// entity index in declared access sets: the entity index isn't a World
// resource, but component-level access still touches it, so it needs its
// own identity in the dependency graph.
var EntitiesResourceID = reflect.TypeOf(entitiesResourceMarker{})

// ReadComponentsIDs returns the ResourceIDs a `ReadComponents<C>` leaf
// touches (storage C plus the entity index), both belonging in whichever
// class (reads_before_write or reads_after_write) the caller declares them
// under.
func ReadComponentsIDs[C any]() []ResourceID {
	return []ResourceID{ComponentStorageIDOf[C](), EntitiesResourceID}
}

// WriteComponentsStorageID returns the ResourceID to place in a SystemInfo's
// Writes set for a WriteComponents<C> leaf. A component write also puts
// the entity index in reads_after_write; callers append EntitiesResourceID
// to ReadsAfterWrite themselves.
func WriteComponentsStorageID[C any]() ResourceID { return ComponentStorageIDOf[C]() }

// ReadBeforeWrite is a typed fetch for a resource a system declared in its
// reads_before_write set: it must observe R's state before
// any of this frame's writers of R run.
type ReadBeforeWrite[R any] struct{ world *World }

// NewReadBeforeWrite binds a ReadBeforeWrite[R] accessor to world.
func NewReadBeforeWrite[R any](world *World) ReadBeforeWrite[R] { return ReadBeforeWrite[R]{world} }

// Get fetches the current value of R.
func (a ReadBeforeWrite[R]) Get() *R { return Fetch[R](a.world) }

// Write is a typed fetch for a resource a system declared in its writes set.
type Write[R any] struct{ world *World }

// NewWrite binds a Write[R] accessor to world.
func NewWrite[R any](world *World) Write[R] { return Write[R]{world} }

// Get fetches R for mutation.
func (a Write[R]) Get() *R { return Fetch[R](a.world) }

// ReadAfterWrite is a typed fetch for a resource a system declared in its
// reads_after_write set: it must observe R's state after every writer of R
// this frame has run.
type ReadAfterWrite[R any] struct{ world *World }

// NewReadAfterWrite binds a ReadAfterWrite[R] accessor to world.
func NewReadAfterWrite[R any](world *World) ReadAfterWrite[R] { return ReadAfterWrite[R]{world} }

// Get fetches the current value of R.
func (a ReadAfterWrite[R]) Get() *R { return Fetch[R](a.world) }

// ReadComponents is the SystemData leaf for `&Components<C>`: it binds the
// storage C was registered under, so a system can fetch per-entity values
// once the scheduler has already guaranteed no conflicting writer of C is
// running concurrently.
type ReadComponents[C any] struct{ storage ComponentStorage[C] }

// NewReadComponents binds a ReadComponents[C] accessor to world's storage
// for C.
func NewReadComponents[C any](world *World) ReadComponents[C] {
	return ReadComponents[C]{storage: StorageOf[C](world)}
}

// Get returns entity's C value, or an error if absent.
func (r ReadComponents[C]) Get(entity Entity) (*C, error) { return r.storage.Get(entity) }

// Contains reports whether entity carries C.
func (r ReadComponents[C]) Contains(entity Entity) bool { return r.storage.Contains(entity) }

// Storage returns the bound ComponentStorage[C], for building a Query/Join
// against it directly.
func (r ReadComponents[C]) Storage() ComponentStorage[C] { return r.storage }

// WriteComponents is the SystemData leaf for `&mut Components<C>`: besides
// binding C's storage for mutation, a component write implies the entity
// index moves on insert/remove, which is why WriteComponents<C> places the
// entity index in reads_after_write (see ReadComponentsIDs/
// WriteComponentsStorageID) rather than writes.
type WriteComponents[C any] struct {
	world   *World
	storage ComponentStorage[C]
}

// NewWriteComponents binds a WriteComponents[C] accessor to world's storage
// for C.
func NewWriteComponents[C any](world *World) WriteComponents[C] {
	return WriteComponents[C]{world: world, storage: StorageOf[C](world)}
}

// Get returns a mutable pointer to entity's C value, or an error if absent.
func (w WriteComponents[C]) Get(entity Entity) (*C, error) { return w.storage.Get(entity) }

// Contains reports whether entity carries C.
func (w WriteComponents[C]) Contains(entity Entity) bool { return w.storage.Contains(entity) }

// Insert adds value for entity, transitioning it to the archetype that
// includes C. Deferred if a Cursor currently holds a borrow on the entity
// index (see AddComponent).
func (w WriteComponents[C]) Insert(entity Entity, value C) error {
	return AddComponent(w.world, entity, w.storage, value)
}

// Remove drops entity's C value, transitioning it out of any archetype
// that included C. Deferred if a Cursor currently holds a borrow on the
// entity index (see RemoveComponent).
func (w WriteComponents[C]) Remove(entity Entity) error {
	return RemoveComponent(w.world, entity, w.storage)
}

// Storage returns the bound ComponentStorage[C].
func (w WriteComponents[C]) Storage() ComponentStorage[C] { return w.storage }

package ecs

import (
	"reflect"
	"sync"

	"github.com/TheBitDrifter/bark"
)

// ResourceID is a resource's process-wide type identity. Go has no TypeId
// builtin; reflect.Type is stable and comparable enough to play that role.
type ResourceID = reflect.Type

// ResourceChangedEvent is pushed on a World's internal event channel every
// time a resource is first inserted.
type ResourceChangedEvent struct {
	Resource ResourceID
}

type resourceCell struct {
	mu    sync.RWMutex
	value any
}

// World is the type-keyed, interior-mutable resource container plus the
// entity index it's paired with for the lifetime of a simulation. Safe
// concurrent access to resources goes through the generic Insert/Fetch
// family below, whose disjointness is guaranteed by the Scheduler's
// dependency DAG, not by the World itself: direct use outside a System's
// declared access set is the unsafe surface and must not alias.
type World struct {
	mu        sync.RWMutex
	resources map[ResourceID]*resourceCell

	entities *EntityIndex

	changes       *EventChannel[ResourceChangedEvent]
	changesReader *ReaderHandle
}

// NewWorld constructs an empty World with its own entity index.
func NewWorld() *World {
	w := &World{
		resources: make(map[ResourceID]*resourceCell),
		entities:  newEntityIndex(),
	}
	w.changes = NewEventChannel[ResourceChangedEvent]()
	return w
}

// Entities returns the World's entity index.
func (w *World) Entities() *EntityIndex { return w.entities }

// ResourceChanges returns the World's "resource changed" event channel.
// Distinct from the process-wide system registry's "system set changed"
// channel the Scheduler watches: a resource insertion doesn't by itself
// trigger a plan rebuild, since a system skipped for a missing resource is
// only reconsidered on the next plan refresh, which is driven solely by
// registry admissions. Exposed for embedders that want to observe
// resource insertions directly.
func (w *World) ResourceChanges() *EventChannel[ResourceChangedEvent] { return w.changes }

// Insert stores the value produced by factory under type R if R is not
// already present, and returns a pointer to the stored value either way.
func Insert[R any](world *World, factory func() R) *R {
	t := componentTypeOf[R]()

	world.mu.Lock()
	cell, existed := world.resources[t]
	if !existed {
		cell = &resourceCell{}
		world.resources[t] = cell
	}
	world.mu.Unlock()

	if existed {
		return cell.value.(*R)
	}

	cell.mu.Lock()
	defer cell.mu.Unlock()
	if cell.value == nil {
		v := factory()
		cell.value = &v
		world.changes.Push(ResourceChangedEvent{Resource: t})
	}
	return cell.value.(*R)
}

// InsertDefault stores R's zero value under type R if R is not already
// present, and returns a pointer to the stored value either way. The
// default-construction counterpart to Insert, for resources that don't
// need a factory (mirrors the Rust source's fetch_or_insert_default).
func InsertDefault[R any](world *World) *R {
	return Insert(world, func() R { var zero R; return zero })
}

// TryFetch looks up R by type, returning (nil, false) if absent.
func TryFetch[R any](world *World) (*R, bool) {
	t := componentTypeOf[R]()
	world.mu.RLock()
	cell, ok := world.resources[t]
	world.mu.RUnlock()
	if !ok {
		return nil, false
	}
	cell.mu.RLock()
	defer cell.mu.RUnlock()
	if cell.value == nil {
		return nil, false
	}
	return cell.value.(*R), true
}

// Fetch returns R, or panics if absent.
func Fetch[R any](world *World) *R {
	v, ok := TryFetch[R](world)
	if !ok {
		panic(bark.AddTrace(ResourceMissingError{TypeName: componentTypeOf[R]().String()}))
	}
	return v
}

// FetchMut is an alias of Fetch: Go pointers are inherently mutable, so
// unlike the Rust source there is no separate immutable-vs-mutable fetch
// method, only a separate *declared access class* (see systemdata.go).
func FetchMut[R any](world *World) *R { return Fetch[R](world) }

// Contains reports whether R has been inserted into world.
func Contains[R any](world *World) bool {
	_, ok := TryFetch[R](world)
	return ok
}

// containsType is Contains[R]'s untyped counterpart, for the Scheduler's
// plan-refresh "is resource-matched" check, which only has
// a reflect.Type (ResourceID) to test, not a static type parameter.
func (w *World) containsType(t ResourceID) bool {
	w.mu.RLock()
	cell, ok := w.resources[t]
	w.mu.RUnlock()
	if !ok {
		return false
	}
	cell.mu.RLock()
	defer cell.mu.RUnlock()
	return cell.value != nil
}

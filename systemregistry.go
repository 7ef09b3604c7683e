package ecs

import "sync"

// SystemSetChangedEvent is pushed whenever AddSystemInfos admits a
// descriptor the registry hadn't already seen.
type SystemSetChangedEvent struct{}

// systemRegistry is the process-wide, append-mostly store of SystemInfo
// descriptors, the counterpart to componentRegistry. Like
// the component registry, writes happen only at plugin load and reads only
// during plan refresh, so a single writer-biased lock suffices.
type systemRegistry struct {
	mu       sync.RWMutex
	admitted []*SystemInfo
	seen     map[*SystemInfo]bool
	changes  *EventChannel[SystemSetChangedEvent]
}

func newSystemRegistry() *systemRegistry {
	return &systemRegistry{
		seen:    make(map[*SystemInfo]bool),
		changes: NewEventChannel[SystemSetChangedEvent](),
	}
}

var globalSystems = newSystemRegistry()

// AddSystemInfos idempotently admits descriptors by pointer identity
// and pushes
// one SystemSetChangedEvent if anything new was admitted.
func AddSystemInfos(infos ...*SystemInfo) {
	globalSystems.mu.Lock()
	changed := false
	for _, info := range infos {
		if globalSystems.seen[info] {
			continue
		}
		globalSystems.seen[info] = true
		globalSystems.admitted = append(globalSystems.admitted, info)
		changed = true
	}
	globalSystems.mu.Unlock()

	if changed {
		globalSystems.changes.Push(SystemSetChangedEvent{})
	}
}

func (r *systemRegistry) snapshot() []*SystemInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*SystemInfo, len(r.admitted))
	copy(out, r.admitted)
	return out
}

// resetGlobalSystemRegistryForTest clears process-wide system registry
// state between tests, mirroring resetGlobalComponentRegistryForTest.
func resetGlobalSystemRegistryForTest() {
	globalSystems.mu.Lock()
	defer globalSystems.mu.Unlock()
	globalSystems.admitted = nil
	globalSystems.seen = make(map[*SystemInfo]bool)
	globalSystems.changes = NewEventChannel[SystemSetChangedEvent]()
}

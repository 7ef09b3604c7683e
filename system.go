package ecs

// System is a stateful unit of per-frame work. Run performs
// one step; the resource sets a system touches are declared separately, on
// its SystemInfo, not on the System value itself.
type System interface {
	Run(world *World)
}

// SystemInfo is a process-wide descriptor: a system's display name, its
// three disjoint resource-id sets, and a factory constructing a fresh
// instance. It carries no separate type-identity field; descriptors are
// compared by address, so two SystemInfo values built from identical
// fields are still distinct admissions.
type SystemInfo struct {
	Name             string
	ReadsBeforeWrite []ResourceID
	Writes           []ResourceID
	ReadsAfterWrite  []ResourceID
	New              func() System
}

// NewSystemInfo constructs a SystemInfo descriptor.
func NewSystemInfo(name string, readsBeforeWrite, writes, readsAfterWrite []ResourceID, factory func() System) *SystemInfo {
	return &SystemInfo{
		Name:             name,
		ReadsBeforeWrite: readsBeforeWrite,
		Writes:           writes,
		ReadsAfterWrite:  readsAfterWrite,
		New:              factory,
	}
}

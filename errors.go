package ecs

import "fmt"

// ComponentExistsError reports inserting a component on an entity that
// already has it.
type ComponentExistsError struct {
	ComponentType string
	Entity        Entity
}

func (e ComponentExistsError) Error() string {
	return fmt.Sprintf("component %s already exists on entity %v", e.ComponentType, e.Entity)
}

// ComponentNotFoundError reports removing or fetching a component that is
// absent from its storage.
type ComponentNotFoundError struct {
	ComponentType string
	Entity        Entity
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component %s not found on entity %v", e.ComponentType, e.Entity)
}

// ResourceMissingError reports a fetch of an absent resource type. Always
// carries the type name so the panic diagnostic is actionable.
type ResourceMissingError struct {
	TypeName string
}

func (e ResourceMissingError) Error() string {
	return fmt.Sprintf("resource not found: %s (call World.Insert first)", e.TypeName)
}

// CircularDependencyError reports a cycle discovered while rebuilding the
// scheduler's dependency plan.
type CircularDependencyError struct {
	Remaining []string
}

func (e CircularDependencyError) Error() string {
	return fmt.Sprintf("circular dependency among systems: %v", e.Remaining)
}

// ChannelClosedError represents a channel that has been explicitly closed. Not raised by
// this core; kept so embedders funneling worker-channel errors through the
// same error taxonomy have a matching type to compare against.
type ChannelClosedError struct{}

func (e ChannelClosedError) Error() string {
	return "channel closed"
}

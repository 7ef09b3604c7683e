package ecs

import "github.com/TheBitDrifter/mask"

// ArchetypeIndex identifies an Archetype within an EntityIndex.
type ArchetypeIndex uint32

// Archetype is an ordered set of component types, identified by an
// ArchetypeIndex. The entity index owns the table of
// archetypes plus lazily populated add/remove transition edges.
type Archetype struct {
	id            ArchetypeIndex
	componentMask mask.Mask
	componentIDs  []ComponentID
	entities      []Entity

	add    map[ComponentID]ArchetypeIndex
	remove map[ComponentID]ArchetypeIndex
}

func newArchetype(id ArchetypeIndex, m mask.Mask, ids []ComponentID) *Archetype {
	return &Archetype{
		id:            id,
		componentMask: m,
		componentIDs:  ids,
		add:           make(map[ComponentID]ArchetypeIndex),
		remove:        make(map[ComponentID]ArchetypeIndex),
	}
}

// ID returns the archetype's index.
func (a *Archetype) ID() ArchetypeIndex { return a.id }

// Mask returns the archetype's component-type membership mask.
func (a *Archetype) Mask() mask.Mask { return a.componentMask }

// ComponentIDs returns every component type this archetype's entities carry.
func (a *Archetype) ComponentIDs() []ComponentID { return a.componentIDs }

// Len returns the number of entities currently in this archetype.
func (a *Archetype) Len() int { return len(a.entities) }

// Entities returns the archetype's entity bucket. Callers must not retain
// the slice across a structural mutation (kill/add/remove component).
func (a *Archetype) Entities() []Entity { return a.entities }

// appendEntity adds e to the bucket and returns its position.
func (a *Archetype) appendEntity(e Entity) int {
	a.entities = append(a.entities, e)
	return len(a.entities) - 1
}

// swapRemove removes the entity at position idx, returning the entity that
// was moved into its place (or 0 if idx was the last element).
func (a *Archetype) swapRemove(idx int) (moved Entity, ok bool) {
	last := len(a.entities) - 1
	if idx < 0 || idx > last {
		return 0, false
	}
	if idx != last {
		a.entities[idx] = a.entities[last]
		moved = a.entities[idx]
		ok = true
	}
	a.entities = a.entities[:last]
	return moved, ok
}

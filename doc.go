/*
Package ecs provides the entity-component-system core of a small
game-engine substrate: a resource container (World), an archetype-tracked
entity index, four component storage strategies, a composable join/query
layer, and a parallel system scheduler that derives a dependency DAG from
declared resource accesses.

Core Concepts:

  - Entity: an opaque, monotonically minted identifier.
  - Resource: a singleton value held by the World, at most one per type.
  - Component: per-entity data held in a ComponentStorage[C].
  - Archetype: the set of component types an entity currently has.
  - System: a unit of work declaring which resources it reads before a
    write, writes, and reads after a write; the Scheduler uses these
    declarations to run independent systems in parallel and order
    dependent ones correctly.

Basic Usage:

	world := ecs.NewWorld()

	position := ecs.NewDenseStorage[Position]()
	velocity := ecs.NewDenseStorage[Velocity]()
	ecs.RegisterComponent(world, position)
	ecs.RegisterComponent(world, velocity)
	posID := ecs.ComponentIDFor[Position]()
	velID := ecs.ComponentIDFor[Velocity]()

	entity, _ := world.CreateEntity(func(b *ecs.EntityBuilder) error {
		ecs.With(b, position, Position{X: 10, Y: 20})
		ecs.With(b, velocity, Velocity{X: 1, Y: 2})
		return nil
	})

	q := ecs.NewQuery(ecs.All(posID, velID))
	for row := range ecs.Join2(world, q, position, velocity) {
		_ = row.Entity // row.A is *Position, row.B is *Velocity
	}

Systems run under a Scheduler. A system's resource sets live on its
SystemInfo, not on the System value itself:

	type MoveSystem struct{}

	func (MoveSystem) Run(world *ecs.World) {
		// ... query and mutate components ...
	}

	moveInfo := ecs.NewSystemInfo(
		"move",
		nil, // reads_before_write
		[]ecs.ResourceID{ecs.WriteComponentsStorageID[Position]()}, // writes
		append([]ecs.ResourceID{ecs.EntitiesResourceID}, ecs.ReadComponentsIDs[Velocity]()...), // reads_after_write
		func() ecs.System { return MoveSystem{} },
	)
	ecs.AddSystemInfos(moveInfo)

	scheduler := ecs.NewScheduler(world)
	scheduler.Tick(world)
*/
package ecs

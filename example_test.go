package ecs_test

import (
	"fmt"

	ecs "github.com/driftforge/ecsrt"
)

// Position is a simple 2D-coordinate component.
type Position struct{ X, Y float64 }

// Velocity is a simple 2D-movement component.
type Velocity struct{ X, Y float64 }

// Example_queryIntersection shows a query matching the intersection of two
// component storages, plus the anti-component filter that matches entities
// lacking one of them.
func Example_queryIntersection() {
	world := ecs.NewWorld()
	position := ecs.NewDenseStorage[Position]()
	velocity := ecs.NewDenseStorage[Velocity]()
	posID := ecs.RegisterComponent(world, position)
	velID := ecs.RegisterComponent(world, velocity)

	world.CreateEntity(func(b *ecs.EntityBuilder) error {
		ecs.With(b, position, Position{X: 1})
		ecs.With(b, velocity, Velocity{X: 2})
		return nil
	})
	world.CreateEntity(func(b *ecs.EntityBuilder) error {
		ecs.With(b, position, Position{X: 11})
		return nil
	})
	world.CreateEntity(func(b *ecs.EntityBuilder) error {
		ecs.With(b, velocity, Velocity{X: 22})
		return nil
	})

	both := ecs.NewQuery(ecs.All(posID, velID))
	for row := range ecs.Join2(world, both, position, velocity) {
		fmt.Printf("both: position=%.0f velocity=%.0f\n", row.A.X, row.B.X)
	}

	posOnly := ecs.NewQuery(ecs.And(ecs.All(posID), ecs.None(velID)))
	cursor := ecs.NewCursor(world, posOnly)
	for {
		e, ok := cursor.Next()
		if !ok {
			break
		}
		p, _ := position.Get(e)
		fmt.Printf("position only: %.0f\n", p.X)
	}
	cursor.Release()

	// Output:
	// both: position=1 velocity=2
	// position only: 11
}

// Example_entityBuilderRollback shows that an EntityBuilder whose closure
// returns an error leaves no entity and no component data behind.
func Example_entityBuilderRollback() {
	world := ecs.NewWorld()
	position := ecs.NewDenseStorage[Position]()
	velocity := ecs.NewDenseStorage[Velocity]()
	ecs.RegisterComponent(world, position)
	ecs.RegisterComponent(world, velocity)

	_, err := world.CreateEntity(func(b *ecs.EntityBuilder) error {
		ecs.With(b, position, Position{X: 5})
		ecs.With(b, velocity, Velocity{X: 6})
		return fmt.Errorf("abort before commit")
	})

	fmt.Println("create error:", err)
	fmt.Println("entity count:", world.Entities().Count())
	fmt.Println("position storage len:", position.Len())
	fmt.Println("velocity storage len:", velocity.Len())

	// Output:
	// create error: abort before commit
	// entity count: 0
	// position storage len: 0
	// velocity storage len: 0
}

package ecs

import "testing"

// TestQueryIntersectionAndAntiComponent covers scenario S1: three entities
// with distinct component sets, queried by intersection, anti-component,
// and the opposite anti-component filter.
func TestQueryIntersectionAndAntiComponent(t *testing.T) {
	w := newTestWorld(t)
	posStorage := NewDenseStorage[testPosition]()
	velStorage := NewDenseStorage[testVelocity]()
	posID := RegisterComponent(w, posStorage)
	velID := RegisterComponent(w, velStorage)

	e1, err := w.CreateEntity(func(b *EntityBuilder) error {
		With(b, posStorage, testPosition{X: 1})
		With(b, velStorage, testVelocity{X: 2})
		return nil
	})
	if err != nil {
		t.Fatalf("CreateEntity e1: %v", err)
	}
	e2, err := w.CreateEntity(func(b *EntityBuilder) error {
		With(b, posStorage, testPosition{X: 11})
		return nil
	})
	if err != nil {
		t.Fatalf("CreateEntity e2: %v", err)
	}
	e3, err := w.CreateEntity(func(b *EntityBuilder) error {
		With(b, velStorage, testVelocity{X: 22})
		return nil
	})
	if err != nil {
		t.Fatalf("CreateEntity e3: %v", err)
	}

	both := NewQuery(All(posID, velID))
	var bothMatches []Entity
	for row := range Join2(w, both, posStorage, velStorage) {
		bothMatches = append(bothMatches, row.Entity)
		if row.A.X != 1 || row.B.X != 2 {
			t.Fatalf("expected (1,2), got (%v,%v)", row.A.X, row.B.X)
		}
	}
	if len(bothMatches) != 1 || bothMatches[0] != e1 {
		t.Fatalf("expected (&A,&B) to match only e1, got %v", bothMatches)
	}

	posOnly := NewQuery(And(All(posID), None(velID)))
	var posOnlyMatches []Entity
	cursor := NewCursor(w, posOnly)
	for {
		e, ok := cursor.Next()
		if !ok {
			break
		}
		posOnlyMatches = append(posOnlyMatches, e)
	}
	cursor.Release()
	if len(posOnlyMatches) != 1 || posOnlyMatches[0] != e2 {
		t.Fatalf("expected (&A,!&B) to match only e2, got %v", posOnlyMatches)
	}
	v, err := posStorage.Get(e2)
	if err != nil || v.X != 11 {
		t.Fatalf("expected e2's Position.X == 11, got %v, err=%v", v, err)
	}

	velOnly := NewQuery(And(All(velID), None(posID)))
	var velOnlyMatches []Entity
	cursor = NewCursor(w, velOnly)
	for {
		e, ok := cursor.Next()
		if !ok {
			break
		}
		velOnlyMatches = append(velOnlyMatches, e)
	}
	cursor.Release()
	if len(velOnlyMatches) != 1 || velOnlyMatches[0] != e3 {
		t.Fatalf("expected (!&A,&B) to match only e3, got %v", velOnlyMatches)
	}
}

// TestQueryMatchCacheIncludesArchetypesCreatedAfterFirstMatch covers the
// incremental matcher-cache cursor: an archetype created after a query's
// first evaluation must still be picked up on a later call.
func TestQueryMatchCacheIncludesArchetypesCreatedAfterFirstMatch(t *testing.T) {
	w := newTestWorld(t)
	posStorage := NewDenseStorage[testPosition]()
	posID := RegisterComponent(w, posStorage)

	q := NewQuery(All(posID))
	if got := w.Entities().Match(q); len(got) != 0 {
		t.Fatalf("expected no matching archetypes yet, got %v", got)
	}

	if _, err := w.CreateEntity(func(b *EntityBuilder) error {
		With(b, posStorage, testPosition{X: 1})
		return nil
	}); err != nil {
		t.Fatalf("CreateEntity: %v", err)
	}

	got := w.Entities().Match(q)
	if len(got) != 1 {
		t.Fatalf("expected 1 matching archetype after insert, got %d", len(got))
	}
}

func TestQueryOrMatchesAnyChild(t *testing.T) {
	w := newTestWorld(t)
	posStorage := NewDenseStorage[testPosition]()
	velStorage := NewDenseStorage[testVelocity]()
	posID := RegisterComponent(w, posStorage)
	velID := RegisterComponent(w, velStorage)

	if _, err := w.CreateEntity(func(b *EntityBuilder) error {
		With(b, posStorage, testPosition{X: 1})
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := w.CreateEntity(func(b *EntityBuilder) error {
		With(b, velStorage, testVelocity{X: 1})
		return nil
	}); err != nil {
		t.Fatal(err)
	}

	q := NewQuery(Or(All(posID), All(velID)))
	matched := w.Entities().Match(q)
	if len(matched) != 2 {
		t.Fatalf("expected Or(pos,vel) to match both single-component archetypes, got %d", len(matched))
	}
}

package ecs

import "testing"

type testVec2 struct {
	X, Y float64
}

// assertStorageContract exercises the common ComponentStorage[C] contract
// (spec.md §4.2) against any constructor, so each variant's test just
// supplies its own NewXStorage function.
func assertStorageContract(t *testing.T, newStorage func() ComponentStorage[testVec2]) {
	t.Helper()

	t.Run("insert and get", func(t *testing.T) {
		s := newStorage()
		if err := s.Insert(1, testVec2{X: 1, Y: 2}); err != nil {
			t.Fatalf("Insert: %v", err)
		}
		if !s.Contains(1) {
			t.Fatal("expected entity 1 to be present")
		}
		v, err := s.Get(1)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if v.X != 1 || v.Y != 2 {
			t.Fatalf("Get returned %+v", v)
		}
		if s.Len() != 1 {
			t.Fatalf("Len() = %d, want 1", s.Len())
		}
		if !s.Mask().Contains(1) {
			t.Fatal("expected membership bitset to mark entity 1")
		}
	})

	t.Run("duplicate insert errors", func(t *testing.T) {
		s := newStorage()
		_ = s.Insert(1, testVec2{})
		if err := s.Insert(1, testVec2{}); err == nil {
			t.Fatal("expected duplicate Insert to error")
		}
	})

	t.Run("get through a written pointer persists", func(t *testing.T) {
		s := newStorage()
		_ = s.Insert(1, testVec2{X: 1})
		v, _ := s.Get(1)
		v.X = 99
		v2, _ := s.Get(1)
		if v2.X != 99 {
			t.Fatalf("mutation through Get pointer did not persist, got X=%v", v2.X)
		}
	})

	t.Run("remove missing errors", func(t *testing.T) {
		s := newStorage()
		if err := s.Remove(1); err == nil {
			t.Fatal("expected Remove of absent entity to error")
		}
	})

	t.Run("remove clears membership", func(t *testing.T) {
		s := newStorage()
		_ = s.Insert(1, testVec2{})
		_ = s.Insert(2, testVec2{})
		if err := s.Remove(1); err != nil {
			t.Fatalf("Remove: %v", err)
		}
		if s.Contains(1) {
			t.Fatal("expected entity 1 to be absent after Remove")
		}
		if !s.Contains(2) {
			t.Fatal("expected entity 2 to remain present")
		}
		if s.Len() != 1 {
			t.Fatalf("Len() = %d, want 1", s.Len())
		}
	})

	t.Run("swap remove keeps surviving entity reachable", func(t *testing.T) {
		s := newStorage()
		_ = s.Insert(1, testVec2{X: 1})
		_ = s.Insert(2, testVec2{X: 2})
		_ = s.Insert(3, testVec2{X: 3})
		_ = s.Remove(1)
		for _, e := range []Entity{2, 3} {
			v, err := s.Get(e)
			if err != nil {
				t.Fatalf("Get(%d) after unrelated Remove: %v", e, err)
			}
			if v.X != float64(e) {
				t.Fatalf("Get(%d).X = %v, want %v", e, v.X, e)
			}
		}
	})

	t.Run("clear drops every live value", func(t *testing.T) {
		s := newStorage()
		_ = s.Insert(1, testVec2{})
		_ = s.Insert(2, testVec2{})
		s.Clear()
		if s.Len() != 0 {
			t.Fatalf("Len() after Clear = %d, want 0", s.Len())
		}
		if s.Contains(1) || s.Contains(2) {
			t.Fatal("expected Clear to drop membership for every entity")
		}
	})

	t.Run("get missing errors", func(t *testing.T) {
		s := newStorage()
		if _, err := s.Get(1); err == nil {
			t.Fatal("expected Get of absent entity to error")
		}
	})
}

package ecs

import "testing"

type testMarker struct{}

func TestTagStoragePresenceOnly(t *testing.T) {
	s := NewTagStorage[testMarker]()
	if err := s.Insert(1, testMarker{}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if !s.Contains(1) {
		t.Fatal("expected entity 1 to be present")
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	if _, err := s.Get(1); err != nil {
		t.Fatalf("Get: %v", err)
	}

	if err := s.Insert(1, testMarker{}); err == nil {
		t.Fatal("expected duplicate Insert to error")
	}

	if err := s.Remove(1); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if s.Contains(1) {
		t.Fatal("expected entity 1 to be absent after Remove")
	}
	if err := s.Remove(1); err == nil {
		t.Fatal("expected Remove of absent entity to error")
	}
}

func TestTagStorageClear(t *testing.T) {
	s := NewTagStorage[testMarker]()
	_ = s.Insert(1, testMarker{})
	_ = s.Insert(2, testMarker{})
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("Len() after Clear = %d, want 0", s.Len())
	}
}

package ecs

import "testing"

func TestHashMapStorageContract(t *testing.T) {
	assertStorageContract(t, func() ComponentStorage[testVec2] { return NewHashMapStorage[testVec2]() })
}

func TestHashMapStoragePointerStableAcrossOtherWrites(t *testing.T) {
	s := NewHashMapStorage[testVec2]()
	_ = s.Insert(1, testVec2{X: 1})
	v1, _ := s.Get(1)
	_ = s.Insert(2, testVec2{X: 2})
	_ = s.Insert(3, testVec2{X: 3})
	v1again, _ := s.Get(1)
	if v1 != v1again {
		t.Fatal("expected entity 1's pointer to stay stable across unrelated inserts")
	}
}

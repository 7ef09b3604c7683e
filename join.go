package ecs

import "iter"

// JoinResult2 is one row of a two-component join: the entity plus a
// mutable pointer into each of its two component values.
type JoinResult2[A, B any] struct {
	Entity Entity
	A      *A
	B      *B
}

// Join2 walks every entity matched by query, fetching each one's A and B
// values from storeA/storeB. The cursor's borrow on the entity index is held
// for the lifetime of the returned sequence and released when iteration
// ends, including on early break.
func Join2[A, B any](world *World, query *Query, storeA ComponentStorage[A], storeB ComponentStorage[B]) iter.Seq[JoinResult2[A, B]] {
	return func(yield func(JoinResult2[A, B]) bool) {
		c := NewCursor(world, query)
		defer c.Release()
		for {
			e, ok := c.Next()
			if !ok {
				return
			}
			a, err := storeA.Get(e)
			if err != nil {
				continue
			}
			b, err := storeB.Get(e)
			if err != nil {
				continue
			}
			if !yield(JoinResult2[A, B]{Entity: e, A: a, B: b}) {
				return
			}
		}
	}
}

// JoinResult3 is one row of a three-component join.
type JoinResult3[A, B, C any] struct {
	Entity Entity
	A      *A
	B      *B
	C      *C
}

// Join3 is Join2 extended to three component types.
func Join3[A, B, C any](world *World, query *Query, storeA ComponentStorage[A], storeB ComponentStorage[B], storeC ComponentStorage[C]) iter.Seq[JoinResult3[A, B, C]] {
	return func(yield func(JoinResult3[A, B, C]) bool) {
		c := NewCursor(world, query)
		defer c.Release()
		for {
			e, ok := c.Next()
			if !ok {
				return
			}
			a, err := storeA.Get(e)
			if err != nil {
				continue
			}
			b, err := storeB.Get(e)
			if err != nil {
				continue
			}
			cv, err := storeC.Get(e)
			if err != nil {
				continue
			}
			if !yield(JoinResult3[A, B, C]{Entity: e, A: a, B: b, C: cv}) {
				return
			}
		}
	}
}

package ecs

import "math/bits"

const bitsetWordBits = 64

// entityBitset is a growable bitset indexed by entity identifier. It backs
// every ComponentStorage[C]'s membership mask. Unlike
// github.com/TheBitDrifter/mask's Mask/Mask256 (fixed-width, sized for
// bounded component-type sets), this grows to cover an unbounded,
// monotonically increasing Entity id space.
type entityBitset struct {
	words []uint64
}

func (b *entityBitset) wordIndex(id uint64) int { return int(id / bitsetWordBits) }
func (b *entityBitset) bitIndex(id uint64) uint  { return uint(id % bitsetWordBits) }

// Set marks id as present.
func (b *entityBitset) Set(id uint64) {
	w := b.wordIndex(id)
	if w >= len(b.words) {
		grown := make([]uint64, w+1)
		copy(grown, b.words)
		b.words = grown
	}
	b.words[w] |= 1 << b.bitIndex(id)
}

// Clear marks id as absent.
func (b *entityBitset) Clear(id uint64) {
	w := b.wordIndex(id)
	if w >= len(b.words) {
		return
	}
	b.words[w] &^= 1 << b.bitIndex(id)
}

// Contains reports whether id is marked present.
func (b *entityBitset) Contains(id uint64) bool {
	w := b.wordIndex(id)
	if w >= len(b.words) {
		return false
	}
	return b.words[w]&(1<<b.bitIndex(id)) != 0
}

// Count returns the number of set bits.
func (b *entityBitset) Count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// ClearAll drops every bit without releasing the backing array.
func (b *entityBitset) ClearAll() {
	for i := range b.words {
		b.words[i] = 0
	}
}

// Each calls fn for every id currently marked present, in ascending order.
func (b *entityBitset) Each(fn func(id uint64)) {
	for wi, w := range b.words {
		for w != 0 {
			bit := bits.TrailingZeros64(w)
			fn(uint64(wi)*bitsetWordBits + uint64(bit))
			w &= w - 1
		}
	}
}

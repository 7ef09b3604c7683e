package ecs

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/TheBitDrifter/bark"
)

var nextChannelID atomic.Uint64

// EventChannel is a single-producer/multi-consumer ring of events. The
// ring's logical head equals min(reader cursor) across every
// still-registered reader; events pushed while no reader is registered
// are discarded on the next push.
type EventChannel[E any] struct {
	mu      sync.Mutex
	id      uint64
	base    int // absolute cursor of events[0]
	events  []E
	readers []*channelReader
}

type channelReader struct {
	cursor int
	closed bool
}

// ReaderHandle identifies a reader registered against one specific
// EventChannel. Using it against a different channel panics (ported from
// the Rust source's debug-only channel-id assertion, made an always-on
// invariant since Go has no debug/release build split, see DESIGN.md).
type ReaderHandle struct {
	channelID uint64
	reader    *channelReader
}

// NewEventChannel constructs an empty channel.
func NewEventChannel[E any]() *EventChannel[E] {
	return &EventChannel[E]{id: nextChannelID.Add(1)}
}

// Register creates a reader whose cursor starts at the channel's current
// write head.
func (c *EventChannel[E]) Register() *ReaderHandle {
	c.mu.Lock()
	defer c.mu.Unlock()
	r := &channelReader{cursor: c.base + len(c.events)}
	c.readers = append(c.readers, r)
	return &ReaderHandle{channelID: c.id, reader: r}
}

// Deregister removes a reader, letting push() compact past its cursor.
// Go has no equivalent of the Rust source's GC-triggered weak-reference
// expiry, so deregistration is explicit.
func (c *EventChannel[E]) Deregister(reader *ReaderHandle) {
	c.assertOwns(reader)
	c.mu.Lock()
	defer c.mu.Unlock()
	reader.reader.closed = true
}

func (c *EventChannel[E]) assertOwns(reader *ReaderHandle) {
	if reader.channelID != c.id {
		panic(bark.AddTrace(fmt.Errorf("ecs: reader of event channel %d used against event channel %d", reader.channelID, c.id)))
	}
}

// Push appends e, first compacting away every event older than the
// slowest still-registered reader (or clearing entirely if none remain).
func (c *EventChannel[E]) Push(e E) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.compactLocked()
	c.events = append(c.events, e)
}

func (c *EventChannel[E]) compactLocked() {
	min := -1
	alive := c.readers[:0]
	for _, r := range c.readers {
		if r.closed {
			continue
		}
		alive = append(alive, r)
		if min == -1 || r.cursor < min {
			min = r.cursor
		}
	}
	c.readers = alive

	if min == -1 {
		c.base += len(c.events)
		c.events = c.events[:0]
		return
	}
	if min > c.base {
		drop := min - c.base
		if drop > len(c.events) {
			drop = len(c.events)
		}
		c.events = append(c.events[:0], c.events[drop:]...)
		c.base = min
	}
}

// Read yields every event from reader's cursor to the current head,
// advances the cursor to head, then compacts away every event all
// still-registered readers have crossed.
func (c *EventChannel[E]) Read(reader *ReaderHandle) []E {
	c.assertOwns(reader)
	c.mu.Lock()
	defer c.mu.Unlock()
	start := reader.reader.cursor - c.base
	if start < 0 {
		start = 0
	}
	if start > len(c.events) {
		start = len(c.events)
	}
	out := make([]E, len(c.events)-start)
	copy(out, c.events[start:])
	reader.reader.cursor = c.base + len(c.events)
	c.compactLocked()
	return out
}

// ReadAny reports whether any event is pending for reader and advances its
// cursor to the current head, without materializing the events.
func (c *EventChannel[E]) ReadAny(reader *ReaderHandle) bool {
	c.assertOwns(reader)
	c.mu.Lock()
	defer c.mu.Unlock()
	head := c.base + len(c.events)
	any := reader.reader.cursor < head
	reader.reader.cursor = head
	return any
}

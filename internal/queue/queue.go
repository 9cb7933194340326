// Package queue implements the bounded message queue used by input
// backends when no callback is registered.
package queue

import (
	"sync"

	"github.com/leandrodaf/rtmidi/sdk/contracts"
)

// Ring is a fixed-capacity FIFO of timestamped messages. Producing into a
// full ring evicts the oldest entry without any signal: live MIDI favors
// recency over completeness. A capacity of zero buffers nothing at all.
//
// The ring is written by one producer context (the backend's notification
// path) and read by the caller's poll calls; the mutex keeps that pairing
// defined behavior even when the caller polls from more than one goroutine.
type Ring struct {
	mu    sync.Mutex
	buf   []contracts.Message
	front int
	count int
}

// New creates a ring holding at most capacity messages. Capacity is fixed
// for the life of the ring; negative values are treated as zero.
func New(capacity int) *Ring {
	if capacity < 0 {
		capacity = 0
	}
	return &Ring{buf: make([]contracts.Message, capacity)}
}

// Push appends a message, evicting the oldest entry when full. With zero
// capacity the message is dropped.
func (r *Ring) Push(msg contracts.Message) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.buf) == 0 {
		return
	}
	if r.count == len(r.buf) {
		r.front = (r.front + 1) % len(r.buf)
		r.count--
	}
	r.buf[(r.front+r.count)%len(r.buf)] = msg
	r.count++
}

// Pop removes and returns the oldest message, or the empty sentinel when
// the ring holds nothing.
func (r *Ring) Pop() contracts.Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.count == 0 {
		return contracts.Message{}
	}
	msg := r.buf[r.front]
	r.buf[r.front] = contracts.Message{}
	r.front = (r.front + 1) % len(r.buf)
	r.count--
	return msg
}

// Len returns the number of queued messages.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Package notify delivers transient user-visible messages ("toasts").
//
// Buffer collects messages until a client drains them. It satisfies the
// single-method notifier used by the core packages.
package notify

import (
	"log"
	"sync"
)

// DefaultCapacity is the buffer size used when capacity is not positive
const DefaultCapacity = 32

// Buffer keeps the most recent messages until drained. Oldest messages are dropped on overflow.
type Buffer struct {
	mu       sync.Mutex
	messages []string
	capacity int
}

// NewBuffer makes a buffer holding up to capacity messages
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{capacity: capacity}
}

// Notify records the message
func (b *Buffer) Notify(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.messages) == b.capacity {
		b.messages = b.messages[1:]
	}
	b.messages = append(b.messages, message)
	log.Printf("[DEBUG] notification: %s", message)
}

// Drain returns pending messages in arrival order and clears the buffer
func (b *Buffer) Drain() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	res := b.messages
	b.messages = nil
	if res == nil {
		return []string{}
	}
	return res
}

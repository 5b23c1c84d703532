package reactive

import (
	"sync"

	"github.com/google/uuid"
)

// Channel is an unordered multicast notifier. Unlike Value it holds no
// state: listeners registered after an emission never see it.
type Channel[T any] struct {
	mu        sync.Mutex
	listeners map[string]func(T)
}

// NewChannel creates an empty broadcast channel.
func NewChannel[T any]() *Channel[T] {
	return &Channel[T]{
		listeners: make(map[string]func(T)),
	}
}

// Subscribe registers a listener for future emissions. The returned
// function removes the listener and is safe to call more than once.
func (c *Channel[T]) Subscribe(listener func(T)) (unsubscribe func()) {
	id := uuid.NewString()

	c.mu.Lock()
	c.listeners[id] = listener
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// Emit synchronously invokes every currently-registered listener with the
// value. The listener set is snapshotted at the start of the call, so
// listeners added during an emission are not invoked for it.
func (c *Channel[T]) Emit(value T) {
	c.mu.Lock()
	fns := make([]func(T), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(value)
	}
}

// Len returns the number of registered listeners.
func (c *Channel[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.listeners)
}

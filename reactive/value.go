package reactive

import (
	"sync"

	"github.com/google/uuid"
)

// Value holds one observable value of type T. The zero value is not
// usable; create instances with NewValue.
type Value[T any] struct {
	mu        sync.Mutex
	current   T
	listeners map[string]func(T)
}

// NewValue creates a Value holding the given initial value.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{
		current:   initial,
		listeners: make(map[string]func(T)),
	}
}

// Get returns the current value. It has no side effects.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}

// Set replaces the value and synchronously notifies every subscriber with
// the new value before returning.
func (v *Value[T]) Set(val T) {
	v.mu.Lock()
	v.current = val
	fns := v.snapshot()
	v.mu.Unlock()

	for _, fn := range fns {
		fn(val)
	}
}

// Update computes a new value from the current one, stores it, and
// notifies subscribers. The transform runs under the value's lock and
// must not call back into the Value.
func (v *Value[T]) Update(f func(T) T) {
	v.mu.Lock()
	v.current = f(v.current)
	val := v.current
	fns := v.snapshot()
	v.mu.Unlock()

	for _, fn := range fns {
		fn(val)
	}
}

// SubscribeOption configures a subscription.
type SubscribeOption func(*subscribeConfig)

type subscribeConfig struct {
	immediate bool
}

// WithoutInitial suppresses the immediate synchronous call the listener
// would otherwise receive with the current value at subscribe time.
func WithoutInitial() SubscribeOption {
	return func(c *subscribeConfig) {
		c.immediate = false
	}
}

// Subscribe registers a listener for value changes. By default the
// listener is invoked once synchronously with the current value before
// Subscribe returns; pass WithoutInitial to skip that call. The returned
// function removes the listener and is safe to call more than once.
func (v *Value[T]) Subscribe(listener func(T), opts ...SubscribeOption) (unsubscribe func()) {
	cfg := subscribeConfig{immediate: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	id := uuid.NewString()

	v.mu.Lock()
	v.listeners[id] = listener
	val := v.current
	v.mu.Unlock()

	if cfg.immediate {
		listener(val)
	}

	return func() {
		v.mu.Lock()
		delete(v.listeners, id)
		v.mu.Unlock()
	}
}

// snapshot copies the listener set. Caller must hold the lock.
func (v *Value[T]) snapshot() []func(T) {
	fns := make([]func(T), 0, len(v.listeners))
	for _, fn := range v.listeners {
		fns = append(fns, fn)
	}
	return fns
}

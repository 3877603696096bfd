// Package lockcell provides a shared, internally-synchronized cell around a
// single value. A *Cell may be held by any number of owners (a cache, an
// event handler, user code); access is serialized per cell with a
// readers-writer lock so concurrent readers never block each other.
package lockcell

import "sync"

// Cell guards one value with a readers-writer lock. Share it by pointer.
type Cell[T any] struct {
	mu    sync.RWMutex
	value T
}

// New returns a cell holding value.
func New[T any](value T) *Cell[T] {
	return &Cell[T]{value: value}
}

// With runs fn with exclusive access to the value. Mutations made through
// the pointer are visible to every later accessor.
func (c *Cell[T]) With(fn func(value *T)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fn(&c.value)
}

// View runs fn with shared access to the value. fn must not retain
// references into the value past its return.
func (c *Cell[T]) View(fn func(value T)) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	fn(c.value)
}

// Get returns a snapshot of the value under a read lock.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.value
}

// Set replaces the value under the write lock.
func (c *Cell[T]) Set(value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = value
}

// View applies a pure projection to the cell's value under a read lock and
// returns the result. Used for single-field peeks so call sites never hold
// the lock longer than one projection.
func View[T, R any](c *Cell[T], fn func(value T) R) R {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return fn(c.value)
}

package reactor

import "sync/atomic"

// Cell is a mutable value with write-invalidation. Reads inside a derived
// computation register a dependency on the cell.
type Cell[T any] struct {
	value T
	gen   atomic.Uint64
}

// NewCell constructs a cell holding value.
func NewCell[T any](value T) *Cell[T] {
	c := &Cell[T]{value: value}
	c.gen.Store(1)
	return c
}

// Get returns the current value, recording a dependency when called during a
// derived computation.
func (c *Cell[T]) Get() T {
	record(c, c.gen.Load())
	return c.value
}

// Set replaces the value and invalidates every derived that read this cell.
func (c *Cell[T]) Set(value T) {
	c.value = value
	c.gen.Add(1)
}

func (c *Cell[T]) refresh() uint64 {
	return c.gen.Load()
}

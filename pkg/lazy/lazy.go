// Package lazy provides compute-once holders and a read-only named
// collection contract.
//
// A [Cell] is empty until its first successful computation and then holds
// the value for the rest of its life. A failed computation leaves the cell
// empty, so the next access computes again. [Map] applies the same rule per
// key.
//
// [Collection] describes a name-keyed, ordered, read-only view whose values
// may be produced on demand, such as a set of service tables whose details
// are fetched only when asked for.
package lazy

import (
	"context"
	"iter"
	"sync"
	"sync/atomic"
)

// Cell holds a value computed at most once successfully.
//
// The zero value is an empty cell ready for use. A Cell must not be copied
// after first use.
type Cell[T any] struct {
	mu     sync.Mutex // serialises computations
	loaded atomic.Bool
	value  T
}

// Get returns the held value, calling fn to compute it if the cell is empty.
// Concurrent callers wait for an in-flight computation rather than starting
// their own. If fn fails, the cell stays empty and the error is returned.
func (c *Cell[T]) Get(fn func() (T, error)) (T, error) {
	if c.loaded.Load() {
		return c.value, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded.Load() {
		return c.value, nil
	}
	v, err := fn()
	if err != nil {
		var zero T
		return zero, err
	}
	c.value = v
	c.loaded.Store(true)
	return v, nil
}

// Peek returns the held value without computing it. It never waits for an
// in-flight computation.
func (c *Cell[T]) Peek() (T, bool) {
	if !c.loaded.Load() {
		var zero T
		return zero, false
	}
	return c.value, true
}

// Loaded reports whether the cell holds a value. It never waits for an
// in-flight computation.
func (c *Cell[T]) Loaded() bool {
	return c.loaded.Load()
}

// Map is a per-key compute-once cache. Entries are never evicted.
//
// The zero value is an empty map ready for use.
type Map[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*Cell[V]
}

// Get returns the value for key, calling fn to compute it on first access.
// Failed computations are not stored.
func (m *Map[K, V]) Get(key K, fn func() (V, error)) (V, error) {
	return m.cell(key).Get(fn)
}

// Peek returns the stored value for key without computing it.
func (m *Map[K, V]) Peek(key K) (V, bool) {
	m.mu.Lock()
	c, ok := m.entries[key]
	m.mu.Unlock()
	if !ok {
		var zero V
		return zero, false
	}
	return c.Peek()
}

// Len returns the number of stored values.
func (m *Map[K, V]) Len() int {
	m.mu.Lock()
	cells := make([]*Cell[V], 0, len(m.entries))
	for _, c := range m.entries {
		cells = append(cells, c)
	}
	m.mu.Unlock()

	n := 0
	for _, c := range cells {
		if c.Loaded() {
			n++
		}
	}
	return n
}

func (m *Map[K, V]) cell(key K) *Cell[V] {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries == nil {
		m.entries = make(map[K]*Cell[V])
	}
	c, ok := m.entries[key]
	if !ok {
		c = &Cell[V]{}
		m.entries[key] = c
	}
	return c
}

// Item pairs a collection key with its value.
type Item[T any] struct {
	Name  string
	Value T
}

// Collection is a read-only, name-keyed view with declared ordering.
//
// Len and Keys are answered from the declaration alone. Lookup, Values and
// Items may compute values on demand; iteration stops after yielding the
// first error.
type Collection[T any] interface {
	// Len returns the number of declared entries.
	Len() int

	// Lookup returns the value for name.
	Lookup(ctx context.Context, name string) (T, error)

	// Keys yields the declared names in order. It never computes values and
	// may be ranged over any number of times.
	Keys() iter.Seq[string]

	// Values yields each value in declared order.
	Values(ctx context.Context) iter.Seq2[T, error]

	// Items yields each name with its value in declared order.
	Items(ctx context.Context) iter.Seq2[Item[T], error]
}

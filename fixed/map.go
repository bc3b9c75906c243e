package fixed

import (
	"cmp"

	"github.com/joshuapare/fixedkit/internal/linear"
)

// KeyValue associates a unique ordered key with a value. Ordering and
// equality are defined by the key alone; two pairs with equal keys are the
// same pair regardless of their values.
type KeyValue[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// Map is a fixed-capacity association of unique ordered keys to values,
// stored as KeyValue pairs sorted by key. Adding an existing key fails and
// keeps the value already present.
type Map[K cmp.Ordered, V any] struct {
	c linear.Collection[KeyValue[K, V], linear.Ordered[KeyValue[K, V]], linear.Forbid]
}

// NewMap returns a Map holding at most capacity pairs. A non-positive
// capacity yields an invalid map whose every operation fails.
func NewMap[K cmp.Ordered, V any](capacity int) *Map[K, V] {
	byKey := func(a, b KeyValue[K, V]) bool { return a.Key < b.Key }
	return &Map[K, V]{
		c: linear.New[KeyValue[K, V], linear.Ordered[KeyValue[K, V]], linear.Forbid](
			capacity, linear.NewOrdered(byKey),
		),
	}
}

// Add associates value with key. It fails when the map is full or invalid,
// or when the key is already present.
func (m *Map[K, V]) Add(key K, value V) bool {
	return m.c.Push(KeyValue[K, V]{Key: key, Value: value})
}

// Remove deletes the pair for key and returns its value. It fails if the
// key is absent.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	var zero V
	i := m.c.Find(KeyValue[K, V]{Key: key})
	if i == m.c.Len() {
		return zero, false
	}
	kv, _ := m.c.RemoveAt(i)
	return kv.Value, true
}

// TryGet returns the value for key without removing it. It fails if the key
// is absent.
func (m *Map[K, V]) TryGet(key K) (V, bool) {
	var zero V
	i := m.c.Find(KeyValue[K, V]{Key: key})
	if i == m.c.Len() {
		return zero, false
	}
	return m.c.At(i).Value, true
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.c.Find(KeyValue[K, V]{Key: key}) != m.c.Len()
}

// At returns the pair at index in key order, without checking index against
// Len.
func (m *Map[K, V]) At(index int) KeyValue[K, V] {
	return m.c.At(index)
}

// Clear resets the map to empty without releasing its storage.
func (m *Map[K, V]) Clear() {
	m.c.Clear()
}

// Len returns the number of pairs.
func (m *Map[K, V]) Len() int { return m.c.Len() }

// Cap returns the fixed capacity.
func (m *Map[K, V]) Cap() int { return m.c.Cap() }

// Valid reports whether the map was constructed with usable storage.
func (m *Map[K, V]) Valid() bool { return m.c.Valid() }

// Full reports whether another add would fail for lack of space.
func (m *Map[K, V]) Full() bool { return m.c.Full() }

// Empty reports whether the map holds no pairs.
func (m *Map[K, V]) Empty() bool { return m.c.Empty() }

// Iter returns an iterator over the pairs in ascending key order.
func (m *Map[K, V]) Iter() linear.Iterator[KeyValue[K, V]] {
	return m.c.Iter()
}

// Package linear implements the storage engine shared by the fixed-capacity
// collections: a single-allocation backing array combined with an indexing
// policy (where elements live) and a duplication policy (whether equal
// elements may coexist). Both policies are type parameters, so policy method
// calls resolve statically and the composed collection carries no interface
// values on its hot paths.
package linear

// Collection is the backbone of every array-backed collection. It owns a
// buffer allocated exactly once at construction and never reallocated; the
// logical content is data[0:size].
//
// A capacity of zero or less leaves the collection permanently invalid: the
// buffer stays nil and every operation fails fast without touching memory.
//
// Collection values must not be copied after first use; a copy would share
// the backing array while tracking its own size.
type Collection[T any, IP IndexingPolicy[T], DP DuplicationPolicy] struct {
	data []T
	size int
	idx  IP
	dup  DP
}

// New constructs a Collection with the given fixed capacity and indexing
// policy. The duplication policy is carried entirely in the type and needs
// no value.
func New[T any, IP IndexingPolicy[T], DP DuplicationPolicy](capacity int, idx IP) Collection[T, IP, DP] {
	c := Collection[T, IP, DP]{idx: idx}
	if capacity > 0 {
		c.data = make([]T, capacity)
	}
	return c
}

// Valid reports whether the backing array is usable. It is false only for
// collections constructed with a non-positive capacity.
func (c *Collection[T, IP, DP]) Valid() bool {
	return c.data != nil
}

// Cap returns the maximum number of elements the collection can hold.
func (c *Collection[T, IP, DP]) Cap() int {
	return len(c.data)
}

// Len returns the current number of elements.
func (c *Collection[T, IP, DP]) Len() int {
	return c.size
}

// Full reports whether the collection cannot accept another element.
// Invalid collections are always full.
func (c *Collection[T, IP, DP]) Full() bool {
	return c.size >= len(c.data)
}

// Empty reports whether the collection holds no elements.
func (c *Collection[T, IP, DP]) Empty() bool {
	return c.size == 0
}

// Push adds item at the position chosen by the indexing policy. It fails if
// the collection is invalid or full, or if the duplication policy forbids
// duplicates and an equal element is already present.
//
// The duplicate check and the position search are fused: when duplicates are
// forbidden the insertion index comes exclusively from the policy's probe,
// never from a second independent search.
func (c *Collection[T, IP, DP]) Push(item T) bool {
	if !c.Valid() || c.Full() {
		return false
	}

	var at int
	if c.dup.AllowsDuplicates() {
		at = c.idx.PushIndex(c.data, c.size, item)
	} else {
		pos := c.idx.FindInsertPosition(c.data, c.size, item)
		if pos.Found {
			return false
		}
		at = pos.Index
	}

	shiftRight(c.data, c.size, at)
	c.data[at] = item
	c.size++
	return true
}

// InsertAt places item at a caller-chosen index, shifting the tail right.
// index == Len() appends. It fails on invalid or full collections, on an
// out-of-range index, or when the duplication policy rejects the item.
func (c *Collection[T, IP, DP]) InsertAt(item T, index int) bool {
	if !c.Valid() || c.Full() || index < 0 || index > c.size {
		return false
	}
	if !c.dup.AllowsDuplicates() && c.idx.Find(c.data, c.size, item) != c.size {
		return false
	}

	shiftRight(c.data, c.size, index)
	c.data[index] = item
	c.size++
	return true
}

// RemoveAt removes and returns the element at index, shifting the tail left.
// It fails on invalid collections and out-of-range indices.
func (c *Collection[T, IP, DP]) RemoveAt(index int) (T, bool) {
	var out T
	if !c.Valid() || index < 0 || index >= c.size {
		return out, false
	}

	out = c.data[index]
	shiftLeft(c.data, c.size, index)
	c.size--
	return out, true
}

// RemoveFirst removes the first element equal to item under the policy's
// search. It fails if no such element exists.
func (c *Collection[T, IP, DP]) RemoveFirst(item T) bool {
	i := c.idx.Find(c.data, c.size, item)
	if i == c.size {
		return false
	}
	_, ok := c.RemoveAt(i)
	return ok
}

// RemoveAll removes every element equal to item and returns how many were
// removed. Zero means nothing matched.
func (c *Collection[T, IP, DP]) RemoveAll(item T) int {
	removed := c.idx.RemoveAll(c.data, c.size, item)
	c.size -= removed
	return removed
}

// Pop removes and returns the element at the policy's pop index, which for
// both shipped policies is the highest occupied slot. It fails when empty.
func (c *Collection[T, IP, DP]) Pop() (T, bool) {
	var out T
	if c.size == 0 {
		return out, false
	}
	return c.RemoveAt(c.idx.PopIndex(c.size))
}

// Find returns the index of the first element equal to item, or Len() when
// absent. Len() doubles as the not-found sentinel so callers can compare
// against it without a second method call.
func (c *Collection[T, IP, DP]) Find(item T) int {
	return c.idx.Find(c.data, c.size, item)
}

// At returns the element at index without bounds checking beyond the
// slice's own. Indices at or past Len() read residual slots; callers must
// ensure index < Len().
func (c *Collection[T, IP, DP]) At(index int) T {
	return c.data[index]
}

// Clear resets the logical size to zero. Residual slots keep their old
// values and are overwritten lazily by future insertions.
func (c *Collection[T, IP, DP]) Clear() {
	c.size = 0
}

// Iter returns an iterator over the logical content in index order. The
// iterator snapshots the current size; mutating the collection while
// iterating leaves the iterator reading stale or shifted slots.
func (c *Collection[T, IP, DP]) Iter() Iterator[T] {
	return Iterator[T]{data: c.data, size: c.size}
}

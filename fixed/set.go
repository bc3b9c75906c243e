package fixed

import "github.com/joshuapare/fixedkit/internal/linear"

// Set is a fixed-capacity collection in insertion order that rejects
// duplicates. Elements are readable by index but not replaceable in place.
type Set[T comparable] struct {
	c linear.Collection[T, linear.Sequential[T], linear.Forbid]
}

// NewSet returns a Set holding at most capacity elements. A non-positive
// capacity yields an invalid set whose every operation fails.
func NewSet[T comparable](capacity int) *Set[T] {
	return &Set[T]{
		c: linear.New[T, linear.Sequential[T], linear.Forbid](capacity, linear.Sequential[T]{}),
	}
}

// Insert appends item. It fails when the set is full or invalid, or when an
// equal element is already present.
func (s *Set[T]) Insert(item T) bool {
	return s.c.Push(item)
}

// InsertAt places item at index, shifting later elements right; index ==
// Len() appends. It fails like Insert, and additionally on an out-of-range
// index.
func (s *Set[T]) InsertAt(item T, index int) bool {
	return s.c.InsertAt(item, index)
}

// Erase removes the element equal to item. It fails if none is present.
func (s *Set[T]) Erase(item T) bool {
	return s.c.RemoveFirst(item)
}

// Contains reports whether an element equal to item is present.
func (s *Set[T]) Contains(item T) bool {
	return s.c.Find(item) != s.c.Len()
}

// At returns the element at index without checking it against Len.
func (s *Set[T]) At(index int) T {
	return s.c.At(index)
}

// Clear resets the set to empty without releasing its storage.
func (s *Set[T]) Clear() {
	s.c.Clear()
}

// Len returns the number of elements.
func (s *Set[T]) Len() int { return s.c.Len() }

// Cap returns the fixed capacity.
func (s *Set[T]) Cap() int { return s.c.Cap() }

// Valid reports whether the set was constructed with usable storage.
func (s *Set[T]) Valid() bool { return s.c.Valid() }

// Full reports whether another insert would fail for lack of space.
func (s *Set[T]) Full() bool { return s.c.Full() }

// Empty reports whether the set holds no elements.
func (s *Set[T]) Empty() bool { return s.c.Empty() }

// Iter returns an iterator over the elements in insertion order.
func (s *Set[T]) Iter() linear.Iterator[T] {
	return s.c.Iter()
}

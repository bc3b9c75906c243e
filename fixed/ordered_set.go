package fixed

import (
	"cmp"

	"github.com/joshuapare/fixedkit/internal/linear"
)

// OrderedSet is a fixed-capacity collection kept sorted under a comparator,
// rejecting duplicates. One binary search resolves both the insertion point
// and the duplicate check.
type OrderedSet[T any] struct {
	c linear.Collection[T, linear.Ordered[T], linear.Forbid]
}

// NewOrderedSet returns an ascending OrderedSet holding at most capacity
// elements. A non-positive capacity yields an invalid set whose every
// operation fails.
func NewOrderedSet[T cmp.Ordered](capacity int) *OrderedSet[T] {
	return NewOrderedSetBy[T](capacity, Ascending[T]())
}

// NewOrderedSetBy is like NewOrderedSet with an explicit comparator.
// Elements that the comparator does not order against each other count as
// duplicates.
func NewOrderedSetBy[T any](capacity int, less Less[T]) *OrderedSet[T] {
	return &OrderedSet[T]{
		c: linear.New[T, linear.Ordered[T], linear.Forbid](capacity, linear.NewOrdered[T](less)),
	}
}

// Insert places item at its sorted position. It fails when the set is full
// or invalid, or when an equal element is already present.
func (s *OrderedSet[T]) Insert(item T) bool {
	return s.c.Push(item)
}

// Erase removes the element equal to item. It fails if none is present.
func (s *OrderedSet[T]) Erase(item T) bool {
	return s.c.RemoveFirst(item)
}

// Contains reports whether an element equal to item is present.
func (s *OrderedSet[T]) Contains(item T) bool {
	return s.c.Find(item) != s.c.Len()
}

// At returns the element at index without checking it against Len.
func (s *OrderedSet[T]) At(index int) T {
	return s.c.At(index)
}

// Clear resets the set to empty without releasing its storage.
func (s *OrderedSet[T]) Clear() {
	s.c.Clear()
}

// Len returns the number of elements.
func (s *OrderedSet[T]) Len() int { return s.c.Len() }

// Cap returns the fixed capacity.
func (s *OrderedSet[T]) Cap() int { return s.c.Cap() }

// Valid reports whether the set was constructed with usable storage.
func (s *OrderedSet[T]) Valid() bool { return s.c.Valid() }

// Full reports whether another insert would fail for lack of space.
func (s *OrderedSet[T]) Full() bool { return s.c.Full() }

// Empty reports whether the set holds no elements.
func (s *OrderedSet[T]) Empty() bool { return s.c.Empty() }

// Iter returns an iterator over the elements in sort order.
func (s *OrderedSet[T]) Iter() linear.Iterator[T] {
	return s.c.Iter()
}

package fixed

import (
	"cmp"

	"github.com/joshuapare/fixedkit/internal/linear"
)

// OrderedVector is a fixed-capacity collection kept sorted under a
// comparator. Duplicates are allowed; equal elements keep their insertion
// order. Unlike Vector it has no stack behavior.
type OrderedVector[T any] struct {
	c linear.Collection[T, linear.Ordered[T], linear.Allow]
}

// NewOrderedVector returns an ascending OrderedVector holding at most
// capacity elements. A non-positive capacity yields an invalid vector whose
// every operation fails.
func NewOrderedVector[T cmp.Ordered](capacity int) *OrderedVector[T] {
	return NewOrderedVectorBy[T](capacity, Ascending[T]())
}

// NewOrderedVectorBy is like NewOrderedVector with an explicit comparator,
// for descending or domain-specific orders.
func NewOrderedVectorBy[T any](capacity int, less Less[T]) *OrderedVector[T] {
	return &OrderedVector[T]{
		c: linear.New[T, linear.Ordered[T], linear.Allow](capacity, linear.NewOrdered[T](less)),
	}
}

// Insert places item at its sorted position, after any elements equal to
// it. It fails when the vector is full or invalid.
func (v *OrderedVector[T]) Insert(item T) bool {
	return v.c.Push(item)
}

// RemoveFirst removes the first element equal to item under the comparator.
// It fails if none is present.
func (v *OrderedVector[T]) RemoveFirst(item T) bool {
	return v.c.RemoveFirst(item)
}

// RemoveAll removes the whole run of elements equal to item and returns how
// many were removed. The cost is two binary searches plus one shift of the
// tail, regardless of the run length.
func (v *OrderedVector[T]) RemoveAll(item T) int {
	return v.c.RemoveAll(item)
}

// Front returns the first element in sort order. The vector must not be
// empty.
func (v *OrderedVector[T]) Front() T {
	return v.c.At(0)
}

// Back returns the last element in sort order. The vector must not be
// empty.
func (v *OrderedVector[T]) Back() T {
	return v.c.At(v.c.Len() - 1)
}

// At returns the element at index without checking it against Len.
func (v *OrderedVector[T]) At(index int) T {
	return v.c.At(index)
}

// Clear resets the vector to empty without releasing its storage.
func (v *OrderedVector[T]) Clear() {
	v.c.Clear()
}

// Len returns the number of elements.
func (v *OrderedVector[T]) Len() int { return v.c.Len() }

// Cap returns the fixed capacity.
func (v *OrderedVector[T]) Cap() int { return v.c.Cap() }

// Valid reports whether the vector was constructed with usable storage.
func (v *OrderedVector[T]) Valid() bool { return v.c.Valid() }

// Full reports whether another insert would fail for lack of space.
func (v *OrderedVector[T]) Full() bool { return v.c.Full() }

// Empty reports whether the vector holds no elements.
func (v *OrderedVector[T]) Empty() bool { return v.c.Empty() }

// Iter returns an iterator over the elements in sort order.
func (v *OrderedVector[T]) Iter() linear.Iterator[T] {
	return v.c.Iter()
}

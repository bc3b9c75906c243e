package fixed

import (
	"github.com/joshuapare/fixedkit/fixed/isr"
	"github.com/joshuapare/fixedkit/internal/linear"
)

// Vector is a fixed-capacity collection in insertion order, usable as a
// stack: Push appends and Pop removes the most recently pushed element.
// Duplicates are allowed.
type Vector[T comparable] struct {
	c    linear.Collection[T, linear.Sequential[T], linear.Allow]
	line *isr.Line
}

// NewVector returns a Vector holding at most capacity elements, with its
// atomic operations bound to the default interrupt line. A non-positive
// capacity yields an invalid vector whose every operation fails.
func NewVector[T comparable](capacity int) *Vector[T] {
	return NewVectorOn[T](capacity, isr.Default())
}

// NewVectorOn is like NewVector but binds the atomic operations to an
// explicit line, isolating this vector's critical sections from other
// sharing domains.
func NewVectorOn[T comparable](capacity int, line *isr.Line) *Vector[T] {
	return &Vector[T]{
		c:    linear.New[T, linear.Sequential[T], linear.Allow](capacity, linear.Sequential[T]{}),
		line: line,
	}
}

// Push appends item. It fails when the vector is full or invalid.
func (v *Vector[T]) Push(item T) bool {
	return v.c.Push(item)
}

// Pop removes and returns the most recently pushed element. It fails when
// the vector is empty or invalid.
func (v *Vector[T]) Pop() (T, bool) {
	return v.c.Pop()
}

// PushAtomic runs Push inside a critical section so a handler sharing this
// vector can never observe a torn push. It must not be called from inside a
// handler on the same line.
func (v *Vector[T]) PushAtomic(item T) bool {
	s := v.line.Acquire()
	defer s.Release()
	return v.c.Push(item)
}

// PopAtomic runs Pop inside a critical section. It must not be called from
// inside a handler on the same line.
func (v *Vector[T]) PopAtomic() (T, bool) {
	s := v.line.Acquire()
	defer s.Release()
	return v.c.Pop()
}

// InsertAt places item at index, shifting later elements right; index ==
// Len() appends. It fails on a full or invalid vector or an out-of-range
// index.
func (v *Vector[T]) InsertAt(item T, index int) bool {
	return v.c.InsertAt(item, index)
}

// RemoveAt removes and returns the element at index, shifting later
// elements left.
func (v *Vector[T]) RemoveAt(index int) (T, bool) {
	return v.c.RemoveAt(index)
}

// RemoveFirst removes the first element equal to item. It fails if none is
// present.
func (v *Vector[T]) RemoveFirst(item T) bool {
	return v.c.RemoveFirst(item)
}

// RemoveAll removes every element equal to item in one compaction pass,
// preserving the order of the survivors, and returns how many were removed.
func (v *Vector[T]) RemoveAll(item T) int {
	return v.c.RemoveAll(item)
}

// Front returns the oldest element. The vector must not be empty.
func (v *Vector[T]) Front() T {
	return v.c.At(0)
}

// Back returns the most recently pushed element. The vector must not be
// empty.
func (v *Vector[T]) Back() T {
	return v.c.At(v.c.Len() - 1)
}

// At returns the element at index without checking it against Len.
func (v *Vector[T]) At(index int) T {
	return v.c.At(index)
}

// Clear resets the vector to empty without releasing its storage.
func (v *Vector[T]) Clear() {
	v.c.Clear()
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.c.Len() }

// Cap returns the fixed capacity.
func (v *Vector[T]) Cap() int { return v.c.Cap() }

// Valid reports whether the vector was constructed with usable storage.
func (v *Vector[T]) Valid() bool { return v.c.Valid() }

// Full reports whether another push would fail for lack of space.
func (v *Vector[T]) Full() bool { return v.c.Full() }

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool { return v.c.Empty() }

// Iter returns an iterator over the elements in insertion order.
func (v *Vector[T]) Iter() linear.Iterator[T] {
	return v.c.Iter()
}

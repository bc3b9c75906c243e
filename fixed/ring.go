package fixed

import "github.com/joshuapare/fixedkit/fixed/isr"

// RingBuffer is a fixed-capacity circular FIFO. head tracks the oldest
// element's physical slot and tail the next write slot; logical index i
// lives at physical slot (head+i) mod capacity. A full buffer rejects
// pushes rather than overwriting.
type RingBuffer[T any] struct {
	data []T
	head int
	tail int
	size int
	line *isr.Line
}

// NewRingBuffer returns a RingBuffer holding at most capacity elements,
// with its atomic operations bound to the default interrupt line. A
// non-positive capacity yields an invalid buffer whose every operation
// fails.
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	return NewRingBufferOn[T](capacity, isr.Default())
}

// NewRingBufferOn is like NewRingBuffer but binds the atomic operations to
// an explicit line, isolating this buffer's critical sections from other
// sharing domains.
func NewRingBufferOn[T any](capacity int, line *isr.Line) *RingBuffer[T] {
	r := &RingBuffer[T]{line: line}
	if capacity > 0 {
		r.data = make([]T, capacity)
	}
	return r
}

func (r *RingBuffer[T]) next(i int) int {
	return (i + 1) % len(r.data)
}

func (r *RingBuffer[T]) prev(i int) int {
	return (i + len(r.data) - 1) % len(r.data)
}

func (r *RingBuffer[T]) physical(logical int) int {
	return (r.head + logical) % len(r.data)
}

// Push appends item at the tail. It fails when the buffer is full or
// invalid; no element is ever overwritten.
func (r *RingBuffer[T]) Push(item T) bool {
	if !r.Valid() || r.Full() {
		return false
	}
	r.data[r.tail] = item
	r.tail = r.next(r.tail)
	r.size++
	return true
}

// Pop removes and returns the oldest element. It fails when the buffer is
// empty or invalid.
func (r *RingBuffer[T]) Pop() (T, bool) {
	var out T
	if !r.Valid() || r.size == 0 {
		return out, false
	}
	out = r.data[r.head]
	r.head = r.next(r.head)
	r.size--
	return out, true
}

// PushAtomic runs Push inside a critical section so a handler sharing this
// buffer can never observe a torn push. It must not be called from inside a
// handler on the same line; releasing the section would re-enable delivery
// while the handler is still running.
func (r *RingBuffer[T]) PushAtomic(item T) bool {
	s := r.line.Acquire()
	defer s.Release()
	return r.Push(item)
}

// PopAtomic runs Pop inside a critical section. It must not be called from
// inside a handler on the same line.
func (r *RingBuffer[T]) PopAtomic() (T, bool) {
	s := r.line.Acquire()
	defer s.Release()
	return r.Pop()
}

// Front returns the oldest element. The buffer must not be empty.
func (r *RingBuffer[T]) Front() T {
	return r.data[r.head]
}

// Back returns the newest element. The buffer must not be empty.
func (r *RingBuffer[T]) Back() T {
	return r.data[r.prev(r.tail)]
}

// At returns the element at logical index, counted from the oldest, without
// checking it against Len.
func (r *RingBuffer[T]) At(index int) T {
	return r.data[r.physical(index)]
}

// Clear resets the buffer to empty without data movement; slots are
// overwritten by later pushes.
func (r *RingBuffer[T]) Clear() {
	r.head = 0
	r.tail = 0
	r.size = 0
}

// Len returns the number of buffered elements.
func (r *RingBuffer[T]) Len() int { return r.size }

// Cap returns the fixed capacity.
func (r *RingBuffer[T]) Cap() int { return len(r.data) }

// Valid reports whether the buffer was constructed with usable storage.
func (r *RingBuffer[T]) Valid() bool { return r.data != nil }

// Full reports whether another push would fail for lack of space.
func (r *RingBuffer[T]) Full() bool { return r.size >= len(r.data) }

// Empty reports whether the buffer holds no elements.
func (r *RingBuffer[T]) Empty() bool { return r.size == 0 }

// Iter returns an iterator from the oldest to the newest element,
// independent of where the content physically wraps.
func (r *RingBuffer[T]) Iter() RingIterator[T] {
	return RingIterator[T]{data: r.data, head: r.head, size: r.size}
}

// RingIterator walks a ring buffer's logical content oldest-first. It
// snapshots head and size at creation; mutating the buffer mid-iteration is
// a caller error.
type RingIterator[T any] struct {
	data []T
	head int
	size int
	pos  int
}

// Next returns the next element and true, or the zero value and false once
// the sequence is exhausted.
func (it *RingIterator[T]) Next() (T, bool) {
	var out T
	if it.pos >= it.size {
		return out, false
	}
	out = it.data[(it.head+it.pos)%len(it.data)]
	it.pos++
	return out, true
}

// Reset rewinds the iterator to the oldest element of its snapshot.
func (it *RingIterator[T]) Reset() {
	it.pos = 0
}

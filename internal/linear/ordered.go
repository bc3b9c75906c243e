package linear

import "sort"

// Ordered is the indexing policy for sorted collections. All positions
// resolve by binary search against the injected comparator; two elements
// are considered equal when neither orders before the other, so element
// types never need an equality operator of their own.
type Ordered[T any] struct {
	less func(a, b T) bool
}

// NewOrdered returns an Ordered policy sorting by less. less must be a
// strict weak ordering; ascending and descending are both expressed through
// it.
func NewOrdered[T any](less func(a, b T) bool) Ordered[T] {
	return Ordered[T]{less: less}
}

// lowerBound returns the first index whose element does not order before
// item, which is size when every element does.
func (p Ordered[T]) lowerBound(data []T, size int, item T) int {
	return sort.Search(size, func(i int) bool {
		return !p.less(data[i], item)
	})
}

// upperBound returns the first index whose element orders after item.
func (p Ordered[T]) upperBound(data []T, size int, item T) int {
	return sort.Search(size, func(i int) bool {
		return p.less(item, data[i])
	})
}

func (p Ordered[T]) equiv(a, b T) bool {
	return !p.less(a, b) && !p.less(b, a)
}

// PushIndex returns the upper bound, so a duplicate-allowing push lands
// after every element equal to item and equal neighbours keep their
// insertion order.
func (p Ordered[T]) PushIndex(data []T, size int, item T) int {
	return p.upperBound(data, size, item)
}

// Find returns the index of the first element equal to item under the
// comparator, or size when absent.
func (p Ordered[T]) Find(data []T, size int, item T) int {
	i := p.lowerBound(data, size, item)
	if i < size && p.equiv(data[i], item) {
		return i
	}
	return size
}

// FindInsertPosition runs one lower-bound search and reports both the
// index and whether that slot already holds an equal element. Collections
// that forbid duplicates insert at the probe index directly; no second
// search happens.
func (p Ordered[T]) FindInsertPosition(data []T, size int, item T) Probe {
	i := p.lowerBound(data, size, item)
	return Probe{
		Index: i,
		Found: i < size && p.equiv(data[i], item),
	}
}

// RemoveAll locates the contiguous run of elements equal to item with a
// lower-bound and an upper-bound probe, then shifts the remainder down over
// the run in one pass. The cost is two binary searches plus a single copy,
// regardless of the run length.
func (p Ordered[T]) RemoveAll(data []T, size int, item T) int {
	lo := p.lowerBound(data, size, item)
	if lo == size || !p.equiv(data[lo], item) {
		return 0
	}

	hi := p.upperBound(data, size, item)
	copy(data[lo:], data[hi:size])
	return hi - lo
}

// PopIndex removes from the highest occupied slot, the maximum under an
// ascending comparator.
func (p Ordered[T]) PopIndex(size int) int {
	return size - 1
}

package linear

// Iterator walks a collection's logical content in index order. It holds a
// snapshot of the size taken when it was created; mutating the collection
// mid-iteration is a caller error and yields shifted or stale elements.
type Iterator[T any] struct {
	data []T
	size int
	pos  int
}

// Next returns the next element and true, or the zero value and false once
// the sequence is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	var out T
	if it.pos >= it.size {
		return out, false
	}
	out = it.data[it.pos]
	it.pos++
	return out, true
}

// Reset rewinds the iterator to the first element.
func (it *Iterator[T]) Reset() {
	it.pos = 0
}

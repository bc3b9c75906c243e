package linear

// Sequential is the indexing policy for unordered collections: pushes
// append, searches scan linearly, and RemoveAll compacts survivors in one
// pass preserving their relative order.
type Sequential[T comparable] struct{}

// PushIndex appends, so the insertion index is always the current size.
func (Sequential[T]) PushIndex(_ []T, size int, _ T) int {
	return size
}

// Find scans data[0:size] for the first element equal to item and returns
// its index, or size when absent.
func (Sequential[T]) Find(data []T, size int, item T) int {
	for i := 0; i < size; i++ {
		if data[i] == item {
			return i
		}
	}
	return size
}

// FindInsertPosition appends like PushIndex but also reports whether an
// equal element is already present, via a full linear scan.
func (s Sequential[T]) FindInsertPosition(data []T, size int, item T) Probe {
	return Probe{
		Index: size,
		Found: s.Find(data, size, item) != size,
	}
}

// RemoveAll copies every survivor down over the removed elements in a
// single pass and returns the number removed.
func (Sequential[T]) RemoveAll(data []T, size int, item T) int {
	write := 0
	for read := 0; read < size; read++ {
		if data[read] != item {
			data[write] = data[read]
			write++
		}
	}
	return size - write
}

// PopIndex removes from the top of the stack.
func (Sequential[T]) PopIndex(size int) int {
	return size - 1
}

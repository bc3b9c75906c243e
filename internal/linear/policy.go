package linear

// Probe is the result of a fused position search: the index where an
// insertion should occur and whether an equal element already occupies the
// collection.
type Probe struct {
	Index int
	Found bool
}

// IndexingPolicy decides where elements live inside a Collection's backing
// array. Implementations operate on the raw buffer handed to them by the
// engine and never touch the size bookkeeping themselves, except RemoveAll,
// which compacts the buffer and reports how many slots it freed.
type IndexingPolicy[T any] interface {
	// PushIndex returns the index a plain push should insert at.
	PushIndex(data []T, size int, item T) int

	// Find returns the index of the first element equal to item, or size
	// when absent.
	Find(data []T, size int, item T) int

	// FindInsertPosition resolves, in one traversal, both the insertion
	// index for item and whether an equal element is already present.
	FindInsertPosition(data []T, size int, item T) Probe

	// RemoveAll removes every element equal to item from data[0:size],
	// compacts the survivors, and returns the number removed.
	RemoveAll(data []T, size int, item T) int

	// PopIndex returns the index a pop should remove. size is at least 1.
	PopIndex(size int) int
}

// DuplicationPolicy decides whether a Collection may hold equal elements.
type DuplicationPolicy interface {
	AllowsDuplicates() bool
}

var (
	_ IndexingPolicy[int] = Sequential[int]{}
	_ IndexingPolicy[int] = Ordered[int]{}
	_ DuplicationPolicy   = Allow{}
	_ DuplicationPolicy   = Forbid{}
)

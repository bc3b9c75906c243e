package linear

// shiftRight opens a hole at index by moving data[index:size] one slot up.
// The caller must guarantee size < len(data).
func shiftRight[T any](data []T, size, index int) {
	copy(data[index+1:size+1], data[index:size])
}

// shiftLeft closes the hole at index by moving data[index+1:size] one slot
// down. The vacated slot at size-1 keeps its old value.
func shiftLeft[T any](data []T, size, index int) {
	copy(data[index:size-1], data[index+1:size])
}

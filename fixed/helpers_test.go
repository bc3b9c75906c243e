package fixed

import "github.com/joshuapare/fixedkit/internal/linear"

func collect[T any](it linear.Iterator[T]) []T {
	var out []T
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}
	return out
}

func collectRing[T any](it RingIterator[T]) []T {
	var out []T
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}
	return out
}

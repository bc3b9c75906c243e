package fixed

import (
	"cmp"

	"golang.org/x/text/collate"
)

// Less reports whether a orders before b. It must describe a strict weak
// ordering; elements are considered equal when neither orders before the
// other.
type Less[T any] func(a, b T) bool

// Ascending orders smaller elements first.
func Ascending[T cmp.Ordered]() Less[T] {
	return func(a, b T) bool { return a < b }
}

// Descending orders larger elements first.
func Descending[T cmp.Ordered]() Less[T] {
	return func(a, b T) bool { return a > b }
}

// Collated orders strings by a collator, for locale-aware ordered
// containers:
//
//	v := fixed.NewOrderedVectorBy(8, fixed.Collated(collate.New(language.Danish)))
//
// Strings that compare equal under the collator are duplicates to a
// deduplicating container even when their bytes differ.
func Collated(c *collate.Collator) Less[string] {
	return func(a, b string) bool { return c.CompareString(a, b) < 0 }
}

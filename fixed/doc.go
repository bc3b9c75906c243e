// Package fixed provides fixed-capacity, array-backed collections that
// allocate exactly once and never grow.
//
// # Overview
//
// Every container in this package is built for hosts where reallocation is
// unacceptable: the backing array is allocated at construction, operations
// either complete immediately or fail immediately, and nothing is logged,
// retried, or thrown. Failure is always reported through a boolean, with an
// output value populated only on success.
//
// # Containers
//
// The collection types are thin facades over one shared engine:
//
//   - Vector: insertion-ordered, duplicates allowed, stack-style Pop
//   - Set: insertion-ordered, duplicates rejected
//   - OrderedVector: sorted by a comparator, duplicates allowed
//   - OrderedSet: sorted by a comparator, duplicates rejected
//   - Map: key-value pairs sorted and deduplicated by key alone
//
// RingBuffer stands apart: a circular FIFO with its own wrap-around index
// arithmetic and interrupt-safe atomic entry points.
//
// # Capacity and Validity
//
// Constructors take an explicit capacity. A capacity of zero or less yields
// a permanently invalid container: Valid reports false and every operation
// fails without touching memory. Clear resets the logical size without
// freeing or zeroing slots; stale values are overwritten by later writes.
//
// # Unchecked Access
//
// At, Front, and Back do not range-check against the logical size. Reading
// an index at or past Len returns residual slot contents; reading with an
// index outside the backing array panics. Callers check Len or Empty first;
// this is a usage contract, not a reported error.
//
// # Ordering
//
// Ordered containers take a Less function. Ascending and Descending cover
// ordered element types; Collated adapts a collate.Collator for
// locale-aware string ordering. Two elements are equal when neither orders
// before the other, which is how Map deduplicates by key while ignoring
// values.
//
// # Interrupt Safety
//
// Plain operations provide no cross-context protection. Vector and
// RingBuffer additionally expose PushAtomic and PopAtomic, which wrap the
// plain operation in a critical section on an isr.Line so a concurrent
// handler sharing the container can never observe a half-applied mutation.
// Atomic entry points must not be called from inside a handler; see the isr
// package.
//
// # Iteration
//
// Iter returns a forward iterator over the logical order, Next-ing until
// exhausted and restartable with Reset. Mutating a container mid-iteration
// is a caller error.
//
// # Related Packages
//
//   - github.com/joshuapare/fixedkit/fixed/isr: interrupt-line model, critical
//     sections, and CPU pinning
package fixed

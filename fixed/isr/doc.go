// Package isr models a single interrupt line for hosts without one: a
// mutual-exclusion discipline between one owner context and asynchronous
// handlers, with the save/restore semantics of hardware interrupt masking.
//
// # Overview
//
// Embedded targets guard shared state by disabling interrupt delivery,
// running the critical code, and restoring the previous enable state. This
// package reproduces that discipline on hosted targets with a lock-free
// state machine, so code written against it keeps the same shape: acquire,
// mutate, release. Nothing blocks on the owner side except while a handler
// is mid-delivery, and nothing is ever queued or retried.
//
// # The Line
//
// A Line is always in one of three states:
//
//   - enabled: handlers may begin delivery at any moment
//   - masked: the owner holds a critical section; delivery waits
//   - delivering: a handler is running; the owner waits to acquire
//
// Transitions happen through atomic compare-and-swap, so a section and a
// delivery can never overlap: shared state is either fully visible to a
// handler or untouched by it.
//
// # Critical Sections
//
// Acquire captures whether delivery was enabled and masks the line; Release
// restores delivery only if it was enabled at acquisition. Nesting is
// therefore safe, exactly as with hardware state registers:
//
//	outer := line.Acquire()
//	inner := line.Acquire() // line already masked
//	inner.Release()         // still masked
//	outer.Release()         // delivery enabled again
//
// # Handler Delivery
//
// Deliver runs a function as an interrupt handler: it waits for the line to
// be enabled, holds it for the duration of the function, and re-enables it
// afterwards. Handlers must never call Acquire (or any atomic collection
// entry point) on their own line; releasing that inner section would
// re-enable delivery while the handler is still running.
//
// # Pinning
//
// Pin locks the calling goroutine to its OS thread and, on Linux, binds the
// thread to a single CPU. Handler loops with latency bounds use it to avoid
// migration stalls.
//
// # The Default Line
//
// Single-line hosts expose one global interrupt flag; the package-level
// Default line and the Acquire/Enabled shorthands mirror that. Independent
// sharing domains should allocate their own Line instead.
package isr

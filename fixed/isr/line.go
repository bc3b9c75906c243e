package isr

import (
	"runtime"
	"sync/atomic"
)

const (
	lineEnabled uint32 = iota
	lineMasked
	lineDelivering
)

// Line is one logical interrupt line. The zero value is ready to use and
// starts enabled.
//
// A Line coordinates a single owner context with any number of Deliver
// callers. It is not a general mutex: two owner goroutines acquiring the
// same Line concurrently would treat each other's mask as their own nesting.
type Line struct {
	state atomic.Uint32
}

// Section is a held critical section. It restores the line on Release and
// must not outlive the acquiring call chain.
type Section struct {
	line       *Line
	wasEnabled bool
	released   bool
}

// Acquire captures the current enable state and masks the line, waiting out
// any delivery already in progress. Acquiring an already-masked line yields
// a nested Section whose Release leaves the line masked.
func (l *Line) Acquire() Section {
	for {
		switch l.state.Load() {
		case lineEnabled:
			if l.state.CompareAndSwap(lineEnabled, lineMasked) {
				return Section{line: l, wasEnabled: true}
			}
		case lineMasked:
			return Section{line: l, wasEnabled: false}
		default:
			runtime.Gosched()
		}
	}
}

// Release re-enables delivery only if it was enabled when the Section was
// acquired. Releasing twice is a no-op, as is releasing a zero Section.
func (s *Section) Release() {
	if s.released || s.line == nil {
		return
	}
	s.released = true
	if s.wasEnabled {
		s.line.state.Store(lineEnabled)
	}
}

// Deliver runs fn as an interrupt handler: it waits until the line is
// enabled, holds it while fn runs, and re-enables it afterwards, even if fn
// panics. fn must not Acquire the same line.
func (l *Line) Deliver(fn func()) {
	for !l.state.CompareAndSwap(lineEnabled, lineDelivering) {
		runtime.Gosched()
	}
	defer l.state.Store(lineEnabled)
	fn()
}

// Enabled reports whether delivery may currently begin.
func (l *Line) Enabled() bool {
	return l.state.Load() == lineEnabled
}

var defaultLine Line

// Default returns the package-level line shared by collections that are not
// bound to an explicit one.
func Default() *Line {
	return &defaultLine
}

// Acquire opens a critical section on the default line.
func Acquire() Section {
	return defaultLine.Acquire()
}

// Enabled reports whether delivery may begin on the default line.
func Enabled() bool {
	return defaultLine.Enabled()
}

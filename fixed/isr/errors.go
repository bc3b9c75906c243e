package isr

import "errors"

var (
	// ErrBadCPU indicates a negative CPU index passed to Pin.
	ErrBadCPU = errors.New("isr: cpu index out of range")
)

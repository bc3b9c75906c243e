package isr

import (
	"fmt"
	"runtime"
)

// Pin locks the calling goroutine to its OS thread and binds the thread to
// the given CPU where the host supports it. It returns a function that
// undoes both. Handler loops call Pin before entering their Deliver cycle
// to keep spin latencies bounded.
func Pin(cpu int) (func(), error) {
	if cpu < 0 {
		return nil, ErrBadCPU
	}

	runtime.LockOSThread()
	restore, err := setAffinity(cpu)
	if err != nil {
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("isr: pin to cpu %d: %w", cpu, err)
	}

	return func() {
		restore()
		runtime.UnlockOSThread()
	}, nil
}

package isr

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// --- masking ---

func TestAcquire_MasksLine(t *testing.T) {
	var l Line
	require.True(t, l.Enabled())

	s := l.Acquire()
	require.False(t, l.Enabled())

	s.Release()
	require.True(t, l.Enabled())
}

func TestAcquire_NestedKeepsMask(t *testing.T) {
	var l Line

	outer := l.Acquire()
	inner := l.Acquire()
	require.False(t, l.Enabled())

	inner.Release()
	require.False(t, l.Enabled())

	outer.Release()
	require.True(t, l.Enabled())
}

func TestRelease_Idempotent(t *testing.T) {
	var l Line

	outer := l.Acquire()
	inner := l.Acquire()

	inner.Release()
	inner.Release()
	require.False(t, l.Enabled())

	outer.Release()
	outer.Release()
	require.True(t, l.Enabled())
}

func TestRelease_ZeroSection(t *testing.T) {
	var s Section
	s.Release()
}

// --- delivery ---

func TestDeliver_RunsHandler(t *testing.T) {
	var l Line
	ran := false
	l.Deliver(func() {
		ran = true
		require.False(t, l.Enabled())
	})
	require.True(t, ran)
	require.True(t, l.Enabled())
}

func TestDeliver_WaitsForRelease(t *testing.T) {
	var l Line
	var delivered atomic.Bool

	s := l.Acquire()

	done := make(chan struct{})
	go func() {
		l.Deliver(func() { delivered.Store(true) })
		close(done)
	}()

	// the handler can only run after Release; the sleep gives it time to
	// reach its spin loop first
	time.Sleep(10 * time.Millisecond)
	require.False(t, delivered.Load())

	s.Release()
	<-done
	require.True(t, delivered.Load())
}

func TestDeliver_RestoresAfterPanic(t *testing.T) {
	var l Line
	require.Panics(t, func() {
		l.Deliver(func() { panic("handler") })
	})
	require.True(t, l.Enabled())
}

func TestAcquire_WaitsForDelivery(t *testing.T) {
	var l Line
	inHandler := make(chan struct{})
	releaseHandler := make(chan struct{})

	go l.Deliver(func() {
		close(inHandler)
		<-releaseHandler
	})

	<-inHandler
	go func() {
		time.Sleep(5 * time.Millisecond)
		close(releaseHandler)
	}()

	s := l.Acquire()
	require.False(t, l.Enabled())
	s.Release()
	require.True(t, l.Enabled())
}

// --- default line ---

func TestDefaultLine(t *testing.T) {
	require.True(t, Enabled())
	s := Acquire()
	require.False(t, Enabled())
	s.Release()
	require.True(t, Enabled())
}

// --- pinning ---

func TestPin_RejectsNegative(t *testing.T) {
	_, err := Pin(-1)
	require.ErrorIs(t, err, ErrBadCPU)
}

func TestPin_RoundTrip(t *testing.T) {
	restore, err := Pin(0)
	if err != nil {
		t.Skipf("pinning unavailable: %v", err)
	}
	restore()
}

package fixed

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/fixedkit/fixed/isr"
)

// --- FIFO ---

func TestRingBuffer_FIFORoundTrip(t *testing.T) {
	r := NewRingBuffer[int](5)
	for i := 1; i <= 5; i++ {
		require.True(t, r.Push(i))
	}

	for i := 1; i <= 5; i++ {
		v, ok := r.Pop()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	require.True(t, r.Empty())
}

func TestRingBuffer_PushOnFullLeavesStateAlone(t *testing.T) {
	r := NewRingBuffer[int](2)
	require.True(t, r.Push(1))
	require.True(t, r.Push(2))

	require.False(t, r.Push(3))
	require.Equal(t, 2, r.Len())
	require.Equal(t, 1, r.Front())
	require.Equal(t, 2, r.Back())
}

// --- wrap-around ---

func TestRingBuffer_WrapAround(t *testing.T) {
	r := NewRingBuffer[int](3)
	require.True(t, r.Push(1))
	require.True(t, r.Push(2))
	require.True(t, r.Push(3))
	require.False(t, r.Push(4))

	v, ok := r.Pop()
	require.True(t, ok)
	require.Equal(t, 1, v)

	require.True(t, r.Push(4))
	require.Equal(t, []int{2, 3, 4}, collectRing(r.Iter()))
	require.Equal(t, 2, r.Front())
	require.Equal(t, 4, r.Back())
}

func TestRingBuffer_AtTranslatesAcrossWrap(t *testing.T) {
	r := NewRingBuffer[int](3)
	r.Push(10)
	r.Push(20)
	r.Pop()
	r.Push(30)
	r.Push(40) // physically wraps to slot 0

	require.Equal(t, 20, r.At(0))
	require.Equal(t, 30, r.At(1))
	require.Equal(t, 40, r.At(2))
}

func TestRingBuffer_LongWrapCycle(t *testing.T) {
	r := NewRingBuffer[int](4)
	next := 0
	popped := 0

	for round := 0; round < 10; round++ {
		for r.Push(next) {
			next++
		}
		for i := 0; i < 3; i++ {
			v, ok := r.Pop()
			require.True(t, ok)
			require.Equal(t, popped, v)
			popped++
		}
	}
	require.Equal(t, next-popped, r.Len())
}

// --- empty / invalid ---

func TestRingBuffer_PopEmptyFails(t *testing.T) {
	r := NewRingBuffer[int](2)
	_, ok := r.Pop()
	require.False(t, ok)
}

func TestRingBuffer_Invalid(t *testing.T) {
	r := NewRingBuffer[int](0)
	require.False(t, r.Valid())
	require.Equal(t, 0, r.Cap())
	require.False(t, r.Push(1))
	_, ok := r.Pop()
	require.False(t, ok)
	require.Empty(t, collectRing(r.Iter()))
}

func TestRingBuffer_Clear(t *testing.T) {
	r := NewRingBuffer[int](3)
	r.Push(1)
	r.Push(2)

	r.Clear()
	require.True(t, r.Empty())
	require.Equal(t, 3, r.Cap())

	require.True(t, r.Push(9))
	require.Equal(t, 9, r.Front())
	require.Equal(t, []int{9}, collectRing(r.Iter()))
}

// --- iteration ---

func TestRingBuffer_IterReset(t *testing.T) {
	r := NewRingBuffer[string](3)
	r.Push("a")
	r.Push("b")

	it := r.Iter()
	v, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, "a", v)

	it.Reset()
	require.Equal(t, []string{"a", "b"}, collectRing(it))
}

// --- cross-context atomics ---

func TestRingBuffer_AtomicHandoffToHandler(t *testing.T) {
	line := &isr.Line{}
	r := NewRingBufferOn[int](8, line)

	const total = 500
	var got []int
	done := make(chan struct{})

	// handler context: drains whatever the owner has pushed so far
	go func() {
		defer close(done)
		for len(got) < total {
			line.Deliver(func() {
				for {
					v, ok := r.Pop()
					if !ok {
						return
					}
					got = append(got, v)
				}
			})
			runtime.Gosched()
		}
	}()

	// owner context: pushes through the atomic entry point, retrying when
	// the handler has not caught up yet
	for i := 0; i < total; i++ {
		for !r.PushAtomic(i) {
			runtime.Gosched()
		}
	}
	<-done

	require.Len(t, got, total)
	for i, v := range got {
		require.Equal(t, i, v)
	}
}

func TestRingBuffer_AtomicRoundTrip(t *testing.T) {
	r := NewRingBuffer[int](2)
	require.True(t, r.PushAtomic(1))
	require.True(t, r.PushAtomic(2))
	require.False(t, r.PushAtomic(3))

	v, ok := r.PopAtomic()
	require.True(t, ok)
	require.Equal(t, 1, v)
	v, ok = r.PopAtomic()
	require.True(t, ok)
	require.Equal(t, 2, v)
	_, ok = r.PopAtomic()
	require.False(t, ok)
}

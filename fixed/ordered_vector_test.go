package fixed

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireSorted[T any](t *testing.T, got []T, less Less[T]) {
	t.Helper()
	for i := 1; i < len(got); i++ {
		require.False(t, less(got[i], got[i-1]),
			"order violated at %d: %v before %v", i, got[i-1], got[i])
	}
}

// --- sort invariant ---

func TestOrderedVector_InsertKeepsSorted(t *testing.T) {
	v := NewOrderedVector[int](8)
	for _, n := range []int{30, 10, 50, 20, 20, 40} {
		require.True(t, v.Insert(n))
	}
	require.Equal(t, []int{10, 20, 20, 30, 40, 50}, collect(v.Iter()))
}

func TestOrderedVector_MixedOpsKeepInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	asc := NewOrderedVector[int](64)
	desc := NewOrderedVectorBy[int](64, Descending[int]())

	for i := 0; i < 500; i++ {
		n := rng.Intn(20)
		switch rng.Intn(3) {
		case 0:
			asc.Insert(n)
			desc.Insert(n)
		case 1:
			asc.RemoveFirst(n)
			desc.RemoveFirst(n)
		default:
			asc.RemoveAll(n)
			desc.RemoveAll(n)
		}

		requireSorted(t, collect(asc.Iter()), Ascending[int]())
		requireSorted(t, collect(desc.Iter()), Descending[int]())
	}
}

// --- duplicates ---

type reading struct {
	celsius int
	probe   string
}

func TestOrderedVector_EqualElementsKeepArrivalOrder(t *testing.T) {
	byTemp := func(a, b reading) bool { return a.celsius < b.celsius }
	v := NewOrderedVectorBy[reading](6, byTemp)

	require.True(t, v.Insert(reading{21, "p1"}))
	require.True(t, v.Insert(reading{19, "p2"}))
	require.True(t, v.Insert(reading{21, "p3"}))
	require.True(t, v.Insert(reading{21, "p4"}))

	require.Equal(t, []reading{
		{19, "p2"},
		{21, "p1"},
		{21, "p3"},
		{21, "p4"},
	}, collect(v.Iter()))
}

// --- remove all ---

func TestOrderedVector_RemoveAllRun(t *testing.T) {
	v := NewOrderedVector[int](10)
	elems := []int{5, 20, 20, 20, 20, 30, 1}
	for _, n := range elems {
		v.Insert(n)
	}

	require.Equal(t, 4, v.RemoveAll(20))
	require.Equal(t, len(elems)-4, v.Len())
	require.Equal(t, []int{1, 5, 30}, collect(v.Iter()))
	require.Equal(t, 0, v.RemoveAll(20))
}

// --- extremes ---

func TestOrderedVector_FrontBackAreExtremes(t *testing.T) {
	v := NewOrderedVector[int](5)
	v.Insert(20)
	v.Insert(5)
	v.Insert(40)

	require.Equal(t, 5, v.Front())
	require.Equal(t, 40, v.Back())

	d := NewOrderedVectorBy[int](5, Descending[int]())
	d.Insert(20)
	d.Insert(5)
	d.Insert(40)

	require.Equal(t, 40, d.Front())
	require.Equal(t, 5, d.Back())
}

// --- capacity ---

func TestOrderedVector_FullAndInvalid(t *testing.T) {
	v := NewOrderedVector[int](2)
	require.True(t, v.Insert(2))
	require.True(t, v.Insert(1))
	require.False(t, v.Insert(3))
	require.Equal(t, 2, v.Len())

	bad := NewOrderedVector[int](0)
	require.False(t, bad.Valid())
	require.False(t, bad.Insert(1))
	require.Equal(t, 0, bad.RemoveAll(1))
}

package fixed

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// --- add / get / remove ---

func TestMap_Lifecycle(t *testing.T) {
	m := NewMap[int, string](3)

	require.True(t, m.Add(5, "a"))
	require.True(t, m.Add(2, "b"))

	// a second add under a live key fails and keeps the first value
	require.False(t, m.Add(5, "c"))
	got, ok := m.TryGet(5)
	require.True(t, ok)
	require.Equal(t, "a", got)

	require.True(t, m.Add(9, "d"))
	require.False(t, m.Add(1, "e"))
	require.True(t, m.Full())

	got, ok = m.Remove(2)
	require.True(t, ok)
	require.Equal(t, "b", got)
	require.Equal(t, 2, m.Len())

	it := m.Iter()
	var keys []int
	for kv, ok := it.Next(); ok; kv, ok = it.Next() {
		keys = append(keys, kv.Key)
	}
	require.Equal(t, []int{5, 9}, keys)
}

func TestMap_TryGetAbsent(t *testing.T) {
	m := NewMap[string, int](2)
	m.Add("x", 1)

	v, ok := m.TryGet("y")
	require.False(t, ok)
	require.Zero(t, v)

	v, ok = m.Remove("y")
	require.False(t, ok)
	require.Zero(t, v)
}

// --- key-only equality ---

func TestMap_FreedKeyIsReusable(t *testing.T) {
	m := NewMap[int, string](2)
	require.True(t, m.Add(1, "old"))

	_, ok := m.Remove(1)
	require.True(t, ok)

	require.True(t, m.Add(1, "new"))
	v, ok := m.TryGet(1)
	require.True(t, ok)
	require.Equal(t, "new", v)
}

func TestMap_ContainsKey(t *testing.T) {
	m := NewMap[int, []byte](2)
	m.Add(7, []byte("payload"))

	require.True(t, m.ContainsKey(7))
	require.False(t, m.ContainsKey(8))
}

// --- ordering ---

func TestMap_IterAscendingByKey(t *testing.T) {
	m := NewMap[int, string](5)
	for _, k := range []int{42, 7, 19, 3} {
		require.True(t, m.Add(k, "v"))
	}

	it := m.Iter()
	var keys []int
	for kv, ok := it.Next(); ok; kv, ok = it.Next() {
		keys = append(keys, kv.Key)
	}
	require.Equal(t, []int{3, 7, 19, 42}, keys)

	require.Equal(t, 3, m.At(0).Key)
	require.Equal(t, 42, m.At(m.Len()-1).Key)
}

// --- capacity ---

func TestMap_Invalid(t *testing.T) {
	m := NewMap[int, int](0)
	require.False(t, m.Valid())
	require.False(t, m.Add(1, 1))
	_, ok := m.TryGet(1)
	require.False(t, ok)
	_, ok = m.Remove(1)
	require.False(t, ok)
}

func TestMap_Clear(t *testing.T) {
	m := NewMap[int, string](3)
	m.Add(1, "a")
	m.Add(2, "b")

	m.Clear()
	require.True(t, m.Empty())
	require.True(t, m.Add(2, "again"))
	v, ok := m.TryGet(2)
	require.True(t, ok)
	require.Equal(t, "again", v)
}

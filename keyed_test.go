package binheap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func requireKeyed[K comparable, V any](t *testing.T, h *KeyedHeap[K, V]) {
	t.Helper()
	requireHeap(t, &h.core)
	require.Len(t, h.index, h.count)
	for k, n := range h.index {
		require.Same(t, &h.core, n.owner, "index entry %v is detached", k)
		require.Equal(t, k, n.value.Key)
	}
}

func TestKeyedAdd(t *testing.T) {
	h := NewKeyed[string, int]()
	n, err := h.Add("ala", 4)
	require.NoError(t, err)
	assert.Equal(t, Entry[string, int]{Key: "ala", Value: 4}, n.Value())

	_, err = h.Add("ola", 5)
	require.NoError(t, err)

	_, err = h.Add("ala", 1)
	assert.ErrorIs(t, err, ErrKeyExists)
	assert.False(t, h.TryAdd("ola", 0))
	assert.True(t, h.TryAdd("ela", 6))
	requireKeyed(t, h)

	k, v, ok := h.Min()
	assert.True(t, ok)
	assert.Equal(t, "ala", k)
	assert.Equal(t, 4, v)
	assert.Equal(t, 3, h.Len())
}

func TestKeyedAddNode(t *testing.T) {
	h := NewKeyed[string, int]()
	_, err := h.Add("a", 1)
	require.NoError(t, err)

	assert.ErrorIs(t, h.AddNode(nil), ErrNilNode)
	assert.ErrorIs(t, h.AddNode(h.Node("a")), ErrNodeAttached)

	dup := NewEntryNode("a", 0)
	assert.ErrorIs(t, h.AddNode(dup), ErrKeyExists)
	assert.False(t, dup.Attached())
	requireKeyed(t, h)

	n := NewEntryNode("b", 0)
	require.NoError(t, h.AddNode(n))
	assert.Same(t, n, h.Node("b"))
	assert.Same(t, n, h.MinNode())
	requireKeyed(t, h)
}

func TestKeyedRemove(t *testing.T) {
	entries := []Entry[string, int]{}
	for i := 0; i < 40; i++ {
		entries = append(entries, Entry[string, int]{Key: fmt.Sprintf("k%02d", i), Value: (i * 7) % 13})
	}
	h, err := NewKeyedFrom(entries)
	require.NoError(t, err)
	requireKeyed(t, h)

	for i, e := range entries {
		if i%3 != 0 {
			continue
		}
		v, ok := h.Remove(e.Key)
		require.True(t, ok)
		assert.Equal(t, e.Value, v)
		assert.False(t, h.ContainsKey(e.Key))
		requireKeyed(t, h)
	}

	_, ok := h.Remove("k00")
	assert.False(t, ok)

	n := h.Node("k01")
	require.NotNil(t, n)
	require.NoError(t, h.RemoveNode(n))
	assert.Nil(t, h.Node("k01"))
	assert.ErrorIs(t, h.RemoveNode(n), ErrForeignNode)
	requireKeyed(t, h)

	last := 0
	for h.Len() > 0 {
		k, v, ok := h.PopMin()
		require.True(t, ok)
		assert.GreaterOrEqual(t, v, last)
		assert.False(t, h.ContainsKey(k))
		last = v
		requireKeyed(t, h)
	}
	assert.False(t, h.RemoveMin())
	_, _, ok = h.PopMin()
	assert.False(t, ok)
}

func TestKeyedDuplicateFrom(t *testing.T) {
	_, err := NewKeyedFrom([]Entry[int, int]{{Key: 1, Value: 1}, {Key: 1, Value: 2}})
	assert.ErrorIs(t, err, ErrKeyExists)
}

func TestKeyedUpdate(t *testing.T) {
	h := NewKeyed[string, int]()
	for i, k := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		_, err := h.Add(k, (i+1)*10)
		require.NoError(t, err)
	}

	assert.True(t, h.Update("g", 1))
	requireKeyed(t, h)
	k, v, _ := h.Min()
	assert.Equal(t, "g", k)
	assert.Equal(t, 1, v)

	assert.True(t, h.Update("g", 100))
	requireKeyed(t, h)
	k, _, _ = h.Min()
	assert.Equal(t, "a", k)

	assert.False(t, h.Update("missing", 1))

	require.NoError(t, h.UpdateNode(h.Node("c"), 5))
	requireKeyed(t, h)
	k, _, _ = h.Min()
	assert.Equal(t, "c", k)
	assert.ErrorIs(t, h.UpdateNode(NewEntryNode("x", 1), 0), ErrForeignNode)
	assert.ErrorIs(t, h.UpdateNode(nil, 0), ErrNilNode)

	assert.True(t, h.UpdateValue(40, 2))
	v, ok := h.Get("d")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.False(t, h.UpdateValue(41, 2))
	requireKeyed(t, h)

	h.Set("d", 3)
	h.Set("z", 0)
	requireKeyed(t, h)
	v, _ = h.Get("d")
	assert.Equal(t, 3, v)
	k, v, _ = h.Min()
	assert.Equal(t, "z", k)
	assert.Equal(t, 0, v)
}

func TestKeyedLookup(t *testing.T) {
	h := NewKeyed[string, int]()
	h.Set("ala", 4)
	h.Set("ola", 5)

	_, ok := h.Get("ela")
	assert.False(t, ok)
	assert.True(t, h.ContainsValue(5))
	assert.False(t, h.ContainsValue(6))
	assert.Nil(t, h.Find(6))
	assert.Equal(t, "ola", h.Find(5).Value().Key)

	found, err := h.FindAll(func(v int) bool { return v > 4 })
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "ola", found[0].Value().Key)
	_, err = h.FindAll(nil)
	assert.ErrorIs(t, err, ErrNilPredicate)

	keys := h.Keys()
	slices.Sort(keys)
	assert.Equal(t, []string{"ala", "ola"}, keys)
	values := h.Values()
	slices.Sort(values)
	assert.Equal(t, []int{4, 5}, values)
	assert.Len(t, h.Entries(), 2)
	assert.Equal(t, "ala:4", h.Root().Value().String())
}

func TestKeyedClear(t *testing.T) {
	h := NewKeyed[int, int]()
	nodes := []*Node[Entry[int, int]]{}
	for i := 0; i < 10; i++ {
		n, err := h.Add(i, 10-i)
		require.NoError(t, err)
		nodes = append(nodes, n)
	}

	it := h.Iter()
	h.Clear()
	h.Clear()
	requireKeyed(t, h)
	assert.False(t, it.Next())
	assert.ErrorIs(t, it.Err(), ErrConcurrentModification)
	assert.False(t, h.ContainsKey(3))
	assert.Empty(t, h.Keys())

	// keys are free again after a clear
	_, err := h.Add(3, 3)
	require.NoError(t, err)
	require.NoError(t, h.AddNode(nodes[4]))
	requireKeyed(t, h)
	assert.Equal(t, 2, h.Len())
}

func TestKeyedIterator(t *testing.T) {
	h := NewKeyed[string, int]()
	for i := 0; i < 20; i++ {
		h.Set(fmt.Sprint(i), i%5)
	}

	seen := map[string]int{}
	it := h.Iter()
	for it.Next() {
		seen[it.Value().Key] = it.Value().Value
	}
	require.NoError(t, it.Err())
	assert.Len(t, seen, 20)

	it = h.Iter()
	require.True(t, it.Next())
	h.Set("0", 100)
	assert.False(t, it.Next())
	assert.ErrorIs(t, it.Err(), ErrConcurrentModification)
}

func TestNewKeyedFunc(t *testing.T) {
	assert.PanicsWithValue(t, ErrNilComparator, func() {
		NewKeyedFunc[string, int](nil)
	})

	h := NewKeyedFunc[string](func(a, b float64) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		}
		return 0
	})
	h.Set("low", 0.5)
	h.Set("high", 9.5)
	k, _, _ := h.Min()
	assert.Equal(t, "high", k)
}

package binheap

import (
	"cmp"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// Entry is the value stored by a KeyedHeap node. Entries are ordered by
// Value only.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v:%v", e.Key, e.Value)
}

// NewEntryNode returns a detached keyed node, ready for KeyedHeap.AddNode.
func NewEntryNode[K comparable, V any](key K, value V) *Node[Entry[K, V]] {
	return NewNode(Entry[K, V]{Key: key, Value: value})
}

// KeyedHeap is a binomial min-heap of values where every value carries a
// unique key. A key index gives O(1) access to the node of a key.
type KeyedHeap[K comparable, V any] struct {
	core[Entry[K, V]]
	index map[K]*Node[Entry[K, V]]
}

func NewKeyed[K comparable, V constraints.Ordered](opts ...Option) *KeyedHeap[K, V] {
	return NewKeyedFunc[K](cmp.Compare[V], opts...)
}

// NewKeyedFunc returns an empty keyed heap whose values are ordered by
// compare. It panics with ErrNilComparator when compare is nil.
func NewKeyedFunc[K comparable, V any](compare func(a, b V) int, opts ...Option) *KeyedHeap[K, V] {
	if compare == nil {
		panic(ErrNilComparator)
	}
	byValue := func(a, b Entry[K, V]) int {
		return compare(a.Value, b.Value)
	}
	return &KeyedHeap[K, V]{
		core:  newCore(byValue, opts),
		index: make(map[K]*Node[Entry[K, V]]),
	}
}

// NewKeyedFrom returns a keyed heap holding entries. It fails on the first
// duplicated key.
func NewKeyedFrom[K comparable, V constraints.Ordered](entries []Entry[K, V], opts ...Option) (*KeyedHeap[K, V], error) {
	h := NewKeyed[K, V](opts...)
	for _, e := range entries {
		if _, err := h.Add(e.Key, e.Value); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func (h *KeyedHeap[K, V]) Len() int {
	return h.count
}

func (h *KeyedHeap[K, V]) checkKey(key K) error {
	if _, ok := h.index[key]; ok {
		h.logger.Debug("rejected duplicate key", zap.Any("key", key))
		return fmt.Errorf("%w: %v", ErrKeyExists, key)
	}
	return nil
}

// Add inserts value under key.
func (h *KeyedHeap[K, V]) Add(key K, value V) (*Node[Entry[K, V]], error) {
	if err := h.checkKey(key); err != nil {
		return nil, err
	}
	n := NewEntryNode(key, value)
	h.insert(n)
	h.index[key] = n
	return n, nil
}

// AddNode inserts a detached node created with NewEntryNode.
func (h *KeyedHeap[K, V]) AddNode(n *Node[Entry[K, V]]) error {
	if err := h.checkDetached(n); err != nil {
		return fmt.Errorf("add: %w", err)
	}
	if err := h.checkKey(n.value.Key); err != nil {
		return err
	}
	h.insert(n)
	h.index[n.value.Key] = n
	return nil
}

// TryAdd inserts value under key unless the key is already present.
func (h *KeyedHeap[K, V]) TryAdd(key K, value V) bool {
	_, err := h.Add(key, value)
	return err == nil
}

// Set updates the value of key, inserting it when absent.
func (h *KeyedHeap[K, V]) Set(key K, value V) {
	if n, ok := h.index[key]; ok {
		_ = h.update(n, Entry[K, V]{Key: key, Value: value})
		return
	}
	n := NewEntryNode(key, value)
	h.insert(n)
	h.index[key] = n
}

func (h *KeyedHeap[K, V]) Get(key K) (V, bool) {
	n, ok := h.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return n.value.Value, true
}

// Node returns the node stored under key, or nil.
func (h *KeyedHeap[K, V]) Node(key K) *Node[Entry[K, V]] {
	return h.index[key]
}

func (h *KeyedHeap[K, V]) ContainsKey(key K) bool {
	_, ok := h.index[key]
	return ok
}

func (h *KeyedHeap[K, V]) ContainsValue(value V) bool {
	return h.Find(value) != nil
}

// Find returns a node whose value compares equal to value, or nil.
func (h *KeyedHeap[K, V]) Find(value V) *Node[Entry[K, V]] {
	return h.find(Entry[K, V]{Value: value})
}

func (h *KeyedHeap[K, V]) FindAll(match func(V) bool) ([]*Node[Entry[K, V]], error) {
	if match == nil {
		return nil, ErrNilPredicate
	}
	return h.findAll(func(e Entry[K, V]) bool {
		return match(e.Value)
	})
}

// Remove removes key and returns the value it held.
func (h *KeyedHeap[K, V]) Remove(key K) (V, bool) {
	n, ok := h.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	value := n.value.Value
	if err := h.remove(n); err != nil {
		var zero V
		return zero, false
	}
	delete(h.index, key)
	return value, true
}

// RemoveNode removes n, which must belong to h.
func (h *KeyedHeap[K, V]) RemoveNode(n *Node[Entry[K, V]]) error {
	if err := h.remove(n); err != nil {
		return err
	}
	delete(h.index, n.value.Key)
	return nil
}

func (h *KeyedHeap[K, V]) RemoveMin() bool {
	_, _, ok := h.PopMin()
	return ok
}

// PopMin removes the entry with the smallest value and returns it.
func (h *KeyedHeap[K, V]) PopMin() (K, V, bool) {
	if h.count == 0 {
		var (
			zeroK K
			zeroV V
		)
		return zeroK, zeroV, false
	}
	e := h.min.value
	h.removeMin()
	delete(h.index, e.Key)
	return e.Key, e.Value, true
}

func (h *KeyedHeap[K, V]) Min() (K, V, bool) {
	if h.count == 0 {
		var (
			zeroK K
			zeroV V
		)
		return zeroK, zeroV, false
	}
	return h.min.value.Key, h.min.value.Value, true
}

func (h *KeyedHeap[K, V]) MinNode() *Node[Entry[K, V]] {
	return h.min
}

// Update replaces the value stored under key.
func (h *KeyedHeap[K, V]) Update(key K, value V) bool {
	n, ok := h.index[key]
	if !ok {
		return false
	}
	return h.update(n, Entry[K, V]{Key: key, Value: value}) == nil
}

// UpdateNode replaces the value held by n, keeping its key.
func (h *KeyedHeap[K, V]) UpdateNode(n *Node[Entry[K, V]], value V) error {
	if err := h.checkOwner(n); err != nil {
		return fmt.Errorf("update: %w", err)
	}
	return h.update(n, Entry[K, V]{Key: n.value.Key, Value: value})
}

// UpdateValue replaces the value of one entry whose value compares equal to
// oldValue.
func (h *KeyedHeap[K, V]) UpdateValue(oldValue, newValue V) bool {
	n := h.Find(oldValue)
	if n == nil {
		return false
	}
	return h.update(n, Entry[K, V]{Key: n.value.Key, Value: newValue}) == nil
}

// Clear removes every entry and empties the key index.
func (h *KeyedHeap[K, V]) Clear() {
	h.clear()
	h.index = make(map[K]*Node[Entry[K, V]])
}

func (h *KeyedHeap[K, V]) Root() *Node[Entry[K, V]] {
	return h.root
}

// Iter returns an iterator over the entries of h in forest order.
func (h *KeyedHeap[K, V]) Iter() *Iterator[Entry[K, V]] {
	return newIterator(&h.core)
}

func (h *KeyedHeap[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, h.count)
	for n := h.root; n != nil; n = walk(n) {
		entries = append(entries, n.value)
	}
	return entries
}

func (h *KeyedHeap[K, V]) Keys() []K {
	keys := make([]K, 0, h.count)
	for n := h.root; n != nil; n = walk(n) {
		keys = append(keys, n.value.Key)
	}
	return keys
}

func (h *KeyedHeap[K, V]) Values() []V {
	values := make([]V, 0, h.count)
	for n := h.root; n != nil; n = walk(n) {
		values = append(values, n.value.Value)
	}
	return values
}

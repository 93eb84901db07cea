package binheap

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Heap is a binomial min-heap. It is not safe for concurrent use.
type Heap[T any] struct {
	core[T]
}

// New returns an empty heap ordered by the natural order of T.
func New[T constraints.Ordered](opts ...Option) *Heap[T] {
	return NewFunc(cmp.Compare[T], opts...)
}

// NewFunc returns an empty heap ordered by compare, which must return a
// negative number when a < b, zero when a == b and a positive number when
// a > b. NewFunc panics with ErrNilComparator when compare is nil.
func NewFunc[T any](compare func(a, b T) int, opts ...Option) *Heap[T] {
	return &Heap[T]{core: newCore(compare, opts)}
}

// NewFrom returns a heap holding values, ordered by the natural order of T.
func NewFrom[T constraints.Ordered](values []T, opts ...Option) *Heap[T] {
	h := New[T](opts...)
	h.AddAll(values...)
	return h
}

func (h *Heap[T]) Len() int {
	return h.count
}

// Add inserts value and returns the node holding it. The node can later be
// passed to RemoveNode or UpdateNode. O(log n) worst case, O(1) amortized.
func (h *Heap[T]) Add(value T) *Node[T] {
	n := NewNode(value)
	h.insert(n)
	return n
}

// AddNode inserts a detached node created with NewNode.
func (h *Heap[T]) AddNode(n *Node[T]) error {
	return h.add(n)
}

func (h *Heap[T]) AddAll(values ...T) {
	for _, v := range values {
		h.Add(v)
	}
}

func (h *Heap[T]) Contains(value T) bool {
	return h.find(value) != nil
}

// Find returns a node whose value compares equal to value, or nil.
func (h *Heap[T]) Find(value T) *Node[T] {
	return h.find(value)
}

// FindAll returns every node whose value satisfies match, in iteration order.
func (h *Heap[T]) FindAll(match func(T) bool) ([]*Node[T], error) {
	return h.findAll(match)
}

// Remove removes one node whose value compares equal to value.
func (h *Heap[T]) Remove(value T) bool {
	n := h.find(value)
	if n == nil {
		return false
	}
	return h.remove(n) == nil
}

// RemoveNode removes n, which must belong to h. O(log n).
func (h *Heap[T]) RemoveNode(n *Node[T]) error {
	return h.remove(n)
}

// RemoveMin removes the minimum and reports whether the heap was non-empty.
func (h *Heap[T]) RemoveMin() bool {
	return h.removeMin()
}

// PopMin removes and returns the minimum.
func (h *Heap[T]) PopMin() (T, bool) {
	if h.count == 0 {
		var zero T
		return zero, false
	}
	v := h.min.value
	h.removeMin()
	return v, true
}

// Min returns the minimum without removing it.
func (h *Heap[T]) Min() (T, bool) {
	if h.count == 0 {
		var zero T
		return zero, false
	}
	return h.min.value, true
}

// MinNode returns the node holding the minimum, or nil when h is empty.
func (h *Heap[T]) MinNode() *Node[T] {
	return h.min
}

// UpdateKey replaces the value of a node comparing equal to oldValue.
func (h *Heap[T]) UpdateKey(oldValue, newValue T) bool {
	n := h.find(oldValue)
	if n == nil {
		return false
	}
	return h.update(n, newValue) == nil
}

// UpdateNode replaces the value held by n, which must belong to h, and moves
// it to keep heap order. O(log n).
func (h *Heap[T]) UpdateNode(n *Node[T], value T) error {
	return h.update(n, value)
}

// Clear removes every value. Nodes handed out before are detached.
func (h *Heap[T]) Clear() {
	h.clear()
}

// Root returns the head of the root list, for read-only inspection of the
// forest.
func (h *Heap[T]) Root() *Node[T] {
	return h.root
}

// Iter returns an iterator over the values of h in forest order.
func (h *Heap[T]) Iter() *Iterator[T] {
	return newIterator(&h.core)
}

// Values returns a snapshot of the values in forest order.
func (h *Heap[T]) Values() []T {
	values := make([]T, 0, h.count)
	for n := h.root; n != nil; n = walk(n) {
		values = append(values, n.value)
	}
	return values
}

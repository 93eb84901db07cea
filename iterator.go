package binheap

// Iterator walks every node of a heap in forest preorder. The order is NOT
// sorted by value. Any mutation of the heap after the iterator was created
// stops it, and Err then reports ErrConcurrentModification.
//
//	it := h.Iter()
//	for it.Next() {
//		fmt.Println(it.Value())
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
type Iterator[T any] struct {
	owner   *core[T]
	version uint64
	cur     *Node[T]
	started bool
	err     error
}

func newIterator[T any](c *core[T]) *Iterator[T] {
	return &Iterator[T]{owner: c, version: c.version}
}

// Next advances to the next node and reports whether there is one.
func (it *Iterator[T]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.version != it.owner.version {
		it.err = ErrConcurrentModification
		it.cur = nil
		return false
	}

	if !it.started {
		it.started = true
		it.cur = it.owner.root
	} else if it.cur != nil {
		it.cur = walk(it.cur)
	}
	return it.cur != nil
}

// Value returns the value at the current position, or the zero value when
// the iterator is not positioned on a node.
func (it *Iterator[T]) Value() T {
	if it.cur == nil {
		var zero T
		return zero
	}
	return it.cur.value
}

func (it *Iterator[T]) Node() *Node[T] {
	return it.cur
}

func (it *Iterator[T]) Err() error {
	return it.err
}

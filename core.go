package binheap

import (
	"fmt"

	"go.uber.org/zap"
)

// core is the binomial heap engine shared by Heap and KeyedHeap. It owns the
// forest: root is the head of the root list, kept ascending by degree with no
// two roots of equal degree, and min points at a node holding the smallest
// value. version is bumped on every structural mutation.
type core[T any] struct {
	count   int
	root    *Node[T]
	min     *Node[T]
	version uint64
	cmp     func(a, b T) int
	logger  *zap.Logger
}

func newCore[T any](cmp func(a, b T) int, opts []Option) core[T] {
	if cmp == nil {
		panic(ErrNilComparator)
	}
	c := newConfig(opts)
	return core[T]{cmp: cmp, logger: c.logger}
}

func (c *core[T]) checkDetached(n *Node[T]) error {
	if n == nil {
		return ErrNilNode
	}
	if n.owner != nil {
		c.logger.Debug("rejected attached node", zap.Stringer("value", n))
		return ErrNodeAttached
	}
	return nil
}

func (c *core[T]) checkOwner(n *Node[T]) error {
	if n == nil {
		return ErrNilNode
	}
	if n.owner != c {
		c.logger.Debug("rejected foreign node", zap.Stringer("value", n), zap.Bool("attached", n.owner != nil))
		return ErrForeignNode
	}
	return nil
}

func (c *core[T]) add(n *Node[T]) error {
	if err := c.checkDetached(n); err != nil {
		return fmt.Errorf("add: %w", err)
	}
	c.insert(n)
	return nil
}

// insert unions n as a one node tree into the root list. n must be detached.
func (c *core[T]) insert(n *Node[T]) {
	n.parent, n.child, n.sibling, n.degree = nil, nil, nil, 0
	// ties keep the current min, which may then end up below an equal root
	if c.min == nil || c.cmp(c.min.value, n.value) > 0 {
		c.min = n
	}
	n.owner = c
	c.root = c.union(n, c.root)
	c.count++
	c.version++
}

func (c *core[T]) clear() {
	nodes := make([]*Node[T], 0, c.count)
	for n := c.root; n != nil; n = walk(n) {
		nodes = append(nodes, n)
	}
	for _, n := range nodes {
		n.detach()
	}
	c.count = 0
	c.root = nil
	c.min = nil
	c.version++
	c.logger.Debug("heap cleared", zap.Int("released", len(nodes)))
}

// rescanMin points min at the smallest root. The minimum of a heap ordered
// forest is always one of its roots.
func (c *core[T]) rescanMin() {
	c.min = c.root
	for r := c.root; r != nil; r = r.sibling {
		if c.cmp(c.min.value, r.value) > 0 {
			c.min = r
		}
	}
}

package binheap

import "fmt"

// remove detaches n from the forest. n is rotated up to the root list,
// spliced out, and its children are unioned back as a root list of their own.
func (c *core[T]) remove(n *Node[T]) error {
	if err := c.checkOwner(n); err != nil {
		return fmt.Errorf("remove: %w", err)
	}

	for n.parent != nil {
		c.rotateToParent(n)
	}

	if c.root == n {
		c.root = n.sibling
	} else {
		prev := c.root
		for prev.sibling != n {
			prev = prev.sibling
		}
		prev.sibling = n.sibling
	}

	if n.child != nil {
		c.root = c.union(c.root, reverseChildren(n.child))
	}

	wasMin := c.min == n
	n.detach()
	c.count--
	c.version++

	if wasMin {
		c.rescanMin()
	}
	return nil
}

func (c *core[T]) removeMin() bool {
	if c.count == 0 {
		return false
	}
	// min is always owned by c
	_ = c.remove(c.min)
	return true
}

// reverseChildren turns a child chain, stored highest degree first, into a
// parentless root list in ascending degree order.
func reverseChildren[T any](head *Node[T]) *Node[T] {
	var prev *Node[T]
	for head != nil {
		next := head.sibling
		head.sibling = prev
		head.parent = nil
		prev = head
		head = next
	}
	return prev
}

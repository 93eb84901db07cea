package binheap

// walk returns the node visited after n in a forest preorder: first child,
// then next sibling, then the parent's next sibling. Running off a root that
// has no sibling ends the walk.
//
// One upward hop is enough: only a root or a degree 0 child lacks a sibling,
// so the parent of a sibling-less child is either a root or itself has one.
func walk[T any](n *Node[T]) *Node[T] {
	if n.child != nil {
		return n.child
	}
	return skip(n)
}

// skip is walk without descending into the subtree of n.
func skip[T any](n *Node[T]) *Node[T] {
	if n.sibling != nil {
		return n.sibling
	}
	if n.parent != nil {
		return n.parent.sibling
	}
	return nil
}

// find returns the first node whose value compares equal to value. Subtrees
// rooted at a value larger than the target are not entered.
func (c *core[T]) find(value T) *Node[T] {
	n := c.root
	for n != nil {
		d := c.cmp(n.value, value)
		switch {
		case d == 0:
			return n
		case d < 0 && n.child != nil:
			n = n.child
		default:
			n = skip(n)
		}
	}
	return nil
}

func (c *core[T]) findAll(match func(T) bool) ([]*Node[T], error) {
	if match == nil {
		return nil, ErrNilPredicate
	}

	var found []*Node[T]
	for n := c.root; n != nil; n = walk(n) {
		if match(n.value) {
			found = append(found, n)
		}
	}
	return found, nil
}

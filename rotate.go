package binheap

// rotateToParent swaps n with its parent without changing the shape of the
// tree: n takes over the parent's degree, children, sibling and position
// under the grandparent (or in the root list), the parent takes n's.
func (c *core[T]) rotateToParent(n *Node[T]) {
	p := n.parent
	g := p.parent

	n.degree, p.degree = p.degree, n.degree

	for ch := n.child; ch != nil; ch = ch.sibling {
		ch.parent = p
	}

	var left *Node[T]
	for ch, prev := p.child, (*Node[T])(nil); ch != nil; prev, ch = ch, ch.sibling {
		if ch == n {
			left = prev
		} else {
			ch.parent = n
		}
	}

	switch {
	case g == nil && c.root == p:
		c.root = n
	case g == nil:
		r := c.root
		for r.sibling != p {
			r = r.sibling
		}
		r.sibling = n
	case g.child == p:
		g.child = n
	default:
		s := g.child
		for s.sibling != p {
			s = s.sibling
		}
		s.sibling = n
	}

	n.parent = g
	p.parent = n

	first := p.child
	if first == n {
		first = p
	}
	p.child = n.child
	n.child = first

	if left != nil {
		left.sibling = p
	}
	n.sibling, p.sibling = p.sibling, n.sibling
}

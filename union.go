package binheap

// merge splices two root lists, each ascending by degree, into one ascending
// list. Trees of equal degree are left side by side; ties take a first.
func merge[T any](a, b *Node[T]) *Node[T] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	var head *Node[T]
	if a.degree <= b.degree {
		head, a = a, a.sibling
	} else {
		head, b = b, b.sibling
	}

	tail := head
	for a != nil && b != nil {
		if a.degree <= b.degree {
			tail.sibling, a = a, a.sibling
		} else {
			tail.sibling, b = b, b.sibling
		}
		tail = tail.sibling
	}

	if a != nil {
		tail.sibling = a
	} else {
		tail.sibling = b
	}
	return head
}

// union merges two root lists and combines trees of equal degree until every
// degree occurs at most once. It returns the new head of the root list.
func (c *core[T]) union(a, b *Node[T]) *Node[T] {
	head := merge(a, b)
	if head == nil {
		return nil
	}

	var prev *Node[T]
	curr := head
	next := curr.sibling
	for next != nil {
		// three trees of one degree in a row: combine the last two instead
		if curr.degree != next.degree || (next.sibling != nil && next.sibling.degree == curr.degree) {
			prev, curr, next = curr, next, next.sibling
			continue
		}

		if c.cmp(curr.value, next.value) <= 0 {
			curr.sibling = next.sibling
			link(next, curr)
		} else {
			if prev == nil {
				head = next
			} else {
				prev.sibling = next
			}
			link(curr, next)
			curr = next
		}
		next = curr.sibling
	}
	return head
}

// link makes child the highest degree child of parent. Both must be roots of
// trees of the same degree.
func link[T any](child, parent *Node[T]) {
	child.parent = parent
	child.sibling = parent.child
	parent.child = child
	parent.degree++
}

package binheap

import "fmt"

// update replaces the value of n and restores heap order. A larger value
// sinks n below its smallest smaller child, a smaller or equal value lifts n
// above every larger ancestor.
func (c *core[T]) update(n *Node[T], value T) error {
	if err := c.checkOwner(n); err != nil {
		return fmt.Errorf("update: %w", err)
	}

	if c.cmp(n.value, value) < 0 {
		n.value = value
		for n.degree > 0 {
			var smallest *Node[T]
			for ch := n.child; ch != nil; ch = ch.sibling {
				if c.cmp(ch.value, n.value) < 0 && (smallest == nil || c.cmp(ch.value, smallest.value) < 0) {
					smallest = ch
				}
			}
			if smallest == nil {
				break
			}
			c.rotateToParent(smallest)
		}
	} else {
		n.value = value
		for n.parent != nil && c.cmp(n.value, n.parent.value) < 0 {
			c.rotateToParent(n)
		}
	}

	c.version++
	c.rescanMin()
	return nil
}

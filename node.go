package binheap

import "fmt"

// Node is a cell of the binomial forest. The zero value is not usable, create
// detached nodes with NewNode.
type Node[T any] struct {
	value   T
	degree  int
	parent  *Node[T]
	child   *Node[T] // highest degree child
	sibling *Node[T] // next root, or next lower degree child
	owner   *core[T]
}

// NewNode returns a detached node holding value, ready for AddNode.
func NewNode[T any](value T) *Node[T] {
	return &Node[T]{value: value}
}

func (n *Node[T]) Value() T {
	return n.value
}

// Degree returns the number of direct children.
func (n *Node[T]) Degree() int {
	return n.degree
}

func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

func (n *Node[T]) Child() *Node[T] {
	return n.child
}

func (n *Node[T]) Sibling() *Node[T] {
	return n.sibling
}

// Attached reports whether the node currently belongs to a heap.
func (n *Node[T]) Attached() bool {
	return n.owner != nil
}

func (n *Node[T]) String() string {
	return fmt.Sprintf("%v", n.value)
}

func (n *Node[T]) detach() {
	n.parent = nil
	n.child = nil
	n.sibling = nil
	n.degree = 0
	n.owner = nil
}

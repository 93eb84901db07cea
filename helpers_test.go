package binheap

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

type treeDump struct {
	Value    any
	Degree   int
	Children []treeDump
}

func dumpForest[T any](root *Node[T]) string {
	var dump func(n *Node[T]) treeDump
	dump = func(n *Node[T]) treeDump {
		d := treeDump{Value: n.value, Degree: n.degree}
		for ch := n.child; ch != nil; ch = ch.sibling {
			d.Children = append(d.Children, dump(ch))
		}
		return d
	}

	forest := []treeDump{}
	for r := root; r != nil; r = r.sibling {
		forest = append(forest, dump(r))
	}
	return spew.Sdump(forest)
}

// requireShape checks the binomial shape of every tree and the root list,
// the links and the ownership of every node, and count.
func requireShape[T any](t *testing.T, c *core[T]) {
	t.Helper()

	if c.count == 0 {
		require.Nil(t, c.root, "empty heap with roots")
		require.Nil(t, c.min, "empty heap with min")
		return
	}
	require.NotNil(t, c.root, "count %d without roots", c.count)

	var size func(n *Node[T]) int
	size = func(n *Node[T]) int {
		require.Same(t, c, n.owner, "node %v not owned by heap\n%s", n, dumpForest(c.root))
		total := 1
		want := n.degree - 1
		for ch := n.child; ch != nil; ch = ch.sibling {
			require.Same(t, n, ch.parent, "child %v of %v has a wrong parent\n%s", ch, n, dumpForest(c.root))
			require.Equal(t, want, ch.degree, "child %v of %v has a wrong degree\n%s", ch, n, dumpForest(c.root))
			want--
			total += size(ch)
		}
		require.Equal(t, -1, want, "node %v is missing children\n%s", n, dumpForest(c.root))
		require.Equal(t, 1<<n.degree, total, "tree at %v is not binomial\n%s", n, dumpForest(c.root))
		return total
	}

	nodes := 0
	prev := -1
	for r := c.root; r != nil; r = r.sibling {
		require.Nil(t, r.parent, "root %v has a parent", r)
		require.Greater(t, r.degree, prev, "root list not ascending\n%s", dumpForest(c.root))
		prev = r.degree
		nodes += size(r)
	}
	require.Equal(t, c.count, nodes, "count out of sync\n%s", dumpForest(c.root))
}

// requireHeap checks requireShape, heap order and the min pointer.
func requireHeap[T any](t *testing.T, c *core[T]) {
	t.Helper()
	requireShape(t, c)
	if c.count == 0 {
		return
	}

	var smallest *Node[T]
	for n := c.root; n != nil; n = walk(n) {
		if smallest == nil || c.cmp(n.value, smallest.value) < 0 {
			smallest = n
		}
		for ch := n.child; ch != nil; ch = ch.sibling {
			require.LessOrEqual(t, c.cmp(n.value, ch.value), 0, "%v above %v\n%s", n, ch, dumpForest(c.root))
		}
	}
	require.NotNil(t, c.min)
	require.Same(t, c, c.min.owner, "min %v is not attached", c.min)
	require.Zero(t, c.cmp(smallest.value, c.min.value), "min %v, smallest %v\n%s", c.min, smallest, dumpForest(c.root))
}

package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/codeindex2937/binheap"
	"github.com/olekukonko/tablewriter"
)

// Label formats a value for display. A nil Label falls back to fmt's %v.
type Label[T any] func(T) string

func (l Label[T]) format(v T) string {
	if l == nil {
		return fmt.Sprintf("%v", v)
	}
	return l(v)
}

// WriteTree writes the forest starting at root, one node per line. Roots are
// prefixed with the order of their tree, children are indented under their
// parent, highest degree child first.
//
//	B0 7
//	B1 2
//	  4
func WriteTree[T any](w io.Writer, root *binheap.Node[T], label Label[T]) error {
	for r := root; r != nil; r = r.Sibling() {
		if _, err := fmt.Fprintf(w, "B%d %s\n", r.Degree(), label.format(r.Value())); err != nil {
			return err
		}
		if err := writeChildren(w, r, 1, label); err != nil {
			return err
		}
	}
	return nil
}

func writeChildren[T any](w io.Writer, n *binheap.Node[T], depth int, label Label[T]) error {
	indent := strings.Repeat("  ", depth)
	for ch := n.Child(); ch != nil; ch = ch.Sibling() {
		if _, err := fmt.Fprintf(w, "%s%s\n", indent, label.format(ch.Value())); err != nil {
			return err
		}
		if err := writeChildren(w, ch, depth+1, label); err != nil {
			return err
		}
	}
	return nil
}

// WriteRoots writes a table summarizing the root list: one row per tree with
// its degree, node count and root value.
func WriteRoots[T any](w io.Writer, root *binheap.Node[T], label Label[T]) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Degree", "Size", "Root"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	total := 0
	for r := root; r != nil; r = r.Sibling() {
		size := 1 << r.Degree()
		total += size
		table.Append([]string{
			strconv.Itoa(r.Degree()),
			strconv.Itoa(size),
			label.format(r.Value()),
		})
	}
	table.SetFooter([]string{"Total", strconv.Itoa(total), ""})
	table.Render()
}

// ref: github.com/stevenle/topsort
// ref: github.com/oko/toposort
package toposort

import (
	"errors"

	"github.com/codeindex2937/binheap"
	"golang.org/x/exp/constraints"
)

var (
	ErrNodeExists       = errors.New("node already exists in topology")
	ErrNodeDoesNotExist = errors.New("node does not exist in topology")
	ErrRuntimeExceeded  = errors.New("sort runtime exceeded bound")
)

type ErrCycleInTopology[Key comparable] struct {
	OriginalEdges  map[Key]int
	RemainingEdges map[Key]int
}

func (e *ErrCycleInTopology[Key]) Error() string {
	return "cycle in topology"
}

// Graph is a directed graph whose keys sort deterministically: among the
// nodes ready at any step, Sort always emits the smallest key first.
type Graph[Key constraints.Ordered] struct {
	edges    map[Key]map[Key]bool
	inDegree map[Key]map[Key]bool
}

func NewGraph[Key constraints.Ordered]() *Graph[Key] {
	return &Graph[Key]{
		edges:    make(map[Key]map[Key]bool),
		inDegree: make(map[Key]map[Key]bool),
	}
}

// AddNode adds key to the graph. It fails with ErrNodeExists when the key is
// already present.
func (g *Graph[Key]) AddNode(key Key) error {
	if g.ContainsNode(key) {
		return ErrNodeExists
	}
	g.edges[key] = map[Key]bool{}
	return nil
}

func (g *Graph[Key]) ensureNode(key Key) {
	if !g.ContainsNode(key) {
		g.edges[key] = map[Key]bool{}
	}
}

// AddEdge adds an edge between from and to, adding missing nodes on the way.
func (g *Graph[Key]) AddEdge(from Key, to Key) {
	g.ensureNode(from)
	g.ensureNode(to)
	g.edges[from][to] = true
	if _, ok := g.inDegree[to]; !ok {
		g.inDegree[to] = make(map[Key]bool)
	}
	g.inDegree[to][from] = true
}

func (g *Graph[Key]) ContainsNode(key Key) bool {
	_, ok := g.edges[key]
	return ok
}

// Neighbors returns the targets of the edges leaving key, smallest first.
func (g *Graph[Key]) Neighbors(key Key) ([]Key, error) {
	es, ok := g.edges[key]
	if !ok {
		return nil, ErrNodeDoesNotExist
	}
	return drain(es), nil
}

func (g *Graph[Key]) InDegree(key Key) int {
	return len(g.inDegree[key])
}

func (g *Graph[Key]) OutDegree(key Key) int {
	return len(g.edges[key])
}

func (g *Graph[Key]) Len() int {
	return len(g.edges)
}

// Sort returns a valid topological sorting of this topology's Nodes
func (g *Graph[Key]) Sort() ([]Key, error) {
	/*
		Implementation of Kahn's algorithm: Wikipedia pseudocode

			L ← Empty list that will contain the sorted elements
			S ← Set of all Nodes with no incoming edge
			while S is non-empty do
			    remove a node n from S
			    add n to tail of L
			    for each node m with an edge e from n to m do
			        remove edge e from the graph
			        if m has no other incoming Edges then
			            insert m into S
			if graph has Edges then
			    return error   (graph has at least one cycle)
			else
			    return L   (a topologically sorted order)
	*/
	L := make([]Key, 0, len(g.edges))
	S := binheap.NewFrom(g.starts())
	inDegree := map[Key]int{}
	for k, v := range g.inDegree {
		inDegree[k] = len(v)
	}

	i := 0
	for {
		n, ok := S.PopMin()
		if !ok {
			break
		}
		L = append(L, n)

		for _, m := range drain(g.edges[n]) {
			inDegree[m] -= 1
			if inDegree[m] == 0 {
				S.Add(m)
			}
		}
		i++

		// in case of bugs...
		if i > 2*g.bound() {
			return nil, ErrRuntimeExceeded
		}
	}

	remainEdges := 0
	for _, v := range inDegree {
		remainEdges += v
	}
	if remainEdges > 0 {
		originInDegree := map[Key]int{}
		for k, v := range g.inDegree {
			originInDegree[k] = len(v)
		}
		return nil, &ErrCycleInTopology[Key]{OriginalEdges: originInDegree, RemainingEdges: copyMap(inDegree)}
	}
	return L, nil
}

// Layers groups the sorted keys by their longest distance from a start node.
func (g *Graph[Key]) Layers() ([][]Key, error) {
	sorted, err := g.Sort()
	if err != nil {
		return nil, err
	}

	depth := map[Key]int{}
	var layers [][]Key
	for _, k := range sorted {
		d := depth[k]
		if d == len(layers) {
			layers = append(layers, nil)
		}
		layers[d] = append(layers[d], k)
		for m := range g.edges[k] {
			if depth[m] < d+1 {
				depth[m] = d + 1
			}
		}
	}
	return layers, nil
}

func (g *Graph[Key]) bound() int {
	sum := len(g.edges)
	for _, ne := range g.inDegree {
		sum += len(ne)
	}
	return sum
}

func (g *Graph[Key]) starts() []Key {
	ret := make([]Key, 0)
	for k := range g.edges {
		if len(g.inDegree[k]) > 0 {
			continue
		}
		ret = append(ret, k)
	}
	return ret
}

// drain returns the keys of set in ascending order.
func drain[Key constraints.Ordered](set map[Key]bool) []Key {
	h := binheap.New[Key]()
	for k := range set {
		h.Add(k)
	}
	keys := make([]Key, 0, h.Len())
	for {
		k, ok := h.PopMin()
		if !ok {
			return keys
		}
		keys = append(keys, k)
	}
}

func copyMap[Key comparable, V any](src map[Key]V) map[Key]V {
	clone := map[Key]V{}
	for k, v := range src {
		clone[k] = v
	}
	return clone
}

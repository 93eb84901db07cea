// Package binheap implements a binomial min-heap with stable node handles.
//
// Add returns the node that holds a value. The handle stays valid until the
// node is removed, so callers can delete or re-key an arbitrary element in
// O(log n) through RemoveNode and UpdateNode. KeyedHeap additionally indexes
// every node by a unique key.
//
// Neither heap is safe for concurrent use. Iterators fail with
// ErrConcurrentModification once the heap they walk has been mutated.
package binheap

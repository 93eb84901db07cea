package binheap

import "errors"

var (
	ErrNilNode                = errors.New("node is nil")
	ErrNodeAttached           = errors.New("node already belongs to a heap")
	ErrForeignNode            = errors.New("node belongs to another heap")
	ErrNilPredicate           = errors.New("match predicate is nil")
	ErrNilComparator          = errors.New("comparator is nil")
	ErrConcurrentModification = errors.New("heap was modified after the iterator was created")
	ErrKeyExists              = errors.New("key already exists in heap")
)

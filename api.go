package treemap

import (
	"fmt"
	"io"
	"iter"
)

// TreeMap is a map keyed by sequences of exactly Depth() components.
// Two keys are equal if their first Depth() components are pairwise equal.
//
// A TreeMap is not safe for concurrent use.
type TreeMap[V any] interface {
	Set(key Key, value V) TreeMap[V]
	Get(key Key) (V, bool)
	Has(key Key) bool
	Delete(key Key) bool
	Clear()
	Size() int
	Depth() int

	// All yields every (key, value) pair depth first, in insertion order.
	All() iter.Seq2[Key, V]
	Keys() iter.Seq[Key]
	Values() iter.Seq[V]
	ForEach(fn Callback[V])
	Iterator() Iterator[V]

	// Compact removes branches left empty by Delete and returns the number
	// of nodes removed.
	Compact() int
	ToDot(w io.Writer) error
}

type Iterator[V any] interface {
	HasNext() bool
	Next() (Entry[V], error)
}

type Entry[V any] interface {
	Key() Key
	Value() V
}

// New creates an empty map for keys of depth components.
func New[V any](depth int) (TreeMap[V], error) {
	if depth < 1 {
		return nil, fmt.Errorf("%w: depth must be at least 1, got %d", ErrInvalidArgument, depth)
	}
	tracer().Debugf("treemap: new map of depth %d", depth)
	return &tree[V]{
		depth: depth,
		root:  newNode[V](),
	}, nil
}

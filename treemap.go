package treemap

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

const (
	traverseStop traverseAction = iota
	traverseContinue
)

const (
	// hashSeed seeds circlehash for []byte components. Collisions are
	// resolved by comparing contents.
	hashSeed uint64 = 0x9e3779b97f4a7c15
)

var (
	// ErrInvalidArgument signals a malformed depth or key component.
	ErrInvalidArgument = errors.New("treemap: invalid argument")
	// ErrNoMoreEntries is returned by Iterator.Next past the last entry.
	ErrNoMoreEntries = errors.New("treemap: there are no more entries in the map")
)

type (
	tree[V any] struct {
		depth int
		root  *node[V]
	}

	// Key is a sequence of key components. Only the first Depth() components
	// are consulted; missing trailing components read as nil.
	Key []any

	// Hashable is implemented by key components that supply their own
	// equality. Components with equal values must return equal hashes.
	Hashable interface {
		Hash() uint64
		Equal(other any) bool
	}

	// Callback receives one entry per call; returning false stops the walk.
	Callback[V any] func(key Key, value V) bool

	traverseAction int

	// nanKey stands in for every NaN component of one float width.
	nanKey struct{ bits int }

	entry[V any] struct {
		key   Key
		value V
	}

	iterator[V any] struct {
		entries []entry[V]
		next    int
	}
)

// tracer writes to trace with key 'treemap'
func tracer() tracing.Trace {
	return tracing.Select("treemap")
}

func (e entry[V]) Key() Key {
	return e.key
}

func (e entry[V]) Value() V {
	return e.value
}

// at returns the i-th component, or nil past the end of k.
func (k Key) at(i int) any {
	if i < 0 || i >= len(k) {
		return nil
	}
	return k[i]
}

func invariant(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

package treemap

import (
	"bytes"
	"fmt"
	"reflect"
	"slices"

	"github.com/fxamacker/circlehash"
)

// node maps key components to either child nodes or, in a branch, to
// stored values. Slots form a doubly linked list in insertion order.
type node[V any] struct {
	head, tail *slot[V]
	count      int

	// index holds comparable components, hashed holds []byte and Hashable
	// components bucketed by hash.
	index  map[any]*slot[V]
	hashed map[uint64][]*slot[V]
}

type slot[V any] struct {
	component any
	child     *node[V]
	value     V

	prev, next *slot[V]
}

func newNode[V any]() *node[V] {
	return &node[V]{}
}

// identify maps a component to its index key. Components without a usable
// Go equality report hashed == true together with their hash.
func identify(c any) (key any, hash uint64, hashed bool) {
	switch v := c.(type) {
	case nil:
		return nil, 0, false
	case Hashable:
		return nil, v.Hash(), true
	case []byte:
		return nil, circlehash.Hash64(v, hashSeed), true
	case float64:
		if v != v {
			return nanKey{bits: 64}, 0, false
		}
	case float32:
		if v != v {
			return nanKey{bits: 32}, 0, false
		}
	}
	if !reflect.ValueOf(c).Comparable() {
		panic(fmt.Errorf("%w: key component of type %T is not comparable", ErrInvalidArgument, c))
	}
	return c, 0, false
}

func sameComponent(query, stored any) bool {
	switch q := query.(type) {
	case Hashable:
		return q.Equal(stored)
	case []byte:
		s, ok := stored.([]byte)
		return ok && bytes.Equal(q, s)
	}
	return false
}

func (n *node[V]) len() int {
	if n == nil {
		return 0
	}
	return n.count
}

func (n *node[V]) lookup(c any) *slot[V] {
	if n == nil {
		return nil
	}
	key, hash, hashed := identify(c)
	if !hashed {
		return n.index[key]
	}
	for _, s := range n.hashed[hash] {
		if sameComponent(c, s.component) {
			return s
		}
	}
	return nil
}

// findChild returns the child node under c, or nil. It never allocates.
func (n *node[V]) findChild(c any) *node[V] {
	if s := n.lookup(c); s != nil {
		return s.child
	}
	return nil
}

// addChild returns the child node under c, creating it if needed.
func (n *node[V]) addChild(c any) *node[V] {
	s := n.lookup(c)
	if s == nil {
		s = n.insert(c)
	}
	if s.child == nil {
		s.child = newNode[V]()
	}
	return s.child
}

// put stores a leaf value. An existing slot keeps its list position.
func (n *node[V]) put(c any, value V) {
	s := n.lookup(c)
	if s == nil {
		s = n.insert(c)
	}
	s.value = value
}

func (n *node[V]) insert(c any) *slot[V] {
	key, hash, hashed := identify(c)
	if b, ok := c.([]byte); ok {
		c = slices.Clone(b)
	}
	s := &slot[V]{component: c, prev: n.tail}
	if n.tail == nil {
		n.head = s
	} else {
		n.tail.next = s
	}
	n.tail = s
	n.count++

	if hashed {
		if n.hashed == nil {
			n.hashed = make(map[uint64][]*slot[V])
		}
		n.hashed[hash] = append(n.hashed[hash], s)
	} else {
		if n.index == nil {
			n.index = make(map[any]*slot[V])
		}
		n.index[key] = s
	}
	return s
}

// remove unlinks the slot for c and reports whether one existed.
func (n *node[V]) remove(c any) bool {
	s := n.lookup(c)
	if s == nil {
		return false
	}
	n.unlink(s)
	return true
}

func (n *node[V]) unlink(s *slot[V]) {
	key, hash, hashed := identify(s.component)
	if hashed {
		bucket := slices.DeleteFunc(n.hashed[hash], func(o *slot[V]) bool { return o == s })
		if len(bucket) == 0 {
			delete(n.hashed, hash)
		} else {
			n.hashed[hash] = bucket
		}
	} else {
		delete(n.index, key)
	}

	if s.prev == nil {
		n.head = s.next
	} else {
		s.prev.next = s.next
	}
	if s.next == nil {
		n.tail = s.prev
	} else {
		s.next.prev = s.prev
	}
	s.prev, s.next = nil, nil
	n.count--
}

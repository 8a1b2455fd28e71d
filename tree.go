package treemap

import (
	"fmt"
	"iter"
	"slices"
)

func (t *tree[V]) Depth() int {
	return t.depth
}

func (t *tree[V]) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	if t.depth == 1 {
		return t.root.len()
	}
	size := 0
	t.forEachBranch(t.root, 0, func(branch *node[V]) {
		size += branch.len()
	})
	return size
}

func (t *tree[V]) Set(key Key, value V) TreeMap[V] {
	t.branch(key, true).put(key.at(t.depth-1), value)
	return t
}

func (t *tree[V]) Get(key Key) (V, bool) {
	var zero V
	s := t.branch(key, false).lookup(key.at(t.depth - 1))
	if s == nil {
		return zero, false
	}
	return s.value, true
}

func (t *tree[V]) Has(key Key) bool {
	return t.branch(key, false).lookup(key.at(t.depth-1)) != nil
}

// Delete removes the entry for key. The branch holding it stays in place
// even when it becomes empty; see Compact.
func (t *tree[V]) Delete(key Key) bool {
	branch := t.branch(key, false)
	if branch == nil {
		return false
	}
	return branch.remove(key.at(t.depth - 1))
}

func (t *tree[V]) Clear() {
	tracer().Debugf("treemap: clearing map of depth %d", t.depth)
	t.root = newNode[V]()
}

// branch resolves the node holding the leaves for key. With create set,
// missing nodes along the path are allocated; otherwise a missing node
// yields nil.
func (t *tree[V]) branch(key Key, create bool) *node[V] {
	curr := t.root
	for i := 0; i < t.depth-1; i++ {
		if create {
			curr = curr.addChild(key.at(i))
			continue
		}
		if curr = curr.findChild(key.at(i)); curr == nil {
			return nil
		}
	}
	return curr
}

// forEachBranch calls fn for every branch below n, which sits at level.
func (t *tree[V]) forEachBranch(n *node[V], level int, fn func(*node[V])) {
	if level == t.depth-1 {
		fn(n)
		return
	}
	for s := n.head; s != nil; s = s.next {
		if s.child != nil {
			t.forEachBranch(s.child, level+1, fn)
		}
	}
}

func (t *tree[V]) ForEach(fn Callback[V]) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	err := t.traverse(t.root, t.depth, fn)
	invariant(err == nil, "traversal of a well-formed map failed")
}

func (t *tree[V]) All() iter.Seq2[Key, V] {
	return func(yield func(Key, V) bool) {
		t.ForEach(yield)
	}
}

func (t *tree[V]) Keys() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		t.ForEach(func(key Key, _ V) bool {
			return yield(key)
		})
	}
}

func (t *tree[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		t.ForEach(func(_ Key, value V) bool {
			return yield(value)
		})
	}
}

// traverse walks the subtree under n depth first and calls fn for every
// leaf with its full key. targetDepth is the number of components that make
// up a full key when starting at n.
func (t *tree[V]) traverse(n *node[V], targetDepth int, fn Callback[V]) error {
	if targetDepth < 1 {
		return fmt.Errorf("%w: traversal target depth must be at least 1, got %d", ErrInvalidArgument, targetDepth)
	}
	t.recursiveTraverse(n, targetDepth, make(Key, 0, targetDepth), fn)
	return nil
}

func (t *tree[V]) recursiveTraverse(n *node[V], targetDepth int, path Key, fn Callback[V]) traverseAction {
	if len(path)+1 == targetDepth {
		for s := n.head; s != nil; s = s.next {
			key := append(slices.Clone(path), s.component)
			if !fn(key, s.value) {
				return traverseStop
			}
		}
		return traverseContinue
	}

	for s := n.head; s != nil; s = s.next {
		if s.child == nil {
			continue
		}
		if t.recursiveTraverse(s.child, targetDepth, append(path, s.component), fn) == traverseStop {
			return traverseStop
		}
	}
	return traverseContinue
}

// Iterator returns an iterator over a snapshot of the current entries.
func (t *tree[V]) Iterator() Iterator[V] {
	entries := make([]entry[V], 0, t.Size())
	t.ForEach(func(key Key, value V) bool {
		entries = append(entries, entry[V]{key: key, value: value})
		return true
	})
	return &iterator[V]{entries: entries}
}

func (it *iterator[V]) HasNext() bool {
	return it != nil && it.next < len(it.entries)
}

func (it *iterator[V]) Next() (Entry[V], error) {
	if !it.HasNext() {
		return nil, ErrNoMoreEntries
	}
	e := it.entries[it.next]
	it.next++
	return e, nil
}

func (t *tree[V]) Compact() int {
	removed := t.compact(t.root, 0)
	tracer().Debugf("treemap: compaction removed %d empty nodes", removed)
	return removed
}

// compact drops empty nodes below n, which sits at level, and returns how
// many were dropped. Branches are never dropped by their own level.
func (t *tree[V]) compact(n *node[V], level int) int {
	if level >= t.depth-1 {
		return 0
	}
	removed := 0
	for s := n.head; s != nil; {
		next := s.next
		removed += t.compact(s.child, level+1)
		if s.child.len() == 0 {
			n.unlink(s)
			removed++
		}
		s = next
	}
	return removed
}

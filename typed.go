package treemap

import (
	"iter"
	"slices"
)

// Pair is the key of a Map2.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is the key of a Map3.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Map2 is a depth 2 map with typed key components. Every call is forwarded
// to the underlying TreeMap.
type Map2[A, B comparable, V any] struct {
	m TreeMap[V]
}

func NewMap2[A, B comparable, V any]() *Map2[A, B, V] {
	m, err := New[V](2)
	invariant(err == nil, "depth 2 is valid")
	return &Map2[A, B, V]{m: m}
}

func (m *Map2[A, B, V]) Set(a A, b B, value V) *Map2[A, B, V] {
	m.m.Set(Key{a, b}, value)
	return m
}

func (m *Map2[A, B, V]) Get(a A, b B) (V, bool) { return m.m.Get(Key{a, b}) }
func (m *Map2[A, B, V]) Has(a A, b B) bool      { return m.m.Has(Key{a, b}) }
func (m *Map2[A, B, V]) Delete(a A, b B) bool   { return m.m.Delete(Key{a, b}) }
func (m *Map2[A, B, V]) Size() int              { return m.m.Size() }
func (m *Map2[A, B, V]) Clear()                 { m.m.Clear() }
func (m *Map2[A, B, V]) Untyped() TreeMap[V]    { return m.m }

func (m *Map2[A, B, V]) All() iter.Seq2[Pair[A, B], V] {
	return func(yield func(Pair[A, B], V) bool) {
		m.m.ForEach(func(key Key, value V) bool {
			a, _ := key[0].(A)
			b, _ := key[1].(B)
			return yield(Pair[A, B]{a, b}, value)
		})
	}
}

// Map3 is the depth 3 counterpart of Map2.
type Map3[A, B, C comparable, V any] struct {
	m TreeMap[V]
}

func NewMap3[A, B, C comparable, V any]() *Map3[A, B, C, V] {
	m, err := New[V](3)
	invariant(err == nil, "depth 3 is valid")
	return &Map3[A, B, C, V]{m: m}
}

func (m *Map3[A, B, C, V]) Set(a A, b B, c C, value V) *Map3[A, B, C, V] {
	m.m.Set(Key{a, b, c}, value)
	return m
}

func (m *Map3[A, B, C, V]) Get(a A, b B, c C) (V, bool) { return m.m.Get(Key{a, b, c}) }
func (m *Map3[A, B, C, V]) Has(a A, b B, c C) bool      { return m.m.Has(Key{a, b, c}) }
func (m *Map3[A, B, C, V]) Delete(a A, b B, c C) bool   { return m.m.Delete(Key{a, b, c}) }
func (m *Map3[A, B, C, V]) Size() int                   { return m.m.Size() }
func (m *Map3[A, B, C, V]) Clear()                      { m.m.Clear() }
func (m *Map3[A, B, C, V]) Untyped() TreeMap[V]         { return m.m }

func (m *Map3[A, B, C, V]) All() iter.Seq2[Triple[A, B, C], V] {
	return func(yield func(Triple[A, B, C], V) bool) {
		m.m.ForEach(func(key Key, value V) bool {
			a, _ := key[0].(A)
			b, _ := key[1].(B)
			c, _ := key[2].(C)
			return yield(Triple[A, B, C]{a, b, c}, value)
		})
	}
}

// Category fixes the leading components of a key path together with the
// type of the values stored beneath it. Paths built from a category can only
// be paired with values of that type.
type Category[V any] struct {
	prefix Key
}

// Path is a full key whose value type is fixed at compile time.
type Path[V any] struct {
	key Key
}

func NewCategory[V any](prefix ...any) Category[V] {
	return Category[V]{prefix: slices.Clone(Key(prefix))}
}

func (c Category[V]) Path(rest ...any) Path[V] {
	key := make(Key, 0, len(c.prefix)+len(rest))
	key = append(key, c.prefix...)
	return Path[V]{key: append(key, rest...)}
}

func (p Path[V]) Key() Key {
	return slices.Clone(p.key)
}

func SetPath[V any](m TreeMap[any], p Path[V], value V) {
	m.Set(p.key, value)
}

// GetPath returns the value stored under p. A value of another type stored
// under the same key through the untyped map reads as absent.
func GetPath[V any](m TreeMap[any], p Path[V]) (V, bool) {
	var zero V
	v, ok := m.Get(p.key)
	if !ok {
		return zero, false
	}
	tv, ok := v.(V)
	if !ok {
		return zero, false
	}
	return tv, true
}

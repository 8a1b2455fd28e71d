package treemap

import (
	"math"
	"strings"
	"testing"

	"github.com/fxamacker/circlehash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// caseless compares strings ignoring case.
type caseless string

func (c caseless) Hash() uint64 {
	return circlehash.Hash64([]byte(strings.ToLower(string(c))), 0)
}

func (c caseless) Equal(other any) bool {
	o, ok := other.(caseless)
	return ok && strings.EqualFold(string(c), string(o))
}

// collider puts every value into one hash bucket.
type collider struct{ id int }

func (c *collider) Hash() uint64 { return 1 }

func (c *collider) Equal(other any) bool {
	o, ok := other.(*collider)
	return ok && o.id == c.id
}

func TestByteSliceComponentsCompareByContent(t *testing.T) {
	m, err := New[int](2)
	require.NoError(t, err)

	k := []byte("abc")
	m.Set(Key{k, []byte("x")}, 1)
	k[0] = 'z'

	v, ok := m.Get(Key{[]byte("abc"), []byte("x")})
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.False(t, m.Has(Key{k, []byte("x")}))
	assert.False(t, m.Has(Key{"abc", []byte("x")}))

	m.Set(Key{[]byte("abc"), []byte("x")}, 2)
	assert.Equal(t, 1, m.Size())
	assert.True(t, m.Delete(Key{[]byte("abc"), []byte("x")}))
	assert.Equal(t, 0, m.Size())
}

func TestHashableComponents(t *testing.T) {
	m, err := New[string](2)
	require.NoError(t, err)

	m.Set(Key{caseless("Hello"), 1}, "a")
	v, ok := m.Get(Key{caseless("HELLO"), 1})
	assert.True(t, ok)
	assert.Equal(t, "a", v)
	assert.False(t, m.Has(Key{"Hello", 1}))

	keys, _ := collect(m)
	assert.Equal(t, []Key{{caseless("Hello"), 1}}, keys)
}

func TestHashCollisions(t *testing.T) {
	m, err := New[int](1)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		m.Set(Key{&collider{i}}, i)
	}
	assert.Equal(t, 5, m.Size())
	assert.True(t, m.Delete(Key{&collider{2}}))
	assert.False(t, m.Has(Key{&collider{2}}))
	for _, i := range []int{0, 1, 3, 4} {
		v, ok := m.Get(Key{&collider{i}})
		assert.True(t, ok)
		assert.Equal(t, i, v)
	}
	assert.Len(t, m.(*tree[int]).root.hashed[1], 4)
}

func TestPointerComponentsCompareByIdentity(t *testing.T) {
	type point struct{ x, y int }
	m, err := New[int](1)
	require.NoError(t, err)

	p := &point{1, 2}
	m.Set(Key{p}, 1)
	assert.True(t, m.Has(Key{p}))
	assert.False(t, m.Has(Key{&point{1, 2}}))
	assert.False(t, m.Has(Key{*p}))

	m.Set(Key{point{1, 2}}, 2)
	assert.True(t, m.Has(Key{point{1, 2}}))
	assert.Equal(t, 2, m.Size())
}

func TestNaNAndSignedZero(t *testing.T) {
	m, err := New[string](2)
	require.NoError(t, err)

	m.Set(Key{math.NaN(), 0.0}, "nan")
	v, ok := m.Get(Key{math.NaN(), math.Copysign(0, -1)})
	assert.True(t, ok)
	assert.Equal(t, "nan", v)

	m.Set(Key{float32(math.NaN()), 0.0}, "nan32")
	assert.Equal(t, 2, m.Size())
	v, ok = m.Get(Key{float32(math.NaN()), 0.0})
	assert.True(t, ok)
	assert.Equal(t, "nan32", v)
}

func TestNonComparableComponentPanics(t *testing.T) {
	m, err := New[int](2)
	require.NoError(t, err)

	assert.Panics(t, func() { m.Set(Key{[]int{1}, 1}, 1) })
	assert.Panics(t, func() { m.Set(Key{1, map[string]int{}}, 1) })
	assert.Panics(t, func() { m.Get(Key{struct{ s []int }{}, 1}) })
	assert.Equal(t, 0, m.Size())
}

func TestNodeKeepsInsertionOrder(t *testing.T) {
	n := newNode[int]()
	for i, c := range []any{"c", "a", []byte("b"), 3} {
		n.put(c, i)
	}
	assert.True(t, n.remove("a"))
	assert.False(t, n.remove("a"))
	n.put("c", 10)
	n.put("a", 11)

	var got []any
	var values []int
	for s := n.head; s != nil; s = s.next {
		got = append(got, s.component)
		values = append(values, s.value)
	}
	assert.Equal(t, []any{"c", []byte("b"), 3, "a"}, got)
	assert.Equal(t, []int{10, 2, 3, 11}, values)
	assert.Equal(t, 4, n.len())

	assert.True(t, n.remove(3))
	assert.True(t, n.remove("a"))
	assert.Equal(t, "c", n.head.component)
	assert.Equal(t, []byte("b"), n.tail.component)
	assert.Nil(t, n.tail.next)
}

func TestFindChildDoesNotAllocate(t *testing.T) {
	n := newNode[int]()
	assert.Nil(t, n.findChild("x"))
	assert.Equal(t, 0, n.len())

	c := n.addChild("x")
	assert.Same(t, c, n.addChild("x"))
	assert.Same(t, c, n.findChild("x"))
	assert.Equal(t, 1, n.len())
}

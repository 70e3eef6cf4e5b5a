package list

import (
	"github.com/npillmayer/persist/avl"
)

// List is an immutable indexable sequence, backed by the index-ordered mode
// of the avl engine. All positional operations run in O(log n); each
// “modification” returns a new incarnation of the list, sharing most of its
// memory with the original. An empty instance is usable directly:
//
//	l := list.List[int]{}.Push(42)
//	l.Get(0)   // returns 42
//
// For O(1) reads at the price of O(n) writes see the array package, which
// implements the same contract over a plain slice.
type List[T any] struct {
	root *avl.Node[T]
	eq   func(a, b T) bool
}

// Immutable constructs an empty list with options, if you need any.
func Immutable[T any](opts ...Option[T]) List[T] {
	l := List[T]{}
	for _, option := range opts {
		l = option(l)
	}
	return l
}

// Option is a type to help initializing lists at creation time.
type Option[T any] func(List[T]) List[T]

// Equality is an option to supply an equality function, enabling IndexOf
// and Contains.
//
// Use it like this:
//
//	l := list.Immutable[int](list.Equality(func(a, b int) bool { return a == b }))
func Equality[T any](eq func(a, b T) bool) Option[T] {
	return func(l List[T]) List[T] {
		l.eq = eq
		return l
	}
}

// FromSlice constructs a list holding the values of a slice, in order. The
// backing tree is bulk-loaded in one O(n) pass rather than built by n
// single-value inserts.
func FromSlice[T any](values []T, opts ...Option[T]) List[T] {
	l := Immutable(opts...)
	l.root = avl.FromSlice(values)
	return l
}

// --- API -------------------------------------------------------------------

// Len returns the number of values, read O(1) from the root node.
func (l List[T]) Len() int {
	return l.root.Len()
}

// Get returns the value at position i, with 0 ≤ i < l.Len().
func (l List[T]) Get(i int) T {
	assertThat(i >= 0 && i < l.Len(), "list index out of bounds: %d with length %d", i, l.Len())
	return l.root.At(i)
}

// Set returns a list with the value at position i replaced by value, with
// 0 ≤ i < l.Len(). The receiver is never altered.
func (l List[T]) Set(i int, value T) List[T] {
	assertThat(i >= 0 && i < l.Len(), "list index out of bounds: %d with length %d", i, l.Len())
	return List[T]{root: l.root.WithReplacedAt(i, value), eq: l.eq}
}

// Insert returns a list with value inserted at position i, shifting later
// values one position to the right. i may equal l.Len(), which appends.
func (l List[T]) Insert(i int, value T) List[T] {
	assertThat(i >= 0 && i <= l.Len(), "list insertion index out of bounds: %d with length %d", i, l.Len())
	tracer().Debugf("list.Insert: value %v at %d", value, i)
	return List[T]{root: l.root.WithInsertedAt(i, value), eq: l.eq}
}

// Remove returns a list with the value at position i removed, together
// with that value, with 0 ≤ i < l.Len().
func (l List[T]) Remove(i int) (List[T], T) {
	assertThat(i >= 0 && i < l.Len(), "list index out of bounds: %d with length %d", i, l.Len())
	root, removed := l.root.WithDeletedAt(i)
	return List[T]{root: root, eq: l.eq}, removed
}

// Push returns a list with value appended at the end.
func (l List[T]) Push(value T) List[T] {
	return List[T]{root: l.root.WithInsertedAt(l.Len(), value), eq: l.eq}
}

// Pop returns a list with the last value removed.
func (l List[T]) Pop() List[T] {
	assertThat(l.Len() > 0, "attempt to remove value from empty list")
	root, _ := l.root.WithDeletedAt(l.Len() - 1)
	return List[T]{root: root, eq: l.eq}
}

// First returns the value at position 0, together with found=false for an
// empty list.
func (l List[T]) First() (T, bool) {
	return l.root.Min()
}

// Last returns the value at the final position, together with found=false
// for an empty list.
func (l List[T]) Last() (T, bool) {
	return l.root.Max()
}

// IndexOf returns the position of the first value equal to probe, or -1.
// Equality is decided by the function supplied with the Equality option.
// This is a full enumeration, O(n); the list keeps no search structure for
// values.
func (l List[T]) IndexOf(probe T) int {
	assertThat(l.eq != nil, "list has no equality function; use the Equality option")
	i := 0
	for it := l.Ascend(); ; i++ {
		v, ok := it.Next()
		if !ok {
			return -1
		}
		if l.eq(v, probe) {
			return i
		}
	}
}

// Contains tells if the list holds a value equal to probe; O(n), see
// IndexOf.
func (l List[T]) Contains(probe T) bool {
	return l.IndexOf(probe) >= 0
}

// Slice returns the values of the list as a fresh slice, in order.
func (l List[T]) Slice() []T {
	return l.root.Values()
}

// Each calls f for every value, in positional order.
func (l List[T]) Each(f func(value T)) {
	for it := l.Ascend(); ; {
		v, ok := it.Next()
		if !ok {
			return
		}
		f(v)
	}
}

// Ascend returns an iterator over the values in positional order. The
// iterator observes the incarnation it was created against, regardless of
// lists derived later.
func (l List[T]) Ascend() *avl.Iterator[T] {
	return l.root.Ascend()
}

// Descend returns an iterator over the values in reverse positional order.
func (l List[T]) Descend() *avl.Iterator[T] {
	return l.root.Descend()
}

package array

// Array is an immutable indexable sequence backed by a plain slice. It
// implements the same contract as the list package with the opposite cost
// profile: Get is O(1), while every “modification” copies the backing
// store, i.e. O(n). Use it for small sequences or read-mostly workloads;
// the two are interchangeable behind the shared sequence contract.
//
// An empty instance is usable directly:
//
//	a := array.Array[int]{}.Push(42)
type Array[T any] struct {
	values []T // never handed out and never written after construction
	eq     func(a, b T) bool
}

// Immutable constructs an empty array with options, if you need any.
func Immutable[T any](opts ...Option[T]) Array[T] {
	a := Array[T]{}
	for _, option := range opts {
		a = option(a)
	}
	return a
}

// Option is a type to help initializing arrays at creation time.
type Option[T any] func(Array[T]) Array[T]

// Equality is an option to supply an equality function, enabling IndexOf
// and Contains.
func Equality[T any](eq func(a, b T) bool) Option[T] {
	return func(a Array[T]) Array[T] {
		a.eq = eq
		return a
	}
}

// FromSlice constructs an array holding the values of a slice, in order.
// The input is copied.
func FromSlice[T any](values []T, opts ...Option[T]) Array[T] {
	a := Immutable(opts...)
	a.values = clone(values, len(values))
	return a
}

// --- API -------------------------------------------------------------------

// Len returns the number of values, O(1).
func (a Array[T]) Len() int {
	return len(a.values)
}

// Get returns the value at position i, with 0 ≤ i < a.Len(); O(1).
func (a Array[T]) Get(i int) T {
	assertThat(i >= 0 && i < len(a.values), "array index out of bounds: %d with length %d", i, len(a.values))
	return a.values[i]
}

// Set returns an array with the value at position i replaced by value. The
// receiver is never altered.
func (a Array[T]) Set(i int, value T) Array[T] {
	assertThat(i >= 0 && i < len(a.values), "array index out of bounds: %d with length %d", i, len(a.values))
	values := clone(a.values, len(a.values))
	values[i] = value
	return Array[T]{values: values, eq: a.eq}
}

// Insert returns an array with value inserted at position i, shifting later
// values one position to the right. i may equal a.Len(), which appends.
func (a Array[T]) Insert(i int, value T) Array[T] {
	assertThat(i >= 0 && i <= len(a.values), "array insertion index out of bounds: %d with length %d", i, len(a.values))
	values := make([]T, len(a.values)+1)
	copy(values, a.values[:i])
	values[i] = value
	copy(values[i+1:], a.values[i:])
	return Array[T]{values: values, eq: a.eq}
}

// Remove returns an array with the value at position i removed, together
// with that value.
func (a Array[T]) Remove(i int) (Array[T], T) {
	assertThat(i >= 0 && i < len(a.values), "array index out of bounds: %d with length %d", i, len(a.values))
	values := make([]T, len(a.values)-1)
	copy(values, a.values[:i])
	copy(values[i:], a.values[i+1:])
	return Array[T]{values: values, eq: a.eq}, a.values[i]
}

// Push returns an array with value appended at the end.
func (a Array[T]) Push(value T) Array[T] {
	values := clone(a.values, len(a.values)+1)
	values[len(values)-1] = value
	return Array[T]{values: values, eq: a.eq}
}

// Pop returns an array with the last value removed.
func (a Array[T]) Pop() Array[T] {
	assertThat(len(a.values) > 0, "attempt to remove value from empty array")
	return Array[T]{values: clone(a.values, len(a.values)-1), eq: a.eq}
}

// First returns the value at position 0, together with found=false for an
// empty array.
func (a Array[T]) First() (T, bool) {
	if len(a.values) == 0 {
		var none T
		return none, false
	}
	return a.values[0], true
}

// Last returns the value at the final position, together with found=false
// for an empty array.
func (a Array[T]) Last() (T, bool) {
	if len(a.values) == 0 {
		var none T
		return none, false
	}
	return a.values[len(a.values)-1], true
}

// IndexOf returns the position of the first value equal to probe, or -1;
// O(n). Equality is decided by the function supplied with the Equality
// option.
func (a Array[T]) IndexOf(probe T) int {
	assertThat(a.eq != nil, "array has no equality function; use the Equality option")
	for i, v := range a.values {
		if a.eq(v, probe) {
			return i
		}
	}
	return -1
}

// Contains tells if the array holds a value equal to probe; O(n).
func (a Array[T]) Contains(probe T) bool {
	return a.IndexOf(probe) >= 0
}

// Slice returns the values as a fresh slice, in order.
func (a Array[T]) Slice() []T {
	return clone(a.values, len(a.values))
}

// Each calls f for every value, in positional order.
func (a Array[T]) Each(f func(value T)) {
	for _, v := range a.values {
		f(v)
	}
}

// EachReversed calls f for every value, in reverse positional order.
func (a Array[T]) EachReversed(f func(value T)) {
	for i := len(a.values) - 1; i >= 0; i-- {
		f(a.values[i])
	}
}

// clone copies values into a fresh slice of length n; n may exceed
// len(values) by one, for copy-on-grow appends.
func clone[T any](values []T, n int) []T {
	fresh := make([]T, n)
	copy(fresh, values)
	return fresh
}

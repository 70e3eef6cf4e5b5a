/*
Package stack implements an immutable persistent LIFO stack as a singly
linked list of shared cells.

Pushing allocates one cell; popping allocates nothing. Every incarnation of
a stack shares its tail cells with all incarnations derived from it, so
“copies” are O(1) in time and space.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package stack

import "fmt"

// Stack is an immutable LIFO stack. The zero value is an empty stack,
// ready to use:
//
//	s := stack.Stack[int]{}.Push(42)
type Stack[T any] struct {
	head *cell[T]
}

// cell is one immutable link of a stack. depth caches the number of cells
// below and including this one, so Len stays O(1).
type cell[T any] struct {
	value T
	rest  *cell[T]
	depth int
}

// Len returns the number of values, O(1).
func (s Stack[T]) Len() int {
	if s.head == nil {
		return 0
	}
	return s.head.depth
}

// IsEmpty tells if the stack holds no values.
func (s Stack[T]) IsEmpty() bool {
	return s.head == nil
}

// Push returns a stack with value on top. The receiver is never altered.
func (s Stack[T]) Push(value T) Stack[T] {
	return Stack[T]{head: &cell[T]{value: value, rest: s.head, depth: s.Len() + 1}}
}

// Pop returns a stack with the top value removed, together with that
// value. Popping an empty stack is an error and panics; check IsEmpty or
// use Top first.
func (s Stack[T]) Pop() (Stack[T], T) {
	assertThat(s.head != nil, "attempt to pop value from empty stack")
	return Stack[T]{head: s.head.rest}, s.head.value
}

// Top returns the top value, together with found=false for an empty stack.
func (s Stack[T]) Top() (T, bool) {
	if s.head == nil {
		var none T
		return none, false
	}
	return s.head.value, true
}

// Reverse returns a stack holding the same values in opposite order; O(n).
func (s Stack[T]) Reverse() Stack[T] {
	reversed := Stack[T]{}
	for c := s.head; c != nil; c = c.rest {
		reversed = reversed.Push(c.value)
	}
	return reversed
}

// Each calls f for every value, from top to bottom.
func (s Stack[T]) Each(f func(value T)) {
	for c := s.head; c != nil; c = c.rest {
		f(c.value)
	}
}

// Slice returns the values as a fresh slice, from top to bottom.
func (s Stack[T]) Slice() []T {
	values := make([]T, 0, s.Len())
	s.Each(func(v T) {
		values = append(values, v)
	})
	return values
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("stack: "+msg, msgargs...)
		panic(msg)
	}
}

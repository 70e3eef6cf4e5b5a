/*
Package queue implements an immutable persistent FIFO queue from a pair of
stacks, in the classic two-list fashion: values are enqueued onto a back
stack and dequeued from a front stack; whenever the front runs dry, the
back is reversed into it. Enqueue and Dequeue therefore cost amortized
O(1), and every incarnation shares its cells with the incarnations derived
from it.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package queue

import (
	"fmt"

	"github.com/npillmayer/persist/stack"
)

// Queue is an immutable FIFO queue. The zero value is an empty queue,
// ready to use:
//
//	q := queue.Queue[int]{}.Enqueue(42)
//
// Invariant: front is only empty when the queue is empty, so the next
// value to leave is always front's top.
type Queue[T any] struct {
	front stack.Stack[T]
	back  stack.Stack[T]
}

// Len returns the number of values, O(1).
func (q Queue[T]) Len() int {
	return q.front.Len() + q.back.Len()
}

// IsEmpty tells if the queue holds no values.
func (q Queue[T]) IsEmpty() bool {
	return q.front.IsEmpty()
}

// Enqueue returns a queue with value added at the rear. The receiver is
// never altered.
func (q Queue[T]) Enqueue(value T) Queue[T] {
	if q.front.IsEmpty() { // empty queue: the value goes straight to the front
		return Queue[T]{front: q.front.Push(value), back: q.back}
	}
	return Queue[T]{front: q.front, back: q.back.Push(value)}
}

// Dequeue returns a queue with the front value removed, together with that
// value. Dequeuing an empty queue is an error and panics; check IsEmpty or
// use Front first.
func (q Queue[T]) Dequeue() (Queue[T], T) {
	assertThat(!q.front.IsEmpty(), "attempt to dequeue value from empty queue")
	front, value := q.front.Pop()
	if front.IsEmpty() { // re-establish the invariant from the back stack
		return Queue[T]{front: q.back.Reverse()}, value
	}
	return Queue[T]{front: front, back: q.back}, value
}

// Front returns the value that Dequeue would remove, together with
// found=false for an empty queue.
func (q Queue[T]) Front() (T, bool) {
	return q.front.Top()
}

// Each calls f for every value, in dequeue order.
func (q Queue[T]) Each(f func(value T)) {
	q.front.Each(f)
	q.back.Reverse().Each(f)
}

// Slice returns the values as a fresh slice, in dequeue order.
func (q Queue[T]) Slice() []T {
	values := make([]T, 0, q.Len())
	q.Each(func(v T) {
		values = append(values, v)
	})
	return values
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("queue: "+msg, msgargs...)
		panic(msg)
	}
}

package avl

// Iterator enumerates the values of one tree incarnation in order. Since
// trees are immutable, the iterator always observes a consistent snapshot,
// no matter which derived versions are created while it runs.
//
// The iterator is pull-based and keeps an explicit stack of pending
// subtrees instead of recursing: Next pops a subtree, and either discards
// it (empty), emits its value (no subtree on the near side), or splits it
// into far child, a single-value stand-in for the value itself, and near
// child — pushed in that order, so the near subtree is fully drained before
// the stand-in re-surfaces. The source tree is never touched; only the
// lightweight stand-ins are allocated.
//
// Amortized cost per emitted value is O(1), worst case O(log n), with
// O(log n) stack space.
type Iterator[T any] struct {
	stack      []*Node[T]
	descending bool
}

// Ascend returns an iterator emitting n's values in ascending order.
func (n *Node[T]) Ascend() *Iterator[T] {
	return &Iterator[T]{stack: pending(n)}
}

// Descend returns an iterator emitting n's values in descending order,
// i.e. the exact reverse of Ascend.
func (n *Node[T]) Descend() *Iterator[T] {
	return &Iterator[T]{stack: pending(n), descending: true}
}

func pending[T any](n *Node[T]) []*Node[T] {
	stack := make([]*Node[T], 0, n.ht()+1)
	return append(stack, n)
}

// Next emits the next value in iteration order, or done=false when the
// tree is exhausted.
func (it *Iterator[T]) Next() (value T, ok bool) {
	for len(it.stack) > 0 {
		t := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]
		if t == nil {
			continue
		}
		near, far := t.left, t.right
		if it.descending {
			near, far = t.right, t.left
		}
		if near == nil { // t's value is next in order
			it.stack = append(it.stack, far)
			return t.value, true
		}
		it.stack = append(it.stack, far, leaf(t.value), near)
	}
	var none T
	return none, false
}

// Values collects all values of the tree in ascending order.
func (n *Node[T]) Values() []T {
	values := make([]T, 0, n.Len())
	for it := n.Ascend(); ; {
		v, ok := it.Next()
		if !ok {
			return values
		}
		values = append(values, v)
	}
}

package avl

// Index-ordered operations: a value's position is never stored but derived
// from the structure, as the size of the subtree to its left. This mode
// backs the list package.
//
// Positional arguments are preconditions here, not checked errors: the
// containers sitting on top validate indices once, at their boundary, so
// the engine does not check them again. The descent loops below simply rely
// on a valid index staying valid for the chosen subtree.

// At returns the value at position i, with 0 ≤ i < n.Len().
func (n *Node[T]) At(i int) T {
	for {
		switch l := n.left.Len(); {
		case i < l:
			n = n.left
		case i > l:
			i -= l + 1
			n = n.right
		default:
			return n.value
		}
	}
}

// WithInsertedAt returns a tree with value inserted at position i, shifting
// the values at positions i…n.Len()-1 one to the right. i may equal
// n.Len(), which appends.
func (n *Node[T]) WithInsertedAt(i int, value T) *Node[T] {
	if n == nil {
		return leaf(value)
	}
	if l := n.left.Len(); i <= l {
		return rebalanced(branch(n.value, n.left.WithInsertedAt(i, value), n.right))
	} else {
		return rebalanced(branch(n.value, n.left, n.right.WithInsertedAt(i-l-1, value)))
	}
}

// WithReplacedAt returns a tree with the value at position i replaced by
// value. The tree's shape is unchanged, so no rebalancing happens; only the
// path from the root to position i is rebuilt.
func (n *Node[T]) WithReplacedAt(i int, value T) *Node[T] {
	switch l := n.left.Len(); {
	case i < l:
		return branch(n.value, n.left.WithReplacedAt(i, value), n.right)
	case i > l:
		return branch(n.value, n.left, n.right.WithReplacedAt(i-l-1, value))
	}
	return branch(value, n.left, n.right)
}

// WithDeletedAt returns a tree with the value at position i removed,
// together with that value. Structurally this is the positional twin of
// WithDeleted, using index arithmetic instead of a comparator.
func (n *Node[T]) WithDeletedAt(i int) (*Node[T], T) {
	switch l := n.left.Len(); {
	case i < l:
		left, removed := n.left.WithDeletedAt(i)
		return rebalanced(branch(n.value, left, n.right)), removed
	case i > l:
		right, removed := n.right.WithDeletedAt(i - l - 1)
		return rebalanced(branch(n.value, n.left, right)), removed
	}
	tracer().Debugf("deleting position %d at %s", i, n)
	return n.withoutRoot(), n.value
}

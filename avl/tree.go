package avl

// Comparator-ordered operations: a value's position is determined by a
// three-way comparison of values. This mode backs the dict package.

// Find locates probe in a comparator-ordered tree, if present, and returns
// the stored value comparing equal to it. If no such value is present, the
// zero value for type T will be returned, together with found=false.
func (n *Node[T]) Find(probe T, cmp Comparator[T]) (T, bool) {
	for n != nil {
		switch c := cmp(probe, n.value); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.value, true
		}
	}
	var none T
	return none, false
}

// With returns a tree with value inserted at its comparator position. If a
// value comparing equal is already present, it will be replaced (in a new
// incarnation of the tree, nevertheless). O(log n) nodes are created; all
// untouched subtrees are shared with n.
func (n *Node[T]) With(value T, cmp Comparator[T]) *Node[T] {
	if n == nil {
		return leaf(value)
	}
	switch c := cmp(value, n.value); {
	case c < 0:
		return rebalanced(branch(n.value, n.left.With(value, cmp), n.right))
	case c > 0:
		return rebalanced(branch(n.value, n.left, n.right.With(value, cmp)))
	}
	return branch(value, n.left, n.right) // replace in place, shape unchanged
}

// WithDeleted returns a tree with the value comparing equal to probe
// removed, together with the removed value. If no such value is present,
// the original n is returned unchanged, without any allocation.
func (n *Node[T]) WithDeleted(probe T, cmp Comparator[T]) (*Node[T], T, bool) {
	if n == nil {
		var none T
		return nil, none, false
	}
	switch c := cmp(probe, n.value); {
	case c < 0:
		left, removed, found := n.left.WithDeleted(probe, cmp)
		if !found {
			return n, removed, false
		}
		return rebalanced(branch(n.value, left, n.right)), removed, true
	case c > 0:
		right, removed, found := n.right.WithDeleted(probe, cmp)
		if !found {
			return n, removed, false
		}
		return rebalanced(branch(n.value, n.left, right)), removed, true
	}
	tracer().Debugf("deleting value at %s", n)
	return n.withoutRoot(), n.value, true
}

// withoutRoot splices the root value out of a non-empty subtree. With one
// empty child the other child takes over directly. With two children a
// replacement value is pulled up from the larger subtree, so that repeated
// removals do not skew the tree towards one side.
func (n *Node[T]) withoutRoot() *Node[T] {
	switch {
	case n.left == nil:
		return n.right
	case n.right == nil:
		return n.left
	case n.left.size < n.right.size:
		succ, right := n.right.withoutMin()
		return rebalanced(branch(succ, n.left, right))
	default:
		pred, left := n.left.withoutMax()
		return rebalanced(branch(pred, left, n.right))
	}
}

// withoutMin cuts the leftmost value out of a non-empty subtree.
func (n *Node[T]) withoutMin() (T, *Node[T]) {
	if n.left == nil {
		return n.value, n.right
	}
	m, left := n.left.withoutMin()
	return m, rebalanced(branch(n.value, left, n.right))
}

// withoutMax cuts the rightmost value out of a non-empty subtree.
func (n *Node[T]) withoutMax() (T, *Node[T]) {
	if n.right == nil {
		return n.value, n.left
	}
	m, right := n.right.withoutMax()
	return m, rebalanced(branch(n.value, n.left, right))
}

// Min returns the smallest value of a tree, together with found=false for
// an empty tree.
func (n *Node[T]) Min() (T, bool) {
	if n == nil {
		var none T
		return none, false
	}
	for n.left != nil {
		n = n.left
	}
	return n.value, true
}

// Max returns the largest value of a tree, together with found=false for
// an empty tree.
func (n *Node[T]) Max() (T, bool) {
	if n == nil {
		var none T
		return none, false
	}
	for n.right != nil {
		n = n.right
	}
	return n.value, true
}

// WithoutMin returns a tree with its smallest value removed, together with
// that value. For an empty tree it returns n unchanged and found=false.
func (n *Node[T]) WithoutMin() (*Node[T], T, bool) {
	if n == nil {
		var none T
		return nil, none, false
	}
	m, rest := n.withoutMin()
	return rest, m, true
}

// WithoutMax returns a tree with its largest value removed, together with
// that value. For an empty tree it returns n unchanged and found=false.
func (n *Node[T]) WithoutMax() (*Node[T], T, bool) {
	if n == nil {
		var none T
		return nil, none, false
	}
	m, rest := n.withoutMax()
	return rest, m, true
}

// Merge combines two comparator-ordered trees into one. The smaller tree is
// folded into the larger one value by value, always extracting its current
// minimum; values already present in the larger tree are replaced. The loop
// is deliberately iterative, keeping stack depth logarithmic regardless of
// the sizes involved.
//
// The amortized cost per moved value is believed to be logarithmic in the
// size of the result; treat that as a performance target, not a contract.
func Merge[T any](a, b *Node[T], cmp Comparator[T]) *Node[T] {
	if a.Len() < b.Len() {
		a, b = b, a
	}
	tracer().Debugf("merging tree of %d values into tree of %d", b.Len(), a.Len())
	for b != nil {
		var v T
		v, b = b.withoutMin()
		a = a.With(v, cmp)
	}
	return a
}

package avl

/*
Re-balancing happens on the return path of an insertion or removal: every
ancestor of the touched position is rebuilt bottom-up (with fresh size and
height caches) and handed to rebalanced. Since the rebuilt ancestor is a
fresh node anyway, rotations simply construct their result from the pieces;
the subtrees hanging off the two or three nodes involved are shared, never
copied.

A single insert or remove changes any subtree height by at most one, so the
balance factor of a rebuilt node can never leave {-2 … 2}. Anything outside
that range means the engine itself is defective; we abort loudly instead of
attempting a repair.
*/

// rebalanced checks the balance invariant for a freshly rebuilt node and
// restores it with one of the four rotation cases if it is violated.
func rebalanced[T any](n *Node[T]) *Node[T] {
	b := n.bal()
	assertThat(b >= -2 && b <= 2, "balance factor out of range: %d at %s", b, n)
	switch {
	case b == 2:
		if n.left.bal() < 0 { // left-right: rotate the left child out first
			tracer().Debugf("double rotation left-right at %s", n)
			return rotateRight(branch(n.value, rotateLeft(n.left), n.right))
		}
		tracer().Debugf("single rotation right at %s", n)
		return rotateRight(n)
	case b == -2:
		if n.right.bal() > 0 { // right-left, mirror image
			tracer().Debugf("double rotation right-left at %s", n)
			return rotateLeft(branch(n.value, n.left, rotateRight(n.right)))
		}
		tracer().Debugf("single rotation left at %s", n)
		return rotateLeft(n)
	}
	return n
}

// rotateRight lifts n's left child into n's position. n.left.right changes
// sides, all other subtrees stay where they are.
func rotateRight[T any](n *Node[T]) *Node[T] {
	l := n.left
	return branch(l.value, l.left, branch(n.value, l.right, n.right))
}

// rotateLeft is the mirror image of rotateRight.
func rotateLeft[T any](n *Node[T]) *Node[T] {
	r := n.right
	return branch(r.value, branch(n.value, n.left, r.left), r.right)
}

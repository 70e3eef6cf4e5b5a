package avl

import "fmt"

/*
Remarks:
--------

- The nil pointer is the canonical empty tree. Every accessor on Node is
  total for nil receivers, so the two node cases (empty, branch) never need
  a separate sentinel type.

- A node caches the size and the height of its subtree. Both are set once,
  when the node is constructed, and never change afterwards.

- A new modified incarnation of a tree always is reflected by a new root
  node; the inputs of every operation stay untouched.
*/

// Node is a node of an immutable height-balanced binary tree. A nil *Node
// is the empty tree and is a legal receiver for every method, i.e. this
// works:
//
//	var tree *avl.Node[int]
//	tree = tree.WithInsertedAt(0, 42)
//
// returning a single-node tree holding 42 at position 0.
type Node[T any] struct {
	value       T
	left, right *Node[T]
	size        int
	height      int
}

// Comparator is a three-way comparison, returning <0, 0 or >0 for a<b, a=b
// and a>b respectively. Comparators are assumed to be pure and stable for
// as long as a value is held by a tree.
type Comparator[T any] func(a, b T) int

// branch constructs a node over two (possibly empty) subtrees, caching
// subtree size and height.
func branch[T any](value T, left, right *Node[T]) *Node[T] {
	return &Node[T]{
		value:  value,
		left:   left,
		right:  right,
		size:   left.Len() + right.Len() + 1,
		height: max(left.ht(), right.ht()) + 1,
	}
}

// leaf constructs a childless node.
func leaf[T any](value T) *Node[T] {
	return &Node[T]{value: value, size: 1, height: 1}
}

// Len returns the number of values in the subtree under n. It is read from
// the root node's cache, i.e. O(1).
func (n *Node[T]) Len() int {
	if n == nil {
		return 0
	}
	return n.size
}

func (n *Node[T]) ht() int {
	if n == nil {
		return 0
	}
	return n.height
}

// bal is the balance factor of a non-empty node: positive means
// left-heavy, negative right-heavy.
func (n *Node[T]) bal() int {
	return n.left.ht() - n.right.ht()
}

func (n *Node[T]) String() string {
	if n == nil {
		return "∅"
	}
	return fmt.Sprintf("⟨%v #%d h%d⟩", n.value, n.size, n.height)
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("avl: "+msg, msgargs...)
		panic(msg)
	}
}

package avl

import (
	"fmt"
	"testing"

	tp "github.com/xlab/treeprint"
)

// test helpers, shared by the _test files of this package

// checkInvariants walks a tree and verifies the balance invariant and the
// size/height caches at every node.
func checkInvariants[T any](n *Node[T]) error {
	if n == nil {
		return nil
	}
	if b := n.bal(); b < -1 || b > 1 {
		return fmt.Errorf("balance factor at %s out of {-1,0,1}: %d", n, b)
	}
	if n.size != n.left.Len()+n.right.Len()+1 {
		return fmt.Errorf("size cache at %s is wrong", n)
	}
	if n.height != max(n.left.ht(), n.right.ht())+1 {
		return fmt.Errorf("height cache at %s is wrong", n)
	}
	if err := checkInvariants(n.left); err != nil {
		return err
	}
	return checkInvariants(n.right)
}

// intCmp is the default integer comparator for tests.
func intCmp(a, b int) int {
	return a - b
}

// intTree inserts keys into an empty comparator-ordered tree, one by one.
func intTree(keys ...int) *Node[int] {
	var tree *Node[int]
	for _, key := range keys {
		tree = tree.With(key, intCmp)
	}
	return tree
}

func expectValues[T comparable](t *testing.T, tree *Node[T], want []T) {
	t.Helper()
	got := tree.Values()
	if len(got) != len(want) {
		t.Logf("tree =\n%s", printTree(tree))
		t.Fatalf("expected tree to enumerate %v, does %v", want, got)
	}
	for i, v := range want {
		if got[i] != v {
			t.Logf("tree =\n%s", printTree(tree))
			t.Fatalf("expected tree to enumerate %v, does %v", want, got)
		}
	}
}

// --- Print tree ------------------------------------------------------------

func printTree[T any](tree *Node[T]) string {
	header := fmt.Sprintf("\nTree(len=%d, height=%d)\n", tree.Len(), tree.ht())
	printer := tp.New()
	printNode(printer, tree)
	return header + printer.String() + "\n"
}

func printNode[T any](printer tp.Tree, node *Node[T]) {
	if node == nil {
		printer.AddNode("∅")
		return
	}
	if node.left == nil && node.right == nil {
		printer.AddNode(node.String())
		return
	}
	branch := printer.AddBranch(node.String())
	printNode(branch, node.left)
	printNode(branch, node.right)
}

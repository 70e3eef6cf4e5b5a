package avl

// FromSlice builds a balanced tree directly from values in O(n): the median
// of a range becomes the node's value, both halves are built recursively.
// This is the preferred way of constructing a tree from existing data,
// instead of n single-value inserts costing O(n log n) in total.
//
// For comparator-ordered use the input must already be sorted by the
// intended comparator; for index-ordered use any input is fine, values
// simply keep their slice positions.
func FromSlice[T any](values []T) *Node[T] {
	if len(values) == 0 {
		return nil
	}
	half := len(values) / 2
	return branch(values[half], FromSlice(values[:half]), FromSlice(values[half+1:]))
}

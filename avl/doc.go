/*
Package avl implements a persistent (immutable) height-balanced binary tree.
It is the shared engine behind the sorted-dictionary and the tree-backed
sequence of this module.

The same node shape and the same rebalancing serve two ordering disciplines:

▪︎ comparator-ordered: a node's position is determined by a three-way
comparison function supplied by the caller (With, Find, WithDeleted).

▪︎ index-ordered: a node's position is determined purely structurally, by
the size of the subtree to its left (WithInsertedAt, At, WithDeletedAt).
No key is stored for this mode.

Every “modification” of a tree has copy-on-write behaviour: it rebuilds the
nodes on the path from the root to the touched position and leaves all other
subtrees shared between the old and the new incarnation. A tree version,
once returned, is never changed again, which makes concurrent reads of any
number of versions safe without locking.

Clients normally do not use this package directly, but through the container
packages dict, list, array, stack and queue.

Callers of the index-ordered operations are expected to validate positional
arguments before calling into the engine; the container packages do this at
their API boundary. The engine itself only guards its internal invariants.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package avl

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persist.avl'.
func tracer() tracing.Trace {
	return tracing.Select("persist.avl")
}

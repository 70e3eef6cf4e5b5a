/*
Package persist offers a selection of immutable persistent data structures.

Immutable persistent data structures are data structures which can be
copied and modified efficiently, leaving the original unchanged. Functional
programming languages like Lisp have long relied on using them.

Immutable data structures in many cases offer benefits over mutable data
structures in terms of concurrent access and functional reasoning.
*Persistent* immutable data-structures offer structural sharing, which
means that if two data structures are mostly copies of each other, most of
the memory they take up will be shared between them. This implies that
making copies of an immutable data structure is relatively cheap in terms
of space- and time-complexity.

The containers of this module:

▪︎ dict — a sorted dictionary, ordered by a client-supplied comparator.

▪︎ list — an indexable sequence with O(log n) positional updates.

▪︎ array — an indexable sequence with O(1) reads and O(n) updates,
interchangeable with list behind the same contract.

▪︎ stack — a LIFO stack of shared cells.

▪︎ queue — a FIFO queue built from two stacks.

dict and list are both backed by the avl package, a persistent
height-balanced binary tree with a comparator-ordered and an index-ordered
discipline over one shared rebalancing core.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package persist

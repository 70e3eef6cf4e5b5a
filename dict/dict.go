package dict

import (
	"sort"

	"github.com/npillmayer/persist/avl"
)

// Dict is an immutable sorted dictionary, ordered by a key comparator
// supplied at creation time. Each “modification” returns a new incarnation
// of the dictionary, sharing most of its memory with the original.
//
// The zero value of Dict carries no comparator and therefore cannot be
// written to; use Immutable or FromPairs.
type Dict[K, V any] struct {
	root *avl.Node[Pair[K, V]]
	cmp  func(a, b K) int
}

// Pair is a single key/value entry of a dictionary.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Immutable constructs an empty dictionary ordered by cmp. Use it like
// this:
//
//	d := dict.Immutable[int, string](func(a, b int) int { return a - b })
//	d = d.With(42, "Galaxy")
//	value, found := d.Find(42)   // returns "Galaxy"
func Immutable[K, V any](cmp func(a, b K) int) Dict[K, V] {
	assertThat(cmp != nil, "dictionary needs a comparator")
	return Dict[K, V]{cmp: cmp}
}

// FromPairs constructs a dictionary from existing entries in O(n log n):
// the entries are sorted and then bulk-loaded into a balanced tree in one
// pass, instead of inserting them one by one. A key occurring more than
// once keeps its last value.
func FromPairs[K, V any](cmp func(a, b K) int, pairs []Pair[K, V]) Dict[K, V] {
	d := Immutable[K, V](cmp)
	if len(pairs) == 0 {
		return d
	}
	sorted := make([]Pair[K, V], len(pairs))
	copy(sorted, pairs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return cmp(sorted[i].Key, sorted[j].Key) < 0
	})
	unique := sorted[:0]
	for _, p := range sorted {
		if len(unique) > 0 && cmp(unique[len(unique)-1].Key, p.Key) == 0 {
			unique[len(unique)-1] = p // later entry wins
			continue
		}
		unique = append(unique, p)
	}
	d.root = avl.FromSlice(unique)
	return d
}

// --- API -------------------------------------------------------------------

// Len returns the number of entries, read O(1) from the root node.
func (d Dict[K, V]) Len() int {
	return d.root.Len()
}

// Find locates a key in a dictionary, if present, and returns the value
// associated with the key. If key is not found, the zero value for type V
// will be returned, together with found=false.
func (d Dict[K, V]) Find(key K) (V, bool) {
	p, found := d.root.Find(Pair[K, V]{Key: key}, d.pairCmp())
	return p.Value, found
}

// Get returns the value associated with key and panics if the key is
// absent. Use Find when absence is an expected case.
func (d Dict[K, V]) Get(key K) V {
	v, found := d.Find(key)
	assertThat(found, "key not found: %v", key)
	return v
}

// Contains tells if key has an entry in the dictionary.
func (d Dict[K, V]) Contains(key K) bool {
	_, found := d.Find(key)
	return found
}

// With returns a dictionary with an entry for key added, which is
// associated with value. If an entry for key is already present, the
// associated value will be replaced (in a new incarnation of the
// dictionary, nevertheless). The receiver is never altered.
func (d Dict[K, V]) With(key K, value V) Dict[K, V] {
	assertThat(d.cmp != nil, "dictionary created without a comparator")
	tracer().Debugf("dict.With: key = %v", key)
	root := d.root.With(Pair[K, V]{Key: key, Value: value}, d.pairCmp())
	return Dict[K, V]{root: root, cmp: d.cmp}
}

// WithDeleted returns a dictionary with the entry for key deleted, if
// present, together with its associated value. If key is not found, the
// dictionary is returned unchanged and found=false.
func (d Dict[K, V]) WithDeleted(key K) (Dict[K, V], V, bool) {
	if d.root == nil {
		var none V
		return d, none, false
	}
	root, p, found := d.root.WithDeleted(Pair[K, V]{Key: key}, d.pairCmp())
	if !found {
		return d, p.Value, false
	}
	tracer().Debugf("dict.WithDeleted: removed key = %v", key)
	return Dict[K, V]{root: root, cmp: d.cmp}, p.Value, true
}

// Merge combines two dictionaries, which must be ordered by the same
// comparator. The smaller dictionary is folded into the larger one, so for
// keys present in both, the entry of the smaller dictionary survives.
func (d Dict[K, V]) Merge(other Dict[K, V]) Dict[K, V] {
	assertThat(d.cmp != nil || other.cmp != nil, "dictionary created without a comparator")
	cmp := d.cmp
	if cmp == nil {
		cmp = other.cmp
	}
	merged := Dict[K, V]{cmp: cmp}
	merged.root = avl.Merge(d.root, other.root, merged.pairCmp())
	return merged
}

// Min returns the entry with the smallest key, together with found=false
// for an empty dictionary.
func (d Dict[K, V]) Min() (Pair[K, V], bool) {
	return d.root.Min()
}

// Max returns the entry with the largest key, together with found=false
// for an empty dictionary.
func (d Dict[K, V]) Max() (Pair[K, V], bool) {
	return d.root.Max()
}

// Keys returns all keys in ascending comparator order.
func (d Dict[K, V]) Keys() []K {
	keys := make([]K, 0, d.Len())
	d.Each(func(key K, _ V) {
		keys = append(keys, key)
	})
	return keys
}

// Values returns all values, ordered by ascending key.
func (d Dict[K, V]) Values() []V {
	values := make([]V, 0, d.Len())
	d.Each(func(_ K, value V) {
		values = append(values, value)
	})
	return values
}

// Each calls f for every entry, in ascending key order.
func (d Dict[K, V]) Each(f func(key K, value V)) {
	for it := d.Ascend(); ; {
		p, ok := it.Next()
		if !ok {
			return
		}
		f(p.Key, p.Value)
	}
}

// Ascend returns an iterator over the entries in ascending key order. The
// iterator observes the incarnation it was created against, regardless of
// dictionaries derived later.
func (d Dict[K, V]) Ascend() *avl.Iterator[Pair[K, V]] {
	return d.root.Ascend()
}

// Descend returns an iterator over the entries in descending key order.
func (d Dict[K, V]) Descend() *avl.Iterator[Pair[K, V]] {
	return d.root.Descend()
}

// pairCmp lifts the key comparator to entries.
func (d Dict[K, V]) pairCmp() avl.Comparator[Pair[K, V]] {
	cmp := d.cmp
	return func(a, b Pair[K, V]) int {
		return cmp(a.Key, b.Key)
	}
}

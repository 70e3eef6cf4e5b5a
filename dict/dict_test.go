package dict

import (
	"sort"
	"strconv"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func intCmp(a, b int) int {
	return a - b
}

func TestDictCreateEmpty(t *testing.T) {
	d := Immutable[int, string](intCmp)
	if d.Len() != 0 {
		t.Errorf("expected empty dictionary to have length 0, has %d", d.Len())
	}
	if _, found := d.Find(7); found {
		t.Error("did not expect to find 7 in empty dictionary")
	}
}

func TestDictWithAndFind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.dict")
	defer teardown()
	//
	d := Immutable[int, string](intCmp)
	d = d.With(42, "Galaxy")
	v, found := d.Find(42)
	if !found || v != "Galaxy" {
		t.Errorf("expected to find 'Galaxy' for 42, found %q (%v)", v, found)
	}
	d2 := d.With(42, "Universe")
	if v, _ := d2.Find(42); v != "Universe" {
		t.Errorf("expected replacement to hold 'Universe', holds %q", v)
	}
	if v, _ := d.Find(42); v != "Galaxy" {
		t.Errorf("expected original to still hold 'Galaxy', holds %q", v)
	}
	if d2.Len() != 1 {
		t.Errorf("expected replacement to keep length 1, has %d", d2.Len())
	}
}

func TestDictGetPanicsOnMiss(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.dict")
	defer teardown()
	//
	d := Immutable[string, int](func(a, b string) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	})
	d = d.With("one", 1)
	assert.Panics(t, func() { d.Get("two") }, "expected Get on absent key to panic")
	assert.Equal(t, 1, d.Get("one"))
}

func TestDictWithDeleted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.dict")
	defer teardown()
	//
	d := Immutable[int, string](intCmp).With(5, "5").With(3, "3").With(8, "8")
	d2, v, found := d.WithDeleted(3)
	if !found || v != "3" {
		t.Errorf("expected to delete value '3', deleted %q (%v)", v, found)
	}
	if d2.Len() != 2 || d.Len() != 3 {
		t.Errorf("expected lengths 2 and 3, have %d and %d", d2.Len(), d.Len())
	}
	if _, _, found := d2.WithDeleted(3); found {
		t.Error("did not expect to delete 3 twice")
	}
}

func TestDictEnumerationOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.dict")
	defer teardown()
	//
	d := Immutable[int, string](intCmp)
	for _, key := range []int{5, 3, 8, 1, 4} {
		d = d.With(key, strconv.Itoa(key))
	}
	assert.Equal(t, []int{1, 3, 4, 5, 8}, d.Keys())
	assert.Equal(t, []string{"1", "3", "4", "5", "8"}, d.Values())
	var down []int
	for it := d.Descend(); ; {
		p, ok := it.Next()
		if !ok {
			break
		}
		down = append(down, p.Key)
	}
	assert.Equal(t, []int{8, 5, 4, 3, 1}, down)
}

func TestDictMinMax(t *testing.T) {
	d := Immutable[int, string](intCmp).With(5, "5").With(3, "3").With(8, "8")
	if p, found := d.Min(); !found || p.Key != 3 {
		t.Errorf("expected minimum key 3, is %v", p.Key)
	}
	if p, found := d.Max(); !found || p.Key != 8 {
		t.Errorf("expected maximum key 8, is %v", p.Key)
	}
}

func TestDictFromPairs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.dict")
	defer teardown()
	//
	pairs := []Pair[int, string]{
		{9, "nine"}, {1, "one"}, {4, "four"}, {1, "uno"}, {7, "seven"},
	}
	d := FromPairs(intCmp, pairs)
	if d.Len() != 4 {
		t.Errorf("expected 4 unique keys, have %d", d.Len())
	}
	if v, _ := d.Find(1); v != "uno" {
		t.Errorf("expected later entry to win for key 1, holds %q", v)
	}
	assert.Equal(t, []int{1, 4, 7, 9}, d.Keys())
}

func TestDictMerge(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.dict")
	defer teardown()
	//
	a := Immutable[int, string](intCmp).With(1, "1").With(3, "3").With(5, "5")
	b := Immutable[int, string](intCmp).With(2, "2").With(4, "4")
	m := a.Merge(b)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, m.Keys())
	assert.Equal(t, []int{1, 3, 5}, a.Keys()) // inputs untouched
	assert.Equal(t, []int{2, 4}, b.Keys())
}

func TestDictLargeRandomish(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.dict")
	defer teardown()
	//
	d := Immutable[int, int](intCmp)
	for i := 0; i < 1000; i++ {
		d = d.With((i*7919)%1000, i) // 7919 is coprime to 1000, keys are a permutation
	}
	if d.Len() != 1000 {
		t.Fatalf("expected 1000 entries, have %d", d.Len())
	}
	keys := d.Keys()
	if !sort.IntsAreSorted(keys) {
		t.Error("expected keys to enumerate in ascending order, don't")
	}
}

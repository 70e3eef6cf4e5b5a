package list

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestListEmpty(t *testing.T) {
	l := List[int]{}
	if l.Len() != 0 {
		t.Errorf("expected empty list to have length 0, has %d", l.Len())
	}
	if _, found := l.First(); found {
		t.Error("did not expect empty list to have a first value")
	}
}

func TestListInsertScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.list")
	defer teardown()
	//
	l := List[string]{}
	l = l.Insert(0, "a")
	l = l.Insert(1, "b")
	l = l.Insert(1, "c")
	assert.Equal(t, []string{"a", "c", "b"}, l.Slice())
	if v := l.Get(1); v != "c" {
		t.Errorf("expected value at position 1 to be 'c', is %q", v)
	}
}

func TestListNonDestructive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.list")
	defer teardown()
	//
	base := FromSlice([]int{1, 2, 3})
	set := base.Set(1, 42)
	ins := base.Insert(3, 4)
	rem, removed := base.Remove(0)
	assert.Equal(t, []int{1, 2, 3}, base.Slice())
	assert.Equal(t, []int{1, 42, 3}, set.Slice())
	assert.Equal(t, []int{1, 2, 3, 4}, ins.Slice())
	assert.Equal(t, []int{2, 3}, rem.Slice())
	assert.Equal(t, 1, removed)
}

func TestListBoundsPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.list")
	defer teardown()
	//
	l := FromSlice([]int{1, 2, 3})
	assert.Panics(t, func() { l.Get(-1) })
	assert.Panics(t, func() { l.Get(3) })
	assert.Panics(t, func() { l.Set(3, 0) })
	assert.Panics(t, func() { l.Insert(4, 0) })
	assert.Panics(t, func() { l.Remove(3) })
	assert.NotPanics(t, func() { l.Insert(3, 0) }) // appending is legal
	assert.Panics(t, func() { List[int]{}.Pop() })
}

func TestListPushPop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.list")
	defer teardown()
	//
	l := List[int]{}
	for i := 0; i < 100; i++ {
		l = l.Push(i)
	}
	if l.Len() != 100 {
		t.Fatalf("expected 100 values, have %d", l.Len())
	}
	if last, _ := l.Last(); last != 99 {
		t.Errorf("expected last value 99, is %d", last)
	}
	l = l.Pop()
	if last, _ := l.Last(); last != 98 {
		t.Errorf("expected last value 98 after Pop, is %d", last)
	}
}

func TestListIndexOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.list")
	defer teardown()
	//
	l := FromSlice([]string{"a", "b", "c", "b"},
		Equality(func(a, b string) bool { return a == b }))
	if i := l.IndexOf("b"); i != 1 {
		t.Errorf("expected first 'b' at position 1, is %d", i)
	}
	if i := l.IndexOf("z"); i != -1 {
		t.Errorf("expected 'z' to be absent, found at %d", i)
	}
	if !l.Contains("c") {
		t.Error("expected list to contain 'c', doesn't")
	}
	bare := FromSlice([]string{"a"})
	assert.Panics(t, func() { bare.IndexOf("a") }, "expected IndexOf without equality function to panic")
}

func TestListEnumerationOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.list")
	defer teardown()
	//
	l := FromSlice([]int{10, 20, 30, 40})
	var down []int
	for it := l.Descend(); ; {
		v, ok := it.Next()
		if !ok {
			break
		}
		down = append(down, v)
	}
	assert.Equal(t, []int{40, 30, 20, 10}, down)
}

func TestListFromSliceMatchesInserts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.list")
	defer teardown()
	//
	values := make([]int, 1000)
	for i := range values {
		values[i] = i * 3
	}
	bulk := FromSlice(values)
	if bulk.Len() != 1000 {
		t.Fatalf("expected 1000 values, have %d", bulk.Len())
	}
	for _, i := range []int{0, 1, 499, 998, 999} {
		if v := bulk.Get(i); v != i*3 {
			t.Errorf("expected value %d at position %d, is %d", i*3, i, v)
		}
	}
}

package maparray

import (
	"slices"
	"testing"
)

func TestAll_ordered(t *testing.T) {
	a := Of("a", "b", "c")
	var keys []int
	var values []string
	for i, v := range a.All() {
		keys = append(keys, i)
		values = append(values, v)
	}
	if !slices.Equal(keys, []int{0, 1, 2}) {
		t.Fatalf("** keys = %v, wanted [0 1 2]", keys)
	}
	if !slices.Equal(values, []string{"a", "b", "c"}) {
		t.Fatalf("** values = %v", values)
	}
}

func TestAll_early_break(t *testing.T) {
	a := Of(1, 2, 3, 4)
	var n int
	for _, v := range a.All() {
		n++
		if v == 2 {
			break
		}
	}
	eq(t, n, 2)
}

func TestValues_restartable(t *testing.T) {
	a := Of(1, 2, 3)
	seq := a.Values()
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Fatalf("** restarted sequence differs: %v vs %v", first, second)
	}
	if !slices.Equal(first, []int{1, 2, 3}) {
		t.Fatalf("** values = %v", first)
	}
}

func TestCollect(t *testing.T) {
	a := Of(1, 2, 3)
	b := Collect(a.Values())
	if !slices.Equal(b.Slice(), a.Slice()) {
		t.Fatalf("** Collect round trip = %v, wanted %v", b.Slice(), a.Slice())
	}

	empty := Collect(slices.Values([]int(nil)))
	eq(t, empty.Len(), 0)
}

func TestContains(t *testing.T) {
	a := Of(1, 2, 3)
	eq(t, Contains(a, 2), true)
	eq(t, Contains(a, 7), false)
	eq(t, Contains(Array[int]{}, 1), false)
}

func TestContainsEntry(t *testing.T) {
	a := Of("a", "b", "c")
	eq(t, ContainsEntry(a, 1, "b"), true)
	eq(t, ContainsEntry(a, "1", "b"), true)
	eq(t, ContainsEntry(a, -1, "c"), true)
	eq(t, ContainsEntry(a, 1, "c"), false)
	eq(t, ContainsEntry(a, 9, "b"), false)
}

package maparray

import "testing"

func TestGet(t *testing.T) {
	a := Of(10, 20, 30)

	v, ok := a.Get(0)
	eq(t, ok, true)
	eq(t, v, 10)

	v, ok = a.Get(2)
	eq(t, ok, true)
	eq(t, v, 30)

	v, ok = a.Get(-1)
	eq(t, ok, true)
	eq(t, v, 30)

	eq(t, a.MustGet(-1), a.MustGet(a.Len()-1))
}

func TestGet_not_found(t *testing.T) {
	a := Of(10, 20, 30)
	for _, ix := range []any{3, 100, -4, "3", "-4", Token("99"), "nope", ""} {
		if _, ok := a.Get(ix); ok {
			t.Fatalf("** Get(%v) reported ok, wanted not found", ix)
		}
	}
}

func TestGet_empty(t *testing.T) {
	var a Array[string]
	if _, ok := a.Get(-1); ok {
		t.Fatalf("** Get(-1) on empty array reported ok")
	}
}

func TestMustGet_panics(t *testing.T) {
	a := Of(10, 20, 30)
	panics(t, ErrNotFound, func() {
		a.MustGet(3)
	})
	panics(t, ErrNotFound, func() {
		a.MustGet(-4)
	})
	panics(t, ErrNotInteger, func() {
		a.MustGet("1.5")
	})
}

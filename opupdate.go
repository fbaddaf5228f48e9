package maparray

// UpdateFunc decides what happens to the element at an index. It receives
// the current value, or the zero value with present == false when the index
// is not live.
type UpdateFunc[T any] func(old T, present bool) Effect[T]

// Effect is the outcome an UpdateFunc asks for: either a (report, store)
// pair built with Change, or the removal directive built with Drop.
type Effect[T any] struct {
	report T
	store  T
	drop   bool
}

// Change reports the first value to the caller and stores the second one.
func Change[T any](report, store T) Effect[T] {
	return Effect[T]{report: report, store: store}
}

// Drop removes the element; the caller is told the removed value.
func Drop[T any]() Effect[T] {
	return Effect[T]{drop: true}
}

// Update invokes f with the element at the given index and applies the
// effect it returns, yielding the reported value and the updated array.
//
// f runs even when the index is absent (or does not parse), so that uniform
// callback pipelines always get their turn, but in that case nothing is
// ever written: a Change effect only reports its first value, and a Drop
// effect reports nothing (ok == false). The receiver is returned unchanged.
func (a Array[T]) Update(ix any, f UpdateFunc[T]) (T, bool, Array[T]) {
	var zero T
	n, err := normIndex(ix, a.count)
	if err != nil {
		eff := f(zero, false)
		if eff.drop {
			return zero, false, a
		}
		return eff.report, true, a
	}
	old, ok := a.items[n]
	eff := f(old, ok)
	if !ok {
		if eff.drop {
			return zero, false, a
		}
		return eff.report, true, a
	}
	if eff.drop {
		v, _, b := a.removeAt(n)
		return v, true, b
	}
	items := a.cloneItems()
	items[n] = eff.store
	return eff.report, true, Array[T]{a.count, items}
}

// MustUpdate is the strict variant: it panics with an *IndexError before
// invoking f if the index does not resolve to a live element.
func (a Array[T]) MustUpdate(ix any, f UpdateFunc[T]) (T, Array[T]) {
	n := mustNormIndex(ix, a.count)
	if _, ok := a.items[n]; !ok {
		panic(indexErrf(ix, a.count, ErrNotFound, ""))
	}
	v, _, b := a.Update(n, f)
	return v, b
}

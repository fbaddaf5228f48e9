package maparray

// Get returns the element at the given index. A negative index counts from
// the end. Reports false when the index does not parse or does not resolve
// to a live element.
func (a Array[T]) Get(ix any) (T, bool) {
	n, err := normIndex(ix, a.count)
	if err != nil {
		var zero T
		return zero, false
	}
	v, ok := a.items[n]
	return v, ok
}

// MustGet is like Get but panics with an *IndexError instead of reporting
// false.
func (a Array[T]) MustGet(ix any) T {
	n := mustNormIndex(ix, a.count)
	v, ok := a.items[n]
	if !ok {
		panic(indexErrf(ix, a.count, ErrNotFound, ""))
	}
	return v
}

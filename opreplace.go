package maparray

// Replace stores v at the given index if and only if the index already
// resolves to a live element; the length never changes. Fails with
// ErrNotFound (or ErrNotInteger) otherwise, returning the receiver
// unchanged.
func (a Array[T]) Replace(ix any, v T) (Array[T], error) {
	n, err := normIndex(ix, a.count)
	if err != nil {
		return a, err
	}
	if _, ok := a.items[n]; !ok {
		return a, indexErrf(ix, a.count, ErrNotFound, "")
	}
	items := a.cloneItems()
	items[n] = v
	return Array[T]{a.count, items}, nil
}

// MustReplace is like Replace but panics with an *IndexError on failure.
func (a Array[T]) MustReplace(ix any, v T) Array[T] {
	return must(a.Replace(ix, v))
}

package maparray

// Insert places v at the given index, shifting the elements at and after it
// one slot right. The index is normalized against Len()+1, so -1 and Len()
// both name the append point. Fails with ErrNotInteger when the index does
// not parse, and with ErrOutOfRange when it normalizes to a negative
// position or to one past the append point; either way the receiver is
// returned unchanged.
func (a Array[T]) Insert(ix any, v T) (Array[T], error) {
	n, err := normIndex(ix, a.count+1)
	if err != nil {
		return a, err
	}
	if n < 0 || n > a.count {
		return a, indexErrf(ix, a.count, ErrOutOfRange, "")
	}
	items := a.cloneItems()
	// shift the suffix right starting from the high end, so that no value
	// is overwritten before it has been moved
	for i := a.count; i > n; i-- {
		items[i] = items[i-1]
	}
	items[n] = v
	return Array[T]{a.count + 1, items}, nil
}

// MustInsert is like Insert but panics with an *IndexError on failure.
func (a Array[T]) MustInsert(ix any, v T) Array[T] {
	return must(a.Insert(ix, v))
}

// Append adds v after the last element.
func (a Array[T]) Append(v T) Array[T] {
	return a.MustInsert(a.count, v)
}

// Prepend adds v before the first element.
func (a Array[T]) Prepend(v T) Array[T] {
	return a.MustInsert(0, v)
}

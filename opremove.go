package maparray

// Remove deletes the element at the given index and shifts the suffix left
// to close the gap. Returns the removed value and the shrunk array; when
// the index does not resolve, reports false and returns the receiver
// unchanged.
func (a Array[T]) Remove(ix any) (T, bool, Array[T]) {
	n, err := normIndex(ix, a.count)
	if err != nil {
		var zero T
		return zero, false, a
	}
	if _, ok := a.items[n]; !ok {
		var zero T
		return zero, false, a
	}
	return a.removeAt(n)
}

// Pop removes the last element.
func (a Array[T]) Pop() (T, bool, Array[T]) {
	return a.Remove(-1)
}

// removeAt requires n to be a live position.
func (a Array[T]) removeAt(n int) (T, bool, Array[T]) {
	items := a.cloneItems()
	v := items[n]
	for i := n + 1; i < a.count; i++ {
		items[i-1] = items[i]
	}
	delete(items, a.count-1)
	return v, true, Array[T]{a.count - 1, items}
}

package maparray

import "iter"

// All returns a restartable iterator over (position, value) pairs in
// ascending position order.
func (a Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.count; i++ {
			if !yield(i, a.items[i]) {
				return
			}
		}
	}
}

// Values returns a restartable iterator over values in position order.
func (a Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.count; i++ {
			if !yield(a.items[i]) {
				return
			}
		}
	}
}

// Collect builds an array from the values produced by seq, in order.
func Collect[T any](seq iter.Seq[T]) Array[T] {
	var values []T
	for v := range seq {
		values = append(values, v)
	}
	return FromSlice(values)
}

// Contains reports whether any element equals v.
func Contains[T comparable](a Array[T], v T) bool {
	for x := range a.Values() {
		if x == v {
			return true
		}
	}
	return false
}

// ContainsEntry reports whether the element at ix exists and equals v.
// ix takes any index form Get accepts, negative indices included.
func ContainsEntry[T comparable](a Array[T], ix any, v T) bool {
	x, ok := a.Get(ix)
	return ok && x == v
}

package maparray

import "maps"

// Array is a dense array stored as a map from position to value.
// The zero value is a valid empty array.
//
// Array is a value type: mutating operations return a new Array and never
// modify the receiver, so a published instance is safe to share.
type Array[T any] struct {
	count int
	items map[int]T
}

// New returns an empty array. Equivalent to the zero value.
func New[T any]() Array[T] {
	return Array[T]{}
}

// Of builds an array holding the given values in order.
func Of[T any](values ...T) Array[T] {
	return FromSlice(values)
}

// FromSlice builds an array holding the values of the slice in order.
// The slice is not retained.
func FromSlice[T any](values []T) Array[T] {
	if len(values) == 0 {
		return Array[T]{}
	}
	items := make(map[int]T, len(values))
	for i, v := range values {
		items[i] = v
	}
	return Array[T]{len(values), items}
}

// Len returns the number of elements.
func (a Array[T]) Len() int {
	return a.count
}

// Slice returns the values in position order. Returns nil for an empty
// array. The result does not alias the array's storage.
func (a Array[T]) Slice() []T {
	if a.count == 0 {
		return nil
	}
	values := make([]T, a.count)
	for i := range values {
		values[i] = a.items[i]
	}
	return values
}

// cloneItems returns a private copy of the backing map with room for one
// extra entry. Mutating operations work on such a copy and publish it only
// in the returned Array, which is what gives Array its value semantics.
func (a Array[T]) cloneItems() map[int]T {
	items := make(map[int]T, a.count+1)
	maps.Copy(items, a.items)
	return items
}

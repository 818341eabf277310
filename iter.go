package jvalue

import "iter"

// Elements returns an iterator over the elements of an Array. The yielded
// pointers refer to the array's storage, so elements may be modified in place.
// The array itself must not grow or shrink during iteration.
func (v *Value) Elements() (iter.Seq2[int, *Value], error) {
	if v.kind != Array {
		return nil, newTypeError("elements", Array, v.kind)
	}
	arr := v.arr
	return func(yield func(int, *Value) bool) {
		for i := range arr {
			if !yield(i, &arr[i]) {
				return
			}
		}
	}, nil
}

// Values returns a read-only iterator over copies of the elements of an Array
func (v Value) Values() (iter.Seq[Value], error) {
	if v.kind != Array {
		return nil, newTypeError("values", Array, v.kind)
	}
	arr := v.arr
	return func(yield func(Value) bool) {
		for i := range arr {
			if !yield(arr[i].Clone()) {
				return
			}
		}
	}, nil
}

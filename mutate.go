package jvalue

import "slices"

// PushBack appends x to an Array. x is converted with Of.
func (v *Value) PushBack(x any) error {
	if v.kind != Array {
		return newTypeError("push_back", Array, v.kind)
	}
	item, err := Of(x)
	if err != nil {
		return err
	}
	v.arr = append(v.arr, item)
	return nil
}

// Append is an alias of PushBack
func (v *Value) Append(x any) error {
	return v.PushBack(x)
}

// Insert places x before position i of an Array; i may equal Size to append
func (v *Value) Insert(i int, x any) error {
	if v.kind != Array {
		return newTypeError("insert", Array, v.kind)
	}
	if i < 0 || i > len(v.arr) {
		return newIndexError("insert", i, len(v.arr)+1)
	}
	item, err := Of(x)
	if err != nil {
		return err
	}
	v.arr = slices.Insert(v.arr, i, item)
	return nil
}

// Erase removes the element at position i of an Array
func (v *Value) Erase(i int) error {
	if v.kind != Array {
		return newTypeError("erase", Array, v.kind)
	}
	if i < 0 || i >= len(v.arr) {
		return newIndexError("erase", i, len(v.arr))
	}
	v.arr = slices.Delete(v.arr, i, i+1)
	return nil
}

// EraseKey removes the first member of an Object with the given key and
// reports whether one was removed
func (v *Value) EraseKey(key string) (bool, error) {
	if v.kind != Object {
		return false, newTypeError("erase_by_key", Object, v.kind)
	}
	i := v.find(key)
	if i < 0 {
		return false, nil
	}
	v.obj = slices.Delete(v.obj, i, i+1)
	return true, nil
}

// Set replaces the variant and payload of v with a deep copy of x
func (v *Value) Set(x any) error {
	nv, err := Of(x)
	if err != nil {
		return err
	}
	*v = nv
	return nil
}

// MakeNull resets v to Null whatever its variant
func (v *Value) MakeNull() {
	*v = Value{}
}

// AddAssign adds x to a Number in place
func (v *Value) AddAssign(x float64) (*Value, error) {
	if v.kind != Number {
		return v, newTypeError("add_assign", Number, v.kind)
	}
	v.n += x
	return v, nil
}

// SubAssign subtracts x from a Number in place
func (v *Value) SubAssign(x float64) (*Value, error) {
	if v.kind != Number {
		return v, newTypeError("sub_assign", Number, v.kind)
	}
	v.n -= x
	return v, nil
}

// Inc increments a Number in place
func (v *Value) Inc() (*Value, error) {
	if v.kind != Number {
		return v, newTypeError("increment", Number, v.kind)
	}
	v.n++
	return v, nil
}

// Dec decrements a Number in place
func (v *Value) Dec() (*Value, error) {
	if v.kind != Number {
		return v, newTypeError("decrement", Number, v.kind)
	}
	v.n--
	return v, nil
}

// PostInc increments a Number in place and returns its previous value
func (v *Value) PostInc() (Value, error) {
	if v.kind != Number {
		return Value{}, newTypeError("post_increment", Number, v.kind)
	}
	prev := *v
	v.n++
	return prev, nil
}

// PostDec decrements a Number in place and returns its previous value
func (v *Value) PostDec() (Value, error) {
	if v.kind != Number {
		return Value{}, newTypeError("post_decrement", Number, v.kind)
	}
	prev := *v
	v.n--
	return prev, nil
}

// Concat appends s to a String in place
func (v *Value) Concat(s string) (*Value, error) {
	if v.kind != String {
		return v, newTypeError("concat", String, v.kind)
	}
	v.s += s
	return v, nil
}

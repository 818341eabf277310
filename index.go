package jvalue

// Key returns the first member of an Object whose key matches. When no member
// matches, a new member holding Null is appended and returned, so Key can be
// used to build documents:
//
//	doc := jvalue.Obj()
//	name, _ := doc.Key("name")
//	_ = name.Set("Joe")
//
// Key fails with ErrTypeMismatch when v is not an Object. Use Get for a lookup
// that never creates members.
func (v *Value) Key(key string) (*Value, error) {
	if v.kind != Object {
		return nil, newTypeError("key", Object, v.kind)
	}
	if i := v.find(key); i >= 0 {
		return &v.obj[i].Value, nil
	}
	v.obj = append(v.obj, Member{Key: key})
	return &v.obj[len(v.obj)-1].Value, nil
}

// Get returns the first member of an Object whose key matches. It fails with
// ErrKeyNotFound when there is none and with ErrTypeMismatch when v is not an
// Object. Get never modifies v.
func (v *Value) Get(key string) (*Value, error) {
	if v.kind != Object {
		return nil, newTypeError("get", Object, v.kind)
	}
	if i := v.find(key); i >= 0 {
		return &v.obj[i].Value, nil
	}
	return nil, newKeyError("get", key)
}

// ContainsKey reports whether an Object has a member with the given key
func (v *Value) ContainsKey(key string) (bool, error) {
	if v.kind != Object {
		return false, newTypeError("contains_key", Object, v.kind)
	}
	return v.find(key) >= 0, nil
}

// Members returns the members of an Object in stored order. The slice aliases
// the object's storage and must not be appended to.
func (v *Value) Members() ([]Member, error) {
	if v.kind != Object {
		return nil, newTypeError("members", Object, v.kind)
	}
	return v.obj[:len(v.obj):len(v.obj)], nil
}

func (v *Value) find(key string) int {
	for i := range v.obj {
		if v.obj[i].Key == key {
			return i
		}
	}
	return -1
}

// At returns the element at position i of an Array
func (v *Value) At(i int) (*Value, error) {
	if v.kind != Array {
		return nil, newTypeError("at", Array, v.kind)
	}
	if i < 0 || i >= len(v.arr) {
		return nil, newIndexError("at", i, len(v.arr))
	}
	return &v.arr[i], nil
}

// Index is an alias of At
func (v *Value) Index(i int) (*Value, error) {
	return v.At(i)
}

// Front returns the first element of an Array
func (v *Value) Front() (*Value, error) {
	if v.kind != Array {
		return nil, newTypeError("front", Array, v.kind)
	}
	if len(v.arr) == 0 {
		return nil, newIndexError("front", 0, 0)
	}
	return &v.arr[0], nil
}

// Back returns the last element of an Array
func (v *Value) Back() (*Value, error) {
	if v.kind != Array {
		return nil, newTypeError("back", Array, v.kind)
	}
	if len(v.arr) == 0 {
		return nil, newIndexError("back", 0, 0)
	}
	return &v.arr[len(v.arr)-1], nil
}

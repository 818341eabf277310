package jvalue

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strconv"
)

// Kind identifies the active variant of a Value
type Kind uint8

const (
	Null Kind = iota
	Boolean
	Number
	String
	Array
	Object
)

// String returns the display name of the kind
func (k Kind) String() string {
	switch k {
	case Boolean:
		return "Boolean"
	case Number:
		return "Number"
	case String:
		return "String"
	case Array:
		return "Array"
	case Object:
		return "Object"
	default:
		return "Null"
	}
}

// Member is one key/value entry of an Object. Keys are not required to be unique.
type Member struct {
	Key   string
	Value Value
}

// Value is a JSON document node. The zero Value is Null.
//
// Arrays and objects own their children: constructors, Set and the mutators copy
// whatever they are given, so two Values never share a subtree. Plain Go
// assignment copies only the top level; use Clone for an independent copy.
//
// References returned by Key, Get, At and the As accessors point into the
// parent's storage and are invalidated by a later structural mutation of that
// parent.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	arr  []Value
	obj  []Member
}

// Numeric is the set of Go primitives stored as a Number
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// NullValue returns the null value
func NullValue() Value { return Value{} }

// Bool returns a Boolean value
func Bool(b bool) Value { return Value{kind: Boolean, b: b} }

// Float returns a Number value
func Float(f float64) Value { return Value{kind: Number, n: f} }

// Num returns a Number value from any numeric primitive
func Num[T Numeric](n T) Value { return Value{kind: Number, n: float64(n)} }

// Str returns a String value
func Str(s string) Value { return Value{kind: String, s: s} }

// Bytes returns a String value holding a copy of b
func Bytes(b []byte) Value { return Value{kind: String, s: string(b)} }

// Arr builds an Array from a literal list of elements.
// The elements are deep-copied.
func Arr(items ...Value) Value {
	a := make([]Value, len(items))
	for i := range items {
		a[i] = items[i].Clone()
	}
	return Value{kind: Array, arr: a}
}

// Obj builds an Object from a literal list of members, keeping their order.
// The member values are deep-copied and duplicate keys are kept as given.
func Obj(members ...Member) Value {
	o := make([]Member, len(members))
	for i := range members {
		o[i] = Member{Key: members[i].Key, Value: members[i].Value.Clone()}
	}
	return Value{kind: Object, obj: o}
}

// Pair builds an object member from a key and a Go literal. It panics if x has
// no document representation; use Of to handle that case as an error.
func Pair(key string, x any) Member {
	return Member{Key: key, Value: MustOf(x)}
}

// MustOf is like Of but panics on unsupported input.
// It simplifies building documents from literals.
func MustOf(x any) Value {
	v, err := Of(x)
	if err != nil {
		panic(err)
	}
	return v
}

// Of converts a Go value into a Value.
//
// nil becomes Null, bool becomes Boolean, every integer and float kind becomes
// Number, string and []byte become String. Value, *Value, []Value and []Member
// are deep-copied. []any, map[string]any and other slices and string-keyed maps
// are converted recursively; map keys are sorted so the result is deterministic.
// Input nested deeper than MaxNesting levels, such as a []any that contains
// itself, fails with ErrUnsupportedType.
func Of(x any) (Value, error) {
	return of(x, 0)
}

// MaxNesting bounds the container depth accepted by Of
const MaxNesting = 10000

func of(x any, depth int) (Value, error) {
	if depth > MaxNesting {
		return Value{}, &ValueError{
			Op:      "of",
			Message: fmt.Sprintf("input nested deeper than %d levels", MaxNesting),
			Err:     ErrUnsupportedType,
		}
	}
	switch t := x.(type) {
	case nil:
		return Value{}, nil
	case Value:
		return t.Clone(), nil
	case *Value:
		if t == nil {
			return Value{}, nil
		}
		return t.Clone(), nil
	case bool:
		return Bool(t), nil
	case float64:
		return Float(t), nil
	case float32:
		return Num(t), nil
	case int:
		return Num(t), nil
	case int8:
		return Num(t), nil
	case int16:
		return Num(t), nil
	case int32:
		return Num(t), nil
	case int64:
		return Num(t), nil
	case uint:
		return Num(t), nil
	case uint8:
		return Num(t), nil
	case uint16:
		return Num(t), nil
	case uint32:
		return Num(t), nil
	case uint64:
		return Num(t), nil
	case uintptr:
		return Num(t), nil
	case string:
		return Str(t), nil
	case []byte:
		return Bytes(t), nil
	case json.Number:
		f, err := strconv.ParseFloat(string(t), 64)
		if err != nil {
			return Value{}, WrapError(ErrUnsupportedType, "of", "malformed json.Number "+strconv.Quote(string(t)))
		}
		return Float(f), nil
	case []Value:
		return Arr(t...), nil
	case []Member:
		return Obj(t...), nil
	case []any:
		a := make([]Value, 0, len(t))
		for _, item := range t {
			v, err := of(item, depth+1)
			if err != nil {
				return Value{}, err
			}
			a = append(a, v)
		}
		return Value{kind: Array, arr: a}, nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		o := make([]Member, 0, len(t))
		for _, k := range keys {
			v, err := of(t[k], depth+1)
			if err != nil {
				return Value{}, err
			}
			o = append(o, Member{Key: k, Value: v})
		}
		return Value{kind: Object, obj: o}, nil
	}
	return ofReflect(x, depth)
}

// ofReflect handles named primitive types and generic slices and maps
func ofReflect(x any, depth int) (Value, error) {
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return Value{}, nil
		}
		return of(rv.Elem().Interface(), depth+1)
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Float(float64(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Float(float64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.String:
		return Str(rv.String()), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Value{}, nil
		}
		a := make([]Value, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			v, err := of(rv.Index(i).Interface(), depth+1)
			if err != nil {
				return Value{}, err
			}
			a = append(a, v)
		}
		return Value{kind: Array, arr: a}, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Value{}, newUnsupportedError("of", x)
		}
		if rv.IsNil() {
			return Value{}, nil
		}
		keys := rv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			switch {
			case a.String() < b.String():
				return -1
			case a.String() > b.String():
				return 1
			}
			return 0
		})
		o := make([]Member, 0, len(keys))
		for _, k := range keys {
			v, err := of(rv.MapIndex(k).Interface(), depth+1)
			if err != nil {
				return Value{}, err
			}
			o = append(o, Member{Key: k.String(), Value: v})
		}
		return Value{kind: Object, obj: o}, nil
	}
	return Value{}, newUnsupportedError("of", x)
}

// Type returns the active variant
func (v Value) Type() Kind { return v.kind }

// TypeStr returns the display name of the active variant
func (v Value) TypeStr() string { return v.kind.String() }

// Is reports whether the active variant is k
func (v Value) Is(k Kind) bool { return v.kind == k }

func (v Value) IsNull() bool { return v.kind == Null }
func (v Value) IsBool() bool { return v.kind == Boolean }
func (v Value) IsNum() bool  { return v.kind == Number }
func (v Value) IsStr() bool  { return v.kind == String }
func (v Value) IsArr() bool  { return v.kind == Array }
func (v Value) IsObj() bool  { return v.kind == Object }

// Size returns the element count of an Array, the member count of an Object,
// the byte length of a String and 0 for every other variant.
func (v Value) Size() int {
	switch v.kind {
	case Array:
		return len(v.arr)
	case Object:
		return len(v.obj)
	case String:
		return len(v.s)
	default:
		return 0
	}
}

// Empty reports whether Size is zero
func (v Value) Empty() bool { return v.Size() == 0 }

// Clone returns a deep copy of v
func (v Value) Clone() Value {
	switch v.kind {
	case Array:
		a := make([]Value, len(v.arr))
		for i := range v.arr {
			a[i] = v.arr[i].Clone()
		}
		return Value{kind: Array, arr: a}
	case Object:
		o := make([]Member, len(v.obj))
		for i := range v.obj {
			o[i] = Member{Key: v.obj[i].Key, Value: v.obj[i].Value.Clone()}
		}
		return Value{kind: Object, obj: o}
	default:
		return v
	}
}

// Equal reports whether v and o hold the same variant and recursively equal
// payloads. Arrays and objects compare in order.
func (v Value) Equal(o Value) bool {
	return Equal(v, o)
}

// Equal reports whether a and b are structurally equal
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Null:
		return true
	case Boolean:
		return a.b == b.b
	case Number:
		return a.n == b.n
	case String:
		return a.s == b.s
	case Array:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(a.obj) != len(b.obj) {
			return false
		}
		for i := range a.obj {
			if a.obj[i].Key != b.obj[i].Key || !Equal(a.obj[i].Value, b.obj[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}

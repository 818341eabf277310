package jvalue

import (
	"context"
	"log/slog"
	"math"
	"reflect"

	"github.com/cybergodev/jvalue/internal"
)

// Payload is the set of Go types that back a variant
type Payload interface {
	bool | float64 | string | []Value | []Member
}

// AsBool returns a reference to the Boolean payload
func (v *Value) AsBool() (*bool, error) {
	if v.kind != Boolean {
		return nil, newTypeError("as_bool", Boolean, v.kind)
	}
	return &v.b, nil
}

// AsNum returns a reference to the Number payload
func (v *Value) AsNum() (*float64, error) {
	if v.kind != Number {
		return nil, newTypeError("as_num", Number, v.kind)
	}
	return &v.n, nil
}

// AsStr returns a reference to the String payload
func (v *Value) AsStr() (*string, error) {
	if v.kind != String {
		return nil, newTypeError("as_str", String, v.kind)
	}
	return &v.s, nil
}

// AsArr returns a reference to the Array payload
func (v *Value) AsArr() (*[]Value, error) {
	if v.kind != Array {
		return nil, newTypeError("as_arr", Array, v.kind)
	}
	return &v.arr, nil
}

// AsObj returns a reference to the Object payload
func (v *Value) AsObj() (*[]Member, error) {
	if v.kind != Object {
		return nil, newTypeError("as_obj", Object, v.kind)
	}
	return &v.obj, nil
}

// TryBool is the non-failing counterpart of AsBool
func (v *Value) TryBool() (*bool, bool) {
	if v.kind != Boolean {
		return nil, false
	}
	return &v.b, true
}

// TryNum is the non-failing counterpart of AsNum
func (v *Value) TryNum() (*float64, bool) {
	if v.kind != Number {
		return nil, false
	}
	return &v.n, true
}

// TryStr is the non-failing counterpart of AsStr
func (v *Value) TryStr() (*string, bool) {
	if v.kind != String {
		return nil, false
	}
	return &v.s, true
}

// TryArr is the non-failing counterpart of AsArr
func (v *Value) TryArr() (*[]Value, bool) {
	if v.kind != Array {
		return nil, false
	}
	return &v.arr, true
}

// TryObj is the non-failing counterpart of AsObj
func (v *Value) TryObj() (*[]Member, bool) {
	if v.kind != Object {
		return nil, false
	}
	return &v.obj, true
}

// As returns a reference to the payload of v when its variant matches T,
// or ErrTypeMismatch otherwise.
func As[T Payload](v *Value) (*T, error) {
	if p := TryAs[T](v); p != nil {
		return p, nil
	}
	var zero T
	return nil, newTypeError("as", kindOf(zero), v.kind)
}

// TryAs returns a reference to the payload of v, or nil when the variant does
// not match T. It never fails.
func TryAs[T Payload](v *Value) *T {
	var zero T
	if v == nil || v.kind != kindOf(zero) {
		return nil
	}
	var p any
	switch any(zero).(type) {
	case bool:
		p = &v.b
	case float64:
		p = &v.n
	case string:
		p = &v.s
	case []Value:
		p = &v.arr
	case []Member:
		p = &v.obj
	}
	return p.(*T)
}

// kindOf maps a payload type to its variant
func kindOf(x any) Kind {
	switch x.(type) {
	case bool:
		return Boolean
	case float64:
		return Number
	case string:
		return String
	case []Value:
		return Array
	case []Member:
		return Object
	}
	return Null
}

// Copyable is the set of target types accepted by Copy
type Copyable interface {
	Numeric | ~string | ~bool
}

// CopyOption customises a single Copy call
type CopyOption func(*copyOptions)

type copyOptions struct {
	policy CopyPolicy
	logger *slog.Logger
}

// WithCopyPolicy overrides the package default copy policy for one call
func WithCopyPolicy(p CopyPolicy) CopyOption {
	return func(o *copyOptions) { o.policy = p }
}

// Copy performs a best-effort value conversion of v into T.
//
// Number, Boolean and Null convert to numeric and boolean targets (Null is zero,
// true is one). Numeric conversion truncates toward zero and saturates at the
// bounds of T; NaN becomes zero, and false for a bool target. A string target
// receives the serialized form of Number, Boolean, Null and String values, so
// strings come back quoted and escaped. Every other pairing is resolved by the copy policy: CopyStrict fails
// with ErrTypeMismatch, CopyZero returns the zero value of T.
func Copy[T Copyable](v Value, opts ...CopyOption) (T, error) {
	cfg := loadConfig()
	o := copyOptions{policy: cfg.CopyPolicy, logger: cfg.Logger}
	for _, opt := range opts {
		opt(&o)
	}

	var out T
	target := reflect.ValueOf(&out).Elem()

	switch target.Kind() {
	case reflect.String:
		switch v.kind {
		case Null, Boolean, Number, String:
			target.SetString(string(appendScalar(nil, &v)))
			return out, nil
		}
	case reflect.Bool:
		switch v.kind {
		case Null:
			return out, nil
		case Boolean:
			target.SetBool(v.b)
			return out, nil
		case Number:
			target.SetBool(v.n != 0 && !math.IsNaN(v.n))
			return out, nil
		}
	default:
		var f float64
		switch v.kind {
		case Null:
			return out, nil
		case Boolean:
			if v.b {
				f = 1
			}
		case Number:
			f = v.n
		default:
			return copyMismatch[T](v.kind, target.Type(), o)
		}
		setNumeric(target, f)
		return out, nil
	}
	return copyMismatch[T](v.kind, target.Type(), o)
}

func copyMismatch[T any](got Kind, target reflect.Type, o copyOptions) (T, error) {
	var zero T
	if o.policy == CopyZero {
		if o.logger != nil {
			o.logger.LogAttrs(context.Background(), slog.LevelDebug, "copy fell back to zero value",
				slog.String("from", got.String()),
				slog.String("to", target.String()),
				slog.String("policy", o.policy.String()),
			)
		}
		return zero, nil
	}
	return zero, &ValueError{
		Op:      "copy",
		Kind:    got,
		Message: "cannot copy " + got.String() + " to " + target.String(),
		Err:     ErrTypeMismatch,
	}
}

// setNumeric stores f into an integer or float reflect.Value, truncating toward
// zero and clamping to the target range.
func setNumeric(target reflect.Value, f float64) {
	switch target.Kind() {
	case reflect.Float32, reflect.Float64:
		target.SetFloat(f)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		target.SetInt(internal.TruncInt(f, target.Type().Bits()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		target.SetUint(internal.TruncUint(f, target.Type().Bits()))
	}
}

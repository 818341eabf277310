package jvalue

import (
	"errors"
	"fmt"
)

// Core error definitions
var (
	// ErrTypeMismatch is returned when an operation needs a different variant
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrIndexOutOfRange is returned by positional array access, insert and erase
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrKeyNotFound is returned by the strict object lookup
	ErrKeyNotFound = errors.New("key not found")

	// ErrUnsupportedType is returned when a Go value has no document representation
	ErrUnsupportedType = errors.New("unsupported type")
	// ErrInvalidFormat is returned when a format name cannot be parsed
	ErrInvalidFormat = errors.New("invalid format")
	// ErrInvalidConfig is returned by Config.Validate
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ValueError represents a failed Value operation with essential context
type ValueError struct {
	Op      string `json:"op"`      // Operation that failed
	Kind    Kind   `json:"kind"`    // Variant the operation was invoked on
	Key     string `json:"key"`     // Object key involved, if any
	Message string `json:"message"` // Human-readable error message
	Err     error  `json:"err"`     // Underlying sentinel error
}

func (e *ValueError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("jvalue %s failed at key '%s': %s", e.Op, e.Key, e.Message)
	}
	return fmt.Sprintf("jvalue %s failed: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error for error chain support
func (e *ValueError) Unwrap() error {
	return e.Err
}

// Is implements error matching for errors.Is
func (e *ValueError) Is(target error) bool {
	if target == nil {
		return false
	}

	if targetErr, ok := target.(*ValueError); ok {
		return e.Op == targetErr.Op && e.Err == targetErr.Err
	}

	return errors.Is(e.Err, target)
}

// newTypeError reports an operation that requires want but found got
func newTypeError(op string, want, got Kind) error {
	return &ValueError{
		Op:      op,
		Kind:    got,
		Message: fmt.Sprintf("%s on %s, expected %s", op, got, want),
		Err:     ErrTypeMismatch,
	}
}

// newIndexError reports an index outside the valid range [0, limit)
func newIndexError(op string, idx, limit int) error {
	return &ValueError{
		Op:      op,
		Kind:    Array,
		Message: fmt.Sprintf("index %d out of range [0, %d)", idx, limit),
		Err:     ErrIndexOutOfRange,
	}
}

// newKeyError reports a missing object key
func newKeyError(op, key string) error {
	return &ValueError{
		Op:      op,
		Kind:    Object,
		Key:     key,
		Message: "no member with this key",
		Err:     ErrKeyNotFound,
	}
}

// newUnsupportedError reports a Go value that cannot be turned into a Value
func newUnsupportedError(op string, x any) error {
	return &ValueError{
		Op:      op,
		Message: fmt.Sprintf("cannot represent %T as a document value", x),
		Err:     ErrUnsupportedType,
	}
}

// WrapError wraps an error with operation context
func WrapError(err error, op, message string) error {
	if err == nil {
		return nil
	}
	return &ValueError{
		Op:      op,
		Message: message,
		Err:     err,
	}
}

package jvalue

import (
	"fmt"
	"strings"

	"github.com/cybergodev/jvalue/internal"
)

// Format selects the layout produced by Dump
type Format uint8

const (
	// Compress writes no whitespace at all
	Compress Format = iota
	// Compact writes a single line with one space after separators and inside brackets
	Compact
	// Pretty writes one member or element per line, indented by nesting depth
	Pretty
)

// String returns the name of the format
func (f Format) String() string {
	switch f {
	case Compact:
		return "compact"
	case Pretty:
		return "pretty"
	default:
		return "compress"
	}
}

// ParseFormat parses a format name as returned by Format.String
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "compress", "min", "minified":
		return Compress, nil
	case "compact", "":
		return Compact, nil
	case "pretty", "indent":
		return Pretty, nil
	}
	return Compress, &ValueError{
		Op:      "parse_format",
		Message: fmt.Sprintf("unknown format %q", s),
		Err:     ErrInvalidFormat,
	}
}

// dumpState is threaded through the recursion by value
type dumpState struct {
	format Format
	depth  int
	indent string
}

func (st dumpState) nested() dumpState {
	st.depth++
	return st
}

// Dump serializes v in the given format. It never fails: non-finite numbers are
// written as null.
func Dump(v Value, f Format) string {
	return DumpWithConfig(v, f, nil)
}

// DumpWithConfig is like Dump but takes the Pretty indentation unit from cfg.
// A nil cfg uses the package default configuration.
func DumpWithConfig(v Value, f Format, cfg *Config) string {
	buf := internal.GetByteSlice()
	defer internal.PutByteSlice(buf)

	*buf = appendDump(*buf, &v, f, cfg)
	return string(*buf)
}

// AppendDump appends the serialized form of v to dst and returns the extended buffer
func AppendDump(dst []byte, v Value, f Format) []byte {
	return appendDump(dst, &v, f, nil)
}

func appendDump(dst []byte, v *Value, f Format, cfg *Config) []byte {
	if cfg == nil {
		cfg = loadConfig()
	}
	indent := cfg.Indent
	if indent == "" {
		indent = DefaultIndent
	}
	return appendValue(dst, v, dumpState{format: f, indent: indent})
}

func appendValue(dst []byte, v *Value, st dumpState) []byte {
	switch v.kind {
	case Array:
		return appendArray(dst, v.arr, st)
	case Object:
		return appendObject(dst, v.obj, st)
	default:
		return appendScalar(dst, v)
	}
}

// appendScalar writes the leaf variants
func appendScalar(dst []byte, v *Value) []byte {
	switch v.kind {
	case Boolean:
		if v.b {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case Number:
		return internal.AppendNumber(dst, v.n)
	case String:
		return internal.AppendString(dst, v.s)
	default:
		return append(dst, "null"...)
	}
}

func appendArray(dst []byte, arr []Value, st dumpState) []byte {
	if len(arr) == 0 {
		return append(dst, "[]"...)
	}

	inner := st.nested()
	dst = appendOpen(dst, '[', inner)
	for i := range arr {
		if i > 0 {
			dst = appendSeparator(dst, inner)
		}
		dst = appendValue(dst, &arr[i], inner)
	}
	return appendClose(dst, ']', st)
}

func appendObject(dst []byte, obj []Member, st dumpState) []byte {
	if len(obj) == 0 {
		return append(dst, "{}"...)
	}

	inner := st.nested()
	dst = appendOpen(dst, '{', inner)
	for i := range obj {
		if i > 0 {
			dst = appendSeparator(dst, inner)
		}
		dst = internal.AppendString(dst, obj[i].Key)
		dst = append(dst, ':')
		if st.format != Compress {
			dst = append(dst, ' ')
		}
		dst = appendValue(dst, &obj[i].Value, inner)
	}
	return appendClose(dst, '}', st)
}

// appendOpen writes the opening bracket and whatever precedes the first child
func appendOpen(dst []byte, c byte, inner dumpState) []byte {
	dst = append(dst, c)
	switch inner.format {
	case Compact:
		dst = append(dst, ' ')
	case Pretty:
		dst = appendNewline(dst, inner)
	}
	return dst
}

// appendSeparator writes the separator between two children
func appendSeparator(dst []byte, inner dumpState) []byte {
	dst = append(dst, ',')
	switch inner.format {
	case Compact:
		dst = append(dst, ' ')
	case Pretty:
		dst = appendNewline(dst, inner)
	}
	return dst
}

// appendClose writes whatever follows the last child and the closing bracket;
// outer is the state of the container itself.
func appendClose(dst []byte, c byte, outer dumpState) []byte {
	switch outer.format {
	case Compact:
		dst = append(dst, ' ')
	case Pretty:
		dst = appendNewline(dst, outer)
	}
	return append(dst, c)
}

func appendNewline(dst []byte, st dumpState) []byte {
	dst = append(dst, '\n')
	for i := 0; i < st.depth; i++ {
		dst = append(dst, st.indent...)
	}
	return dst
}

// String returns the Compact serialization of v
func (v Value) String() string {
	return Dump(v, Compact)
}

// MarshalJSON implements json.Marshaler with the Compress serialization
func (v Value) MarshalJSON() ([]byte, error) {
	return AppendDump(nil, v, Compress), nil
}

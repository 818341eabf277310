// Package jvalue provides an ordered, mutable JSON document model and a
// deterministic text writer.
//
// A Value is one of six variants: Null, Boolean, Number, String, Array or Object.
// Objects keep their members in insertion order and do not enforce unique keys.
//
//	import "github.com/cybergodev/jvalue"
//
// # Building documents
//
// Literal constructors and the two list factories build whole trees:
//
//	doc := jvalue.Obj(
//		jvalue.Pair("id", 42),
//		jvalue.Pair("ok", true),
//		jvalue.Pair("tag", nil),
//		jvalue.Pair("tags", jvalue.Arr(jvalue.Str("a"), jvalue.Str("b"))),
//	)
//
// Key auto-creates missing members, which makes builder-style code short,
// while Get is a strict lookup that fails with ErrKeyNotFound:
//
//	name, _ := doc.Key("name") // appended as null
//	_ = name.Set("Joe")
//	_, err := doc.Get("missing") // errors.Is(err, jvalue.ErrKeyNotFound)
//
// # Typed access
//
// The As accessors return references into the payload and fail with
// ErrTypeMismatch on the wrong variant; the Try accessors report a bool instead.
// Copy converts a value into a Go primitive:
//
//	n, err := jvalue.Copy[uint16](doc) // ErrTypeMismatch under CopyStrict
//	n, _ = jvalue.Copy[uint16](doc, jvalue.WithCopyPolicy(jvalue.CopyZero))
//
// # Serialization
//
// Dump renders a value in one of three formats:
//
//	jvalue.Dump(doc, jvalue.Compress) // {"id":42,"ok":true,...}
//	jvalue.Dump(doc, jvalue.Compact)  // { "id": 42, "ok": true, ... }
//	jvalue.Dump(doc, jvalue.Pretty)   // one member per line, tab indented
//
// Non-finite numbers are written as null, zero of either sign as 0 and integral
// numbers without a fraction. Strings are escaped byte-wise; bytes from 0x20 up
// are written unchanged.
//
// # Errors
//
// Every failure is a *ValueError wrapping one of ErrTypeMismatch,
// ErrIndexOutOfRange, ErrKeyNotFound or ErrUnsupportedType. Failed operations
// leave the value unchanged.
package jvalue

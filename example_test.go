package jvalue_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/cybergodev/jvalue"
)

func ExampleObj() {
	doc := jvalue.Obj(
		jvalue.Pair("id", 42),
		jvalue.Pair("ok", true),
		jvalue.Pair("tag", nil),
	)
	fmt.Println(jvalue.Dump(doc, jvalue.Compress))
	fmt.Println(jvalue.Dump(doc, jvalue.Compact))
	// Output:
	// {"id":42,"ok":true,"tag":null}
	// { "id": 42, "ok": true, "tag": null }
}

func ExampleValue_Key() {
	doc := jvalue.Obj()
	name, _ := doc.Key("name")
	_ = name.Set("Joe")

	_, err := doc.Get("phone")
	fmt.Println(doc)
	fmt.Println(errors.Is(err, jvalue.ErrKeyNotFound))
	// Output:
	// { "name": "Joe" }
	// true
}

func ExampleValue_PushBack() {
	arr := jvalue.MustOf([]string{"a", "b"})
	_ = arr.PushBack("c")
	fmt.Println(arr.Size(), jvalue.Dump(arr, jvalue.Compress))
	// Output: 3 ["a","b","c"]
}

func ExampleCopy() {
	n, _ := jvalue.Copy[uint8](jvalue.Float(300.7))
	_, err := jvalue.Copy[int](jvalue.Str("300"))
	zero, _ := jvalue.Copy[int](jvalue.Str("300"), jvalue.WithCopyPolicy(jvalue.CopyZero))
	fmt.Println(n, errors.Is(err, jvalue.ErrTypeMismatch), zero)
	// Output: 255 true 0
}

func ExampleDump_pretty() {
	doc := jvalue.Obj(
		jvalue.Pair("name", "Joe"),
		jvalue.Pair("tags", jvalue.Arr(jvalue.Str("a"), jvalue.Num(1.5))),
		jvalue.Pair("empty", jvalue.Arr()),
	)
	fmt.Println(jvalue.DumpWithConfig(doc, jvalue.Pretty, &jvalue.Config{Indent: "  "}))
	// Output:
	// {
	//   "name": "Joe",
	//   "tags": [
	//     "a",
	//     1.5
	//   ],
	//   "empty": []
	// }
}

func ExampleEncoder() {
	enc := jvalue.NewEncoder(os.Stdout, jvalue.WithFormat(jvalue.Compact))
	_ = enc.Encode(jvalue.Arr(jvalue.Str("line\nbreak"), jvalue.Float(-0.0)))
	_ = enc.Encode(jvalue.Obj())
	// Output:
	// [ "line\nbreak", 0 ]
	// {}
}

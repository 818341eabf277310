package cli

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/cybergodev/jvalue"
)

// demoCommand creates the demo command.
func (c *CLI) demoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Build the sample document, mutate it and print the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			logger.Debug("running demo", "format", c.settings.format)
			return runDemo(cmd.OutOrStdout(), c.settings.format)
		},
	}
}

func user(id int) jvalue.Value {
	return jvalue.Obj(
		jvalue.Pair("id", id),
		jvalue.Pair("data", jvalue.Obj(
			jvalue.Pair("name", "Joe"),
			jvalue.Pair("phone", nil),
		)),
	)
}

// sampleDocument returns the document printed by the demo command. It mixes
// every variant, a key containing a newline, negative zero, and runes stored
// as numbers.
func sampleDocument() jvalue.Value {
	return jvalue.Obj(
		jvalue.Pair("id", 42),
		jvalue.Pair("key", "value"),
		jvalue.Pair("bool", true),
		jvalue.Pair("null_value\n", nil),
		jvalue.Pair("array", jvalue.Arr(
			jvalue.Str("cpp"),
			jvalue.Str("cpp"),
			jvalue.Float(1.05),
			jvalue.Float(math.Copysign(0, -1)),
			jvalue.Bool(false),
			jvalue.Bool(true),
			jvalue.NullValue(),
			jvalue.Num('c'),
			jvalue.Num(0x5),
			jvalue.Num('\n'),
		)),
		jvalue.Pair("users", jvalue.Arr(
			jvalue.Obj(),
			user(1),
			jvalue.Obj(jvalue.Pair("id", 2)),
			jvalue.Obj(),
			user(3),
			user(4),
		)),
		jvalue.Pair("empty_array", jvalue.Arr()),
		jvalue.Pair("array2", jvalue.Arr(jvalue.Obj(), jvalue.Obj())),
	)
}

// runDemo prints the sample document, then walks through the typed accessors
// and array mutations, writing a line for each step.
func runDemo(w io.Writer, format jvalue.Format) error {
	doc := sampleDocument()

	fmt.Fprintf(w, "JSON dump:\n%s\n\n", jvalue.Dump(doc, format))
	fmt.Fprintf(w, "Root type: %s; Count: %d\n", doc.TypeStr(), doc.Size())

	id, err := doc.Key("id")
	if err != nil {
		return err
	}
	if err := id.Set(2); err != nil {
		return err
	}
	small, err := jvalue.Copy[uint16](*id)
	if err != nil {
		return err
	}
	prev, err := id.PostInc()
	if err != nil {
		return err
	}
	key, err := doc.Get("key")
	if err != nil {
		return err
	}
	text, err := key.AsStr()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "id (uint16): %d\tid: %s\tid: %s\tkey: %s\n", small, prev, *id, *text)

	fmt.Fprintln(w, "=========[ARRAY]=========")
	array, err := doc.Key("array")
	if err != nil {
		return err
	}
	if err := array.PushBack(9999); err != nil {
		return err
	}
	if err := array.PushBack("1733"); err != nil {
		return err
	}
	fmt.Fprintf(w, "Type: %s; Size: %d\n", array.TypeStr(), array.Size())

	first, err := array.At(0)
	if err != nil {
		return err
	}
	second, err := array.Index(1)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "element [0] (%s) equals to [1] (%t)\n", *first, first.Equal(*second))

	elements, err := array.Values()
	if err != nil {
		return err
	}
	fmt.Fprint(w, "Array iteration: [")
	for v := range elements {
		switch v.Type() {
		case jvalue.Null, jvalue.String, jvalue.Number, jvalue.Boolean:
			fmt.Fprintf(w, "%s: %s; ", v.TypeStr(), v)
		default:
			fmt.Fprintf(w, "Default: %s; ", v.TypeStr())
		}
	}
	fmt.Fprintln(w, "]")
	fmt.Fprintf(w, "Array dump: %s\n", jvalue.Dump(*array, format))
	return nil
}

package cli

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybergodev/jvalue"
)

func TestDetectInput(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		from    string
		want    string
		wantErr bool
	}{
		{"TOMLExtension", "conf/app.toml", "", inputTOML, false},
		{"JSONExtension", "doc.JSON", "", inputJSON, false},
		{"YAMLExtension", "doc.yaml", "", inputYAML, false},
		{"UnknownExtension", "doc.txt", "", inputYAML, false},
		{"ExplicitOverridesExtension", "doc.toml", "yaml", inputYAML, false},
		{"YmlAlias", "doc", "yml", inputYAML, false},
		{"ExplicitTOML", "doc", "TOML", inputTOML, false},
		{"Unknown", "doc", "xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := detectInput(tt.path, tt.from)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromYAML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "KeepsMappingOrder",
			in: `
name: demo
count: 3
ratio: 0.5
enabled: true
nothing: ~
tags: [b, a]
nested:
  z: 1
  a: "2"
`,
			want: `{"name":"demo","count":3,"ratio":0.5,"enabled":true,"nothing":null,"tags":["b","a"],"nested":{"z":1,"a":"2"}}`,
		},
		{
			name: "JSONInput",
			in:   `{"b": [1, 2.5, null], "a": {"k": "v\n"}, "t": false}`,
			want: `{"b":[1,2.5,null],"a":{"k":"v\n"},"t":false}`,
		},
		{
			name: "Aliases",
			in: `
base: &b {x: 1}
copy: *b
`,
			want: `{"base":{"x":1},"copy":{"x":1}}`,
		},
		{
			name: "TopLevelSequence",
			in:   "- one\n- 2\n- [ ]\n- { }\n",
			want: `["one",2,[],{}]`,
		},
		{
			name: "QuotedNumberStaysString",
			in:   `v: "42"`,
			want: `{"v":"42"}`,
		},
		{
			name: "Empty",
			in:   "",
			want: `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := fromYAML([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, jvalue.Dump(doc, jvalue.Compress))
		})
	}
}

func TestFromYAMLErrors(t *testing.T) {
	t.Run("Syntax", func(t *testing.T) {
		_, err := fromYAML([]byte("a: [1, 2"))
		assert.ErrorContains(t, err, "decode yaml")
	})

	t.Run("NonScalarKey", func(t *testing.T) {
		_, err := fromYAML([]byte("? [a, b]\n: 1\n"))
		assert.ErrorIs(t, err, errKeyNotScalar)
	})

	aliasTests := []struct {
		name string
		in   string
		want error
	}{
		{"SelfReferentialSequence", "a: &a [1, *a]\n", errAliasCycle},
		{"SelfReferentialMapping", "a: &a {b: {c: *a}}\n", errAliasCycle},
		{"ExponentialExpansion", nestedAliases(9, 10), errAliasBudget},
	}
	for _, tt := range aliasTests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fromYAML([]byte(tt.in))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("RepeatedAliasWithinLimit", func(t *testing.T) {
		got, err := fromYAML([]byte(nestedAliases(3, 10)))
		require.NoError(t, err)
		last, err := got.Get("l3")
		require.NoError(t, err)
		assert.Equal(t, 10, last.Size())
	})
}

// nestedAliases builds a document where each level repeats the previous
// level's anchor width times, so the last level expands to width^levels leaves.
func nestedAliases(levels, width int) string {
	var b strings.Builder
	b.WriteString("l0: &l0 [" + strings.TrimSuffix(strings.Repeat("x, ", width), ", ") + "]\n")
	for i := 1; i <= levels; i++ {
		refs := strings.TrimSuffix(strings.Repeat(fmt.Sprintf("*l%d, ", i-1), width), ", ")
		fmt.Fprintf(&b, "l%d: &l%d [%s]\n", i, i, refs)
	}
	return b.String()
}

func TestFromTOML(t *testing.T) {
	in := `
title = "x"
zeta = 1
alpha = [1, 2]

[owner]
name = "Tom"
dob = 1979-05-27T07:32:00Z
born = 1979-05-27

[[items]]
b = true
a = 1.5

[[items]]
c = "third"
`
	doc, err := fromTOML([]byte(in))
	require.NoError(t, err)

	want := `{"title":"x","zeta":1,"alpha":[1,2],` +
		`"owner":{"name":"Tom","dob":"1979-05-27T07:32:00Z","born":"1979-05-27"},` +
		`"items":[{"b":true,"a":1.5},{"c":"third"}]}`
	assert.Equal(t, want, jvalue.Dump(doc, jvalue.Compress))

	t.Run("Syntax", func(t *testing.T) {
		_, err := fromTOML([]byte("a = "))
		assert.ErrorContains(t, err, "decode toml")
	})
}

func TestDecodeDocument(t *testing.T) {
	doc, err := decodeDocument([]byte(`k = "v"`), inputTOML)
	require.NoError(t, err)
	assert.Equal(t, `{"k":"v"}`, jvalue.Dump(doc, jvalue.Compress))

	doc, err = decodeDocument([]byte(`{"k": "v"}`), inputJSON)
	require.NoError(t, err)
	assert.Equal(t, `{"k":"v"}`, jvalue.Dump(doc, jvalue.Compress))
}

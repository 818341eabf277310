package jvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyAutoVivifies(t *testing.T) {
	doc := Obj(Pair("id", 42))

	ok, err := doc.ContainsKey("name")
	require.NoError(t, err)
	require.False(t, ok)

	name, err := doc.Key("name")
	require.NoError(t, err)
	assert.True(t, name.IsNull())
	assert.Equal(t, 2, doc.Size())

	ok, err = doc.ContainsKey("name")
	require.NoError(t, err)
	assert.True(t, ok)

	// A second lookup finds the member instead of adding another one
	again, err := doc.Key("name")
	require.NoError(t, err)
	require.NoError(t, again.Set("Joe"))
	assert.Equal(t, 2, doc.Size())
	assert.Equal(t, `{"id":42,"name":"Joe"}`, Dump(doc, Compress))
}

func TestGetIsStrict(t *testing.T) {
	doc := Obj(Pair("a", 1))

	_, err := doc.Get("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.Equal(t, 1, doc.Size())

	var ve *ValueError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "get", ve.Op)
	assert.Equal(t, "missing", ve.Key)

	v, err := doc.Get("a")
	require.NoError(t, err)
	assert.True(t, v.Equal(Num(1)))
}

func TestObjectAccessOnWrongKind(t *testing.T) {
	values := []Value{NullValue(), Bool(true), Num(1), Str("s"), Arr()}

	for _, v := range values {
		t.Run(v.TypeStr(), func(t *testing.T) {
			before := v.Clone()

			_, err := v.Key("k")
			assert.ErrorIs(t, err, ErrTypeMismatch)
			_, err = v.Get("k")
			assert.ErrorIs(t, err, ErrTypeMismatch)
			_, err = v.ContainsKey("k")
			assert.ErrorIs(t, err, ErrTypeMismatch)
			_, err = v.Members()
			assert.ErrorIs(t, err, ErrTypeMismatch)

			assert.True(t, before.Equal(v))
		})
	}
}

func TestDuplicateKeys(t *testing.T) {
	doc := Obj(Pair("a", 1), Pair("a", 2))

	first, err := doc.Get("a")
	require.NoError(t, err)
	assert.True(t, first.Equal(Num(1)))
	assert.Equal(t, `{"a":1,"a":2}`, Dump(doc, Compress))

	removed, err := doc.EraseKey("a")
	require.NoError(t, err)
	require.True(t, removed)
	assert.Equal(t, `{"a":2}`, Dump(doc, Compress))
}

func TestMembers(t *testing.T) {
	doc := Obj(Pair("b", 1), Pair("a", 2))

	members, err := doc.Members()
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "b", members[0].Key)
	assert.Equal(t, "a", members[1].Key)

	members[1].Value = Str("edited")
	assert.Equal(t, `{"b":1,"a":"edited"}`, Dump(doc, Compress))

	// Appending to the returned slice never writes into the object
	_ = append(members, Pair("c", 3))
	assert.Equal(t, 2, doc.Size())
}

func TestPositionalAccess(t *testing.T) {
	arr := Arr(Str("a"), Str("b"), Str("c"))

	tests := []struct {
		name    string
		index   int
		want    string
		wantErr error
	}{
		{"First", 0, `"a"`, nil},
		{"Last", 2, `"c"`, nil},
		{"Negative", -1, "", ErrIndexOutOfRange},
		{"PastEnd", 3, "", ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := arr.At(tt.index)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, Dump(*got, Compress))

			alias, err := arr.Index(tt.index)
			require.NoError(t, err)
			assert.Same(t, got, alias)
		})
	}

	t.Run("WriteThrough", func(t *testing.T) {
		el, err := arr.At(1)
		require.NoError(t, err)
		require.NoError(t, el.Set(Obj(Pair("x", true))))
		assert.Equal(t, `["a",{"x":true},"c"]`, Dump(arr, Compress))
	})

	t.Run("WrongKind", func(t *testing.T) {
		obj := Obj(Pair("0", 1))
		_, err := obj.At(0)
		assert.ErrorIs(t, err, ErrTypeMismatch)
	})
}

func TestFrontBack(t *testing.T) {
	arr := Arr(Num(1), Num(2), Num(3))

	front, err := arr.Front()
	require.NoError(t, err)
	assert.True(t, front.Equal(Num(1)))

	back, err := arr.Back()
	require.NoError(t, err)
	assert.True(t, back.Equal(Num(3)))

	empty := Arr()
	_, err = empty.Front()
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = empty.Back()
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	str := Str("abc")
	_, err = str.Front()
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = str.Back()
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

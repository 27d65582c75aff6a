package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteralDecode(t *testing.T) {
	s := Literal("pending", "active", "done")

	got, err := Decode(s, "active")
	require.NoError(t, err)
	assert.Equal(t, "active", got)

	_, err = Decode(s, "archived")
	var issues Issues
	require.ErrorAs(t, err, &issues)
	assert.Equal(t, CodeInvalidLiteral, issues[0].Code)

	_, err = Decode(s, 1.0)
	require.Error(t, err)
}

func TestArrayDecode(t *testing.T) {
	s := Array(String())

	got, err := Decode(s, []any{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, got)

	// Typed slices decode too.
	got, err = Decode(s, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, got)

	_, err = Decode(s, []any{"a", 1.0, 2.0})
	var issues Issues
	require.ErrorAs(t, err, &issues)
	require.Len(t, issues, 2)
	assert.Equal(t, "[1]", issues[0].Path)
	assert.Equal(t, "[2]", issues[1].Path)

	_, err = Decode(s, "not an array")
	require.Error(t, err)
}

func TestUnionDecode(t *testing.T) {
	s := Union(String(), Number())

	got, err := Decode(s, "x")
	require.NoError(t, err)
	assert.Equal(t, "x", got)

	got, err = Decode(s, 3.0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)

	_, err = Decode(s, true)
	var issues Issues
	require.ErrorAs(t, err, &issues)
	assert.Equal(t, CodeInvalidUnion, issues[0].Code)
}

func TestNullable(t *testing.T) {
	s := Nullable(String())

	got, err := Decode(s, nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = Decode(s, "x")
	require.NoError(t, err)
	assert.Equal(t, "x", got)

	_, err = Decode(s, 1.0)
	require.Error(t, err)
}

func TestLengthBounds(t *testing.T) {
	s := MaxLen(String(), 3)

	_, err := Decode(s, "abcd")
	var issues Issues
	require.ErrorAs(t, err, &issues)
	assert.Equal(t, CodeTooLong, issues[0].Code)

	got, err := Decode(s, "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", got)

	s = MinLen(String(), 3)
	_, err = Decode(s, "ab")
	require.ErrorAs(t, err, &issues)
	assert.Equal(t, CodeTooShort, issues[0].Code)

	got, err = Decode(s, "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", got)

	// Multi-byte strings are measured in runes.
	got, err = Decode(MaxLen(String(), 2), "日本")
	require.NoError(t, err)
	assert.Equal(t, "日本", got)
}

func TestRangeBounds(t *testing.T) {
	s := Min(Max(Number(), 10), 0)

	got, err := Decode(s, 5.0)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)

	_, err = Decode(s, -1.0)
	var issues Issues
	require.ErrorAs(t, err, &issues)
	assert.Equal(t, CodeOutOfRange, issues[0].Code)

	_, err = Decode(s, 11.0)
	require.ErrorAs(t, err, &issues)
	assert.Equal(t, CodeOutOfRange, issues[0].Code)
}

func TestJSONValueShallow(t *testing.T) {
	s := JSONValue()

	valid := []any{
		"text",
		1.5,
		true,
		nil,
		map[string]any{"nested": map[string]any{"deep": func() {}}},
		[]any{"anything", func() {}},
	}
	for _, v := range valid {
		_, err := Decode(s, v)
		assert.NoError(t, err, "value %T should pass shallow validation", v)
	}

	// Non-JSON scalars at the top level still fail.
	_, err := Decode(s, struct{}{})
	require.Error(t, err)
}

func TestJSONValueDeep(t *testing.T) {
	s := JSONValueDeep()

	_, err := Decode(s, map[string]any{"a": []any{1.0, "x", map[string]any{"b": nil}}})
	require.NoError(t, err)

	// A non-JSON value nested deep inside fails, unlike the shallow schema.
	_, err = Decode(s, map[string]any{"a": []any{func() {}}})
	require.Error(t, err)

	_, err = DecodeLenient(s, map[string]any{"a": []any{}})
	require.NoError(t, err)
}

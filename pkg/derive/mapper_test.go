package derive

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Handfish/drizzle-effect/pkg/schema"
	"github.com/Handfish/drizzle-effect/pkg/table"
)

// mapped is a test helper decoding v against a column's base validator.
func mapped(t *testing.T, col table.Column, v any) (any, error) {
	t.Helper()
	return schema.Decode(mapColumn(col, zap.NewNop()), v)
}

func TestMapColumnKinds(t *testing.T) {
	tests := []struct {
		name    string
		col     table.Column
		accepts []any
		rejects []any
	}{
		{
			name:    "string",
			col:     table.Column{Name: "c", Kind: table.KindString},
			accepts: []any{"x", ""},
			rejects: []any{1.0, true, nil},
		},
		{
			name:    "number",
			col:     table.Column{Name: "c", Kind: table.KindNumber},
			accepts: []any{1.5, 0.0},
			rejects: []any{"1.5", nil},
		},
		{
			name:    "bigint",
			col:     table.Column{Name: "c", Kind: table.KindBigInt},
			accepts: []any{big.NewInt(1), int64(2)},
			rejects: []any{1.5, "2"},
		},
		{
			name:    "boolean",
			col:     table.Column{Name: "c", Kind: table.KindBoolean},
			accepts: []any{true, false},
			rejects: []any{"true", 1.0},
		},
		{
			name:    "date",
			col:     table.Column{Name: "c", Kind: table.KindDate},
			accepts: []any{time.Now()},
			rejects: []any{"2024-01-01", 1700000000.0},
		},
		{
			name:    "json is shallow",
			col:     table.Column{Name: "c", Kind: table.KindJSON},
			accepts: []any{"s", 1.0, true, nil, map[string]any{"k": struct{}{}}, []any{struct{}{}}},
			rejects: []any{struct{}{}},
		},
		{
			name:    "custom accepts anything",
			col:     table.Column{Name: "c", Kind: table.KindCustom},
			accepts: []any{nil, "x", 1.0, struct{}{}},
		},
		{
			name:    "unknown kind falls back to anything",
			col:     table.Column{Name: "c", Kind: table.DataKind("geometry")},
			accepts: []any{nil, "x", []any{1.0}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range tt.accepts {
				_, err := mapped(t, tt.col, v)
				assert.NoError(t, err, "value %#v should decode", v)
			}
			for _, v := range tt.rejects {
				_, err := mapped(t, tt.col, v)
				assert.Error(t, err, "value %#v should fail", v)
			}
		})
	}
}

func TestMapColumnEnumShortCircuitsKind(t *testing.T) {
	// Enum wins over kind dispatch even for non-string kinds.
	col := table.Column{Name: "c", Kind: table.KindNumber, EnumValues: []string{"one", "two"}}

	got, err := mapped(t, col, "one")
	require.NoError(t, err)
	assert.Equal(t, "one", got)

	_, err = mapped(t, col, 1.0)
	assert.Error(t, err)

	_, err = mapped(t, col, "three")
	assert.Error(t, err)
}

func TestMapColumnStringVariants(t *testing.T) {
	t.Run("varchar with max length", func(t *testing.T) {
		col := table.Column{Name: "c", Kind: table.KindString, Variant: table.VariantVarchar, MaxLength: 3}
		_, err := mapped(t, col, "abc")
		assert.NoError(t, err)
		_, err = mapped(t, col, "abcd")
		assert.Error(t, err)
	})

	t.Run("text ignores max length", func(t *testing.T) {
		col := table.Column{Name: "c", Kind: table.KindString, Variant: table.VariantText, MaxLength: 3}
		_, err := mapped(t, col, "abcdefg")
		assert.NoError(t, err)
	})

	t.Run("uuid", func(t *testing.T) {
		col := table.Column{Name: "c", Kind: table.KindString, Variant: table.VariantUUID}
		_, err := mapped(t, col, "0f0ec81c-5a71-4b29-8b2b-1013e5ad6677")
		assert.NoError(t, err)
		_, err = mapped(t, col, "not-a-uuid")
		assert.Error(t, err)
	})

	t.Run("date string", func(t *testing.T) {
		col := table.Column{Name: "c", Kind: table.KindString, Variant: table.VariantDateString}
		_, err := mapped(t, col, "2024-06-01")
		assert.NoError(t, err)
		_, err = mapped(t, col, "nope")
		assert.Error(t, err)
	})
}

func TestMapColumnNumberVariants(t *testing.T) {
	t.Run("bigint encoded as number", func(t *testing.T) {
		col := table.Column{Name: "c", Kind: table.KindNumber, Variant: table.VariantBigIntNumber}
		got, err := mapped(t, col, 42.0)
		require.NoError(t, err)
		assert.Zero(t, big.NewInt(42).Cmp(got.(*big.Int)))

		_, err = mapped(t, col, 1.5)
		assert.Error(t, err)
	})

	t.Run("decimal", func(t *testing.T) {
		col := table.Column{Name: "c", Kind: table.KindNumber, Variant: table.VariantDecimal}
		_, err := mapped(t, col, "19.99")
		assert.NoError(t, err)
		_, err = mapped(t, col, "abc")
		assert.Error(t, err)
	})
}

func TestMapColumnArray(t *testing.T) {
	col := table.Column{
		Name: "c",
		Kind: table.KindArray,
		Elem: &table.Column{Kind: table.KindString, EnumValues: []string{"a", "b"}},
	}

	_, err := mapped(t, col, []any{"a", "b", "a"})
	assert.NoError(t, err)

	_, err = mapped(t, col, []any{"a", "z"})
	assert.Error(t, err)

	// Array without an element descriptor degrades to array-of-anything.
	loose := table.Column{Name: "c", Kind: table.KindArray}
	_, err = mapped(t, loose, []any{1.0, "x", nil})
	assert.NoError(t, err)
	_, err = mapped(t, loose, "not-an-array")
	assert.Error(t, err)
}

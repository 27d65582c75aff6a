package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Handfish/drizzle-effect/pkg/table"
)

func TestColumnType(t *testing.T) {
	tests := []struct {
		name        string
		dataType    string
		udtName     string
		maxLength   int
		enumValues  []string
		wantKind    table.DataKind
		wantVariant table.TypeVariant
		wantMaxLen  int
	}{
		{name: "text", dataType: "text", udtName: "text", wantKind: table.KindString, wantVariant: table.VariantText},
		{name: "varchar", dataType: "character varying", udtName: "varchar", maxLength: 255, wantKind: table.KindString, wantVariant: table.VariantVarchar, wantMaxLen: 255},
		{name: "char", dataType: "character", udtName: "bpchar", maxLength: 2, wantKind: table.KindString, wantVariant: table.VariantChar, wantMaxLen: 2},
		{name: "uuid", dataType: "uuid", udtName: "uuid", wantKind: table.KindString, wantVariant: table.VariantUUID},
		{name: "smallint", dataType: "smallint", udtName: "int2", wantKind: table.KindNumber},
		{name: "integer", dataType: "integer", udtName: "int4", wantKind: table.KindNumber},
		{name: "real", dataType: "real", udtName: "float4", wantKind: table.KindNumber},
		{name: "double", dataType: "double precision", udtName: "float8", wantKind: table.KindNumber},
		{name: "numeric", dataType: "numeric", udtName: "numeric", wantKind: table.KindNumber, wantVariant: table.VariantDecimal},
		{name: "bigint", dataType: "bigint", udtName: "int8", wantKind: table.KindBigInt},
		{name: "boolean", dataType: "boolean", udtName: "bool", wantKind: table.KindBoolean},
		{name: "date", dataType: "date", udtName: "date", wantKind: table.KindDate},
		{name: "timestamp", dataType: "timestamp without time zone", udtName: "timestamp", wantKind: table.KindDate},
		{name: "timestamptz", dataType: "timestamp with time zone", udtName: "timestamptz", wantKind: table.KindDate},
		{name: "json", dataType: "json", udtName: "json", wantKind: table.KindJSON},
		{name: "jsonb", dataType: "jsonb", udtName: "jsonb", wantKind: table.KindJSON},
		{name: "bytea unmapped", dataType: "bytea", udtName: "bytea", wantKind: table.KindCustom},
		{name: "inet unmapped", dataType: "inet", udtName: "inet", wantKind: table.KindCustom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col := columnType(tt.dataType, tt.udtName, tt.maxLength, tt.enumValues)
			assert.Equal(t, tt.wantKind, col.Kind)
			assert.Equal(t, tt.wantVariant, col.Variant)
			assert.Equal(t, tt.wantMaxLen, col.MaxLength)
		})
	}
}

func TestColumnTypeEnum(t *testing.T) {
	col := columnType("USER-DEFINED", "mood", 0, []string{"happy", "sad"})
	assert.Equal(t, table.KindString, col.Kind)
	assert.Equal(t, []string{"happy", "sad"}, col.EnumValues)

	// User-defined types that are not enums stay custom.
	col = columnType("USER-DEFINED", "citext", 0, nil)
	assert.Equal(t, table.KindCustom, col.Kind)
}

func TestColumnTypeArray(t *testing.T) {
	tests := []struct {
		udtName     string
		wantKind    table.DataKind
		wantVariant table.TypeVariant
	}{
		{udtName: "_text", wantKind: table.KindString, wantVariant: table.VariantText},
		{udtName: "_int4", wantKind: table.KindNumber},
		{udtName: "_int8", wantKind: table.KindBigInt},
		{udtName: "_numeric", wantKind: table.KindNumber, wantVariant: table.VariantDecimal},
		{udtName: "_bool", wantKind: table.KindBoolean},
		{udtName: "_uuid", wantKind: table.KindString, wantVariant: table.VariantUUID},
		{udtName: "_timestamptz", wantKind: table.KindDate},
		{udtName: "_jsonb", wantKind: table.KindJSON},
		{udtName: "_point", wantKind: table.KindCustom},
	}
	for _, tt := range tests {
		t.Run(tt.udtName, func(t *testing.T) {
			col := columnType("ARRAY", tt.udtName, 0, nil)
			require.Equal(t, table.KindArray, col.Kind)
			require.NotNil(t, col.Elem)
			assert.Equal(t, tt.wantKind, col.Elem.Kind)
			assert.Equal(t, tt.wantVariant, col.Elem.Variant)
		})
	}
}

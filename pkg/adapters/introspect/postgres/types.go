package postgres

import (
	"strings"

	"github.com/Handfish/drizzle-effect/pkg/table"
)

// columnType translates a postgres column type into a descriptor's
// kind/variant/length/enum fields. Name, nullability, and default
// presence are filled by the caller. Unknown types become custom-kind,
// never errors.
func columnType(dataType, udtName string, maxLength int, enumValues []string) table.Column {
	if len(enumValues) > 0 {
		return table.Column{Kind: table.KindString, EnumValues: enumValues}
	}

	switch dataType {
	case "text":
		return table.Column{Kind: table.KindString, Variant: table.VariantText}
	case "character varying":
		return table.Column{Kind: table.KindString, Variant: table.VariantVarchar, MaxLength: maxLength}
	case "character":
		return table.Column{Kind: table.KindString, Variant: table.VariantChar, MaxLength: maxLength}
	case "uuid":
		return table.Column{Kind: table.KindString, Variant: table.VariantUUID}
	case "smallint", "integer", "real", "double precision":
		return table.Column{Kind: table.KindNumber}
	case "numeric":
		return table.Column{Kind: table.KindNumber, Variant: table.VariantDecimal}
	case "bigint":
		return table.Column{Kind: table.KindBigInt}
	case "boolean":
		return table.Column{Kind: table.KindBoolean}
	case "date", "timestamp without time zone", "timestamp with time zone":
		return table.Column{Kind: table.KindDate}
	case "json", "jsonb":
		return table.Column{Kind: table.KindJSON}
	case "ARRAY":
		elem := arrayElemType(udtName)
		return table.Column{Kind: table.KindArray, Elem: &elem}
	}

	return table.Column{Kind: table.KindCustom}
}

// arrayElemType maps a postgres array udt name (leading underscore, e.g.
// "_int4") to its element descriptor.
func arrayElemType(udtName string) table.Column {
	elem := strings.TrimPrefix(udtName, "_")
	switch elem {
	case "text", "name":
		return table.Column{Kind: table.KindString, Variant: table.VariantText}
	case "varchar":
		return table.Column{Kind: table.KindString, Variant: table.VariantVarchar}
	case "bpchar":
		return table.Column{Kind: table.KindString, Variant: table.VariantChar}
	case "uuid":
		return table.Column{Kind: table.KindString, Variant: table.VariantUUID}
	case "int2", "int4", "float4", "float8":
		return table.Column{Kind: table.KindNumber}
	case "numeric":
		return table.Column{Kind: table.KindNumber, Variant: table.VariantDecimal}
	case "int8":
		return table.Column{Kind: table.KindBigInt}
	case "bool":
		return table.Column{Kind: table.KindBoolean}
	case "date", "timestamp", "timestamptz":
		return table.Column{Kind: table.KindDate}
	case "json", "jsonb":
		return table.Column{Kind: table.KindJSON}
	}
	return table.Column{Kind: table.KindCustom}
}

package mssql

import "github.com/Handfish/drizzle-effect/pkg/table"

// columnType translates a SQL Server type name into a descriptor's
// kind/variant/length fields. maxLength arrives in bytes; n(var)char
// types store two bytes per character, and -1 means (max).
func columnType(dataType string, maxLength int) table.Column {
	switch dataType {
	case "varchar":
		return table.Column{Kind: table.KindString, Variant: table.VariantVarchar, MaxLength: boundedLength(maxLength, 1)}
	case "nvarchar":
		return table.Column{Kind: table.KindString, Variant: table.VariantVarchar, MaxLength: boundedLength(maxLength, 2)}
	case "char":
		return table.Column{Kind: table.KindString, Variant: table.VariantChar, MaxLength: boundedLength(maxLength, 1)}
	case "nchar":
		return table.Column{Kind: table.KindString, Variant: table.VariantChar, MaxLength: boundedLength(maxLength, 2)}
	case "text", "ntext":
		return table.Column{Kind: table.KindString, Variant: table.VariantText}
	case "uniqueidentifier":
		return table.Column{Kind: table.KindString, Variant: table.VariantUUID}
	case "tinyint", "smallint", "int", "real", "float":
		return table.Column{Kind: table.KindNumber}
	case "decimal", "numeric", "money", "smallmoney":
		return table.Column{Kind: table.KindNumber, Variant: table.VariantDecimal}
	case "bigint":
		return table.Column{Kind: table.KindBigInt}
	case "bit":
		return table.Column{Kind: table.KindBoolean}
	case "date", "datetime", "datetime2", "smalldatetime", "datetimeoffset":
		return table.Column{Kind: table.KindDate}
	case "time":
		return table.Column{Kind: table.KindString}
	}
	return table.Column{Kind: table.KindCustom}
}

// boundedLength converts sys.columns.max_length bytes to a character
// bound. -1 ((max) types) means unbounded.
func boundedLength(maxLength, bytesPerChar int) int {
	if maxLength <= 0 {
		return 0
	}
	return maxLength / bytesPerChar
}

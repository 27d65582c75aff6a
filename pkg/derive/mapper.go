package derive

import (
	"go.uber.org/zap"

	"github.com/Handfish/drizzle-effect/pkg/schema"
	"github.com/Handfish/drizzle-effect/pkg/table"
)

// mapColumn translates a column descriptor into its base validator,
// independent of insert/select mode. It is total: descriptors that match
// nothing degrade to the accept-anything validator rather than failing.
//
// Dispatch order matters. An enum declaration short-circuits kind
// dispatch entirely, and variant checks happen inside their kind's arm.
func mapColumn(col table.Column, logger *zap.Logger) schema.Schema {
	if len(col.EnumValues) > 0 {
		return schema.Literal(col.EnumValues...)
	}

	switch col.Kind {
	case table.KindCustom:
		return schema.Any()

	case table.KindJSON:
		return schema.JSONValue()

	case table.KindArray:
		if col.Elem == nil {
			logger.Debug("array column has no element descriptor, falling back to permissive schema",
				zap.String("column", col.Name))
			return schema.Array(schema.Any())
		}
		return schema.Array(mapColumn(*col.Elem, logger))

	case table.KindNumber:
		switch col.Variant {
		case table.VariantBigIntNumber:
			return schema.BigIntNumber()
		case table.VariantDecimal:
			return schema.Decimal()
		}
		return schema.Number()

	case table.KindBigInt:
		return schema.BigInt()

	case table.KindBoolean:
		return schema.Bool()

	case table.KindDate:
		if col.Variant == table.VariantDateString {
			return schema.DateString()
		}
		return schema.Date()

	case table.KindString:
		switch col.Variant {
		case table.VariantUUID:
			return schema.UUID()
		case table.VariantDateString:
			return schema.DateString()
		case table.VariantChar, table.VariantVarchar:
			if col.MaxLength > 0 {
				return schema.MaxLen(schema.String(), col.MaxLength)
			}
		}
		return schema.String()
	}

	logger.Debug("unmapped column kind, falling back to permissive schema",
		zap.String("column", col.Name),
		zap.String("kind", string(col.Kind)))
	return schema.Any()
}

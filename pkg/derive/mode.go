package derive

import (
	"github.com/Handfish/drizzle-effect/pkg/schema"
	"github.com/Handfish/drizzle-effect/pkg/table"
)

// mode selects the optionality policy for a derivation.
type mode int

const (
	// modeInsert models what a caller may omit when writing a new row:
	// storage fills defaults and nullable columns.
	modeInsert mode = iota
	// modeSelect models a row read back from storage: every column key
	// is present, nullable columns merely carry null.
	modeSelect
)

// applyMode wraps a column's base validator per the optionality rules of
// the given mode. Default presence only matters on insert; a persisted
// row always has a value for the column.
func applyMode(m mode, col table.Column, base schema.Schema) schema.Schema {
	switch m {
	case modeInsert:
		if col.Nullable {
			return schema.Optional(schema.Nullable(base))
		}
		if col.HasDefault {
			return schema.Optional(base)
		}
		return base
	case modeSelect:
		if col.Nullable {
			return schema.Nullable(base)
		}
		return base
	}
	return base
}

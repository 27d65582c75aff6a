// Package derive turns table descriptors into runtime validation
// schemas, so insert and select payloads can be validated against the
// same shape the table enforces.
//
// Two entry points exist. InsertSchema models what a caller may omit
// when writing a new row: nullable columns become optional and nullable,
// defaulted columns become optional. SelectSchema models a row read back
// from storage: every column key is present, nullable columns merely
// allow null.
//
// Callers can override the derived validator per column with
// refinements; see Fixed and Derived. Derivation is pure computation
// over an in-memory descriptor, and the returned schema is immutable,
// so everything here is safe for concurrent use.
package derive

import (
	"go.uber.org/zap"

	"github.com/Handfish/drizzle-effect/pkg/schema"
	"github.com/Handfish/drizzle-effect/pkg/table"
)

// Option configures a derivation call.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger used for mapping-fallback diagnostics.
// Without it derivation is silent.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// InsertSchema derives the validator for rows being written to t.
// Refinements may be nil. The returned schema has exactly one field per
// column, in the table's declared order.
func InsertSchema(t *table.Table, refinements map[string]Refinement, opts ...Option) (schema.Schema, error) {
	return deriveSchema(modeInsert, t, refinements, opts)
}

// SelectSchema derives the validator for rows read back from t.
// Refinements may be nil.
func SelectSchema(t *table.Table, refinements map[string]Refinement, opts ...Option) (schema.Schema, error) {
	return deriveSchema(modeSelect, t, refinements, opts)
}

func deriveSchema(m mode, t *table.Table, refinements map[string]Refinement, opts []Option) (schema.Schema, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	cols := t.Columns()
	auto := make(map[string]schema.Schema, len(cols))
	for _, col := range cols {
		auto[col.Name] = mapColumn(col, o.logger)
	}

	merged, funcRefined, err := mergeRefinements(t, auto, refinements)
	if err != nil {
		return nil, err
	}

	fields := make([]schema.Field, 0, len(cols))
	for _, col := range cols {
		s := merged[col.Name]
		if !funcRefined[col.Name] {
			s = applyMode(m, col, s)
		}
		fields = append(fields, schema.Field{Name: col.Name, Schema: s})
	}

	return schema.Object(fields...), nil
}

// Package table models database table and column descriptors: the
// read-only metadata from which validation schemas are derived. A
// descriptor carries a column's data kind, a backend-specific type
// variant, nullability, default presence, enum values, and length
// constraints; it says nothing about how to validate. That mapping
// lives in pkg/derive.
package table

import (
	"fmt"
	"slices"

	"github.com/Handfish/drizzle-effect/pkg/apperrors"
)

// DataKind is the closed set of fundamental value categories a column
// can declare.
type DataKind string

const (
	KindString  DataKind = "string"
	KindNumber  DataKind = "number"
	KindBigInt  DataKind = "bigint"
	KindBoolean DataKind = "boolean"
	KindDate    DataKind = "date"
	KindJSON    DataKind = "json"
	KindArray   DataKind = "array"
	KindCustom  DataKind = "custom"
)

// ValidDataKinds contains all valid data kind values.
var ValidDataKinds = []DataKind{
	KindString,
	KindNumber,
	KindBigInt,
	KindBoolean,
	KindDate,
	KindJSON,
	KindArray,
	KindCustom,
}

// IsValidDataKind checks if the given kind is valid.
func IsValidDataKind(k DataKind) bool {
	return slices.Contains(ValidDataKinds, k)
}

// TypeVariant refines a data kind with backend-specific storage detail
// that changes the derived validator: bounded text, uuid-formatted text,
// string-encoded dates, number-encoded big integers, decimals.
type TypeVariant string

const (
	VariantNone         TypeVariant = ""
	VariantVarchar      TypeVariant = "varchar"
	VariantChar         TypeVariant = "char"
	VariantText         TypeVariant = "text"
	VariantUUID         TypeVariant = "uuid"
	VariantDateString   TypeVariant = "date_string"
	VariantBigIntNumber TypeVariant = "bigint_number"
	VariantDecimal      TypeVariant = "decimal"
)

// ValidTypeVariants contains all valid type variant values.
var ValidTypeVariants = []TypeVariant{
	VariantNone,
	VariantVarchar,
	VariantChar,
	VariantText,
	VariantUUID,
	VariantDateString,
	VariantBigIntNumber,
	VariantDecimal,
}

// IsValidTypeVariant checks if the given variant is valid.
func IsValidTypeVariant(v TypeVariant) bool {
	return slices.Contains(ValidTypeVariants, v)
}

// Column describes one table column. Zero values are meaningful: a
// column with no Variant, no EnumValues, and MaxLength 0 is an
// unconstrained instance of its Kind.
type Column struct {
	Name       string
	Kind       DataKind
	Variant    TypeVariant
	Nullable   bool
	HasDefault bool

	// EnumValues, when non-empty, restricts the column to exactly these
	// string literals regardless of Kind.
	EnumValues []string

	// MaxLength is the declared length bound for bounded-text variants.
	// Zero means unbounded.
	MaxLength int

	// Elem describes the element type of an array-kind column.
	Elem *Column
}

// Table is an ordered collection of column descriptors. Column order is
// preserved into derived schemas.
type Table struct {
	name    string
	columns []Column
	index   map[string]int
}

// New builds a table descriptor from columns in declaration order.
// Duplicate column names are rejected.
func New(name string, columns ...Column) (*Table, error) {
	t := &Table{
		name:    name,
		columns: slices.Clone(columns),
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		if _, exists := t.index[c.Name]; exists {
			return nil, fmt.Errorf("table %s: column %q: %w", name, c.Name, apperrors.ErrDuplicateColumn)
		}
		t.index[c.Name] = i
	}
	return t, nil
}

// MustNew is New for statically known descriptors; it panics on error.
func MustNew(name string, columns ...Column) *Table {
	t, err := New(name, columns...)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// Columns returns the column descriptors in declaration order. The
// returned slice is a copy; the table itself is immutable.
func (t *Table) Columns() []Column {
	return slices.Clone(t.columns)
}

// Column returns the descriptor for name, if present.
func (t *Table) Column(name string) (Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return Column{}, false
	}
	return t.columns[i], true
}

// Has reports whether the table declares a column with the given name.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Len returns the number of columns.
func (t *Table) Len() int { return len(t.columns) }

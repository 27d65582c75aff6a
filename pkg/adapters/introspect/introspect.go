// Package introspect builds table descriptors from live databases. Each
// backend registers itself under a kind string; importing a backend
// package (usually with a blank import) makes it available through New:
//
//	import _ "github.com/Handfish/drizzle-effect/pkg/adapters/introspect/postgres"
//
//	d, err := introspect.New(ctx, "postgres", dsn, logger)
//	t, err := d.DiscoverTable(ctx, "public", "users")
//	insert, err := derive.InsertSchema(t, nil)
package introspect

import (
	"context"
	"strings"

	"github.com/jinzhu/inflection"
	"go.uber.org/zap"

	"github.com/Handfish/drizzle-effect/pkg/table"
)

// TableMetadata identifies a discovered table.
type TableMetadata struct {
	SchemaName string
	TableName  string
	RowCount   int64
}

// QualifiedName returns "schema.table", or just the table name when no
// schema applies.
func (m TableMetadata) QualifiedName() string {
	if m.SchemaName == "" {
		return m.TableName
	}
	return m.SchemaName + "." + m.TableName
}

// EntityName suggests a Go-style entity name for the table:
// singularized and capitalized ("public.users" -> "User").
func (m TableMetadata) EntityName() string {
	name := inflection.Singular(m.TableName)
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// Discoverer reads table and column metadata from one database.
type Discoverer interface {
	// DiscoverTables lists all user tables, excluding system schemas.
	DiscoverTables(ctx context.Context) ([]TableMetadata, error)

	// DiscoverTable builds the descriptor for one table. Column types
	// with no mapping become custom-kind descriptors, never errors.
	DiscoverTable(ctx context.Context, schemaName, tableName string) (*table.Table, error)

	// SupportsEnums reports whether the backend has native enum types
	// whose labels can populate Column.EnumValues.
	SupportsEnums() bool

	Close() error
}

// Factory creates a Discoverer from a connection string. A nil logger
// means no logging.
type Factory func(ctx context.Context, dsn string, logger *zap.Logger) (Discoverer, error)

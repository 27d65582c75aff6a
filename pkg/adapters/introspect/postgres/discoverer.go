// Package postgres introspects PostgreSQL databases into table
// descriptors. Register it with a blank import.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Handfish/drizzle-effect/pkg/adapters/introspect"
	"github.com/Handfish/drizzle-effect/pkg/table"
)

// Discoverer provides PostgreSQL schema discovery.
type Discoverer struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewDiscoverer connects to dsn and returns a discoverer. If logger is
// nil, a no-op logger is used.
func NewDiscoverer(ctx context.Context, dsn string, logger *zap.Logger) (*Discoverer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	return &Discoverer{pool: pool, logger: logger}, nil
}

// Close releases the connection pool.
func (d *Discoverer) Close() error {
	if d.pool != nil {
		d.pool.Close()
	}
	return nil
}

// SupportsEnums returns true; PostgreSQL enum labels populate
// Column.EnumValues.
func (d *Discoverer) SupportsEnums() bool {
	return true
}

// DiscoverTables returns all user tables (excludes system schemas).
func (d *Discoverer) DiscoverTables(ctx context.Context) ([]introspect.TableMetadata, error) {
	const query = `
		SELECT
			t.table_schema,
			t.table_name,
			COALESCE(c.reltuples::bigint, 0) as row_count
		FROM information_schema.tables t
		LEFT JOIN pg_class c ON c.relname = t.table_name
		LEFT JOIN pg_namespace n ON n.oid = c.relnamespace AND n.nspname = t.table_schema
		WHERE t.table_type = 'BASE TABLE'
		  AND t.table_schema NOT IN ('pg_catalog', 'information_schema', 'pg_toast')
		ORDER BY t.table_schema, t.table_name
	`

	rows, err := d.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query tables: %w", err)
	}
	defer rows.Close()

	var tables []introspect.TableMetadata
	for rows.Next() {
		var t introspect.TableMetadata
		if err := rows.Scan(&t.SchemaName, &t.TableName, &t.RowCount); err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		tables = append(tables, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tables: %w", err)
	}

	return tables, nil
}

// rawColumn is one information_schema.columns row.
type rawColumn struct {
	name       string
	dataType   string
	udtName    string
	nullable   bool
	hasDefault bool
	maxLength  int
}

// DiscoverTable builds the descriptor for one table, with columns in
// ordinal position order. Unrecognized column types map to custom-kind
// descriptors.
func (d *Discoverer) DiscoverTable(ctx context.Context, schemaName, tableName string) (*table.Table, error) {
	const query = `
		SELECT
			c.column_name,
			c.data_type,
			c.udt_name,
			c.is_nullable = 'YES' as is_nullable,
			c.column_default IS NOT NULL as has_default,
			COALESCE(c.character_maximum_length, 0) as max_length
		FROM information_schema.columns c
		WHERE c.table_schema = $1 AND c.table_name = $2
		ORDER BY c.ordinal_position
	`

	rows, err := d.pool.Query(ctx, query, schemaName, tableName)
	if err != nil {
		return nil, fmt.Errorf("query columns: %w", err)
	}
	defer rows.Close()

	var raw []rawColumn
	for rows.Next() {
		var rc rawColumn
		if err := rows.Scan(&rc.name, &rc.dataType, &rc.udtName, &rc.nullable, &rc.hasDefault, &rc.maxLength); err != nil {
			return nil, fmt.Errorf("scan column: %w", err)
		}
		raw = append(raw, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate columns: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("table %s.%s has no columns (does it exist?)", schemaName, tableName)
	}

	columns := make([]table.Column, 0, len(raw))
	for _, rc := range raw {
		var enumValues []string
		if rc.dataType == "USER-DEFINED" {
			enumValues, err = d.enumLabels(ctx, rc.udtName)
			if err != nil {
				return nil, err
			}
		}

		col := columnType(rc.dataType, rc.udtName, rc.maxLength, enumValues)
		col.Name = rc.name
		col.Nullable = rc.nullable
		col.HasDefault = rc.hasDefault
		if col.Kind == table.KindCustom {
			d.logger.Debug("column type has no mapping, treating as custom",
				zap.String("table", tableName),
				zap.String("column", rc.name),
				zap.String("data_type", rc.dataType),
				zap.String("udt_name", rc.udtName))
		}
		columns = append(columns, col)
	}

	return table.New(fmt.Sprintf("%s.%s", schemaName, tableName), columns...)
}

// enumLabels returns the labels of a postgres enum type in declaration
// order, or nil when the type is not an enum.
func (d *Discoverer) enumLabels(ctx context.Context, typeName string) ([]string, error) {
	const query = `
		SELECT e.enumlabel
		FROM pg_type t
		JOIN pg_enum e ON e.enumtypid = t.oid
		WHERE t.typname = $1
		ORDER BY e.enumsortorder
	`

	rows, err := d.pool.Query(ctx, query, typeName)
	if err != nil {
		return nil, fmt.Errorf("query enum labels for %q: %w", typeName, err)
	}
	defer rows.Close()

	var labels []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("scan enum label: %w", err)
		}
		labels = append(labels, label)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate enum labels: %w", err)
	}

	return labels, nil
}

// Ensure Discoverer implements introspect.Discoverer at compile time.
var _ introspect.Discoverer = (*Discoverer)(nil)

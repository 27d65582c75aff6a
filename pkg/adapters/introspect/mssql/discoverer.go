// Package mssql introspects SQL Server databases into table descriptors.
// Register it with a blank import.
package mssql

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/microsoft/go-mssqldb" // sqlserver driver
	"go.uber.org/zap"

	"github.com/Handfish/drizzle-effect/pkg/adapters/introspect"
	"github.com/Handfish/drizzle-effect/pkg/table"
)

// Discoverer provides SQL Server schema discovery.
type Discoverer struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewDiscoverer connects to dsn and returns a discoverer. If logger is
// nil, a no-op logger is used.
func NewDiscoverer(ctx context.Context, dsn string, logger *zap.Logger) (*Discoverer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open("sqlserver", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlserver connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlserver: %w", err)
	}

	return &Discoverer{db: db, logger: logger}, nil
}

// Close releases the connection pool.
func (d *Discoverer) Close() error {
	return d.db.Close()
}

// SupportsEnums returns false; SQL Server has no native enum type.
func (d *Discoverer) SupportsEnums() bool {
	return false
}

// DiscoverTables returns all user tables (excludes system tables).
func (d *Discoverer) DiscoverTables(ctx context.Context) ([]introspect.TableMetadata, error) {
	const query = `
	SET NOCOUNT ON;
	SELECT
	    SCHEMA_NAME(t.schema_id) AS table_schema,
	    t.name AS table_name,
	    SUM(p.rows) AS row_count
	FROM sys.tables t
	INNER JOIN sys.partitions p ON t.object_id = p.object_id
	WHERE p.index_id IN (0, 1)
	  AND t.is_ms_shipped = 0
	GROUP BY t.schema_id, t.name
	ORDER BY table_schema, table_name
	`

	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query tables: %w", err)
	}
	defer rows.Close()

	var tables []introspect.TableMetadata
	for rows.Next() {
		var t introspect.TableMetadata
		if err := rows.Scan(&t.SchemaName, &t.TableName, &t.RowCount); err != nil {
			return nil, fmt.Errorf("scan table row: %w", err)
		}
		tables = append(tables, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate table rows: %w", err)
	}

	return tables, nil
}

// DiscoverTable builds the descriptor for one table, with columns in
// column_id order. Unrecognized column types map to custom-kind
// descriptors.
func (d *Discoverer) DiscoverTable(ctx context.Context, schemaName, tableName string) (*table.Table, error) {
	const query = `
	SET NOCOUNT ON;
	SELECT
	    c.name AS column_name,
	    tp.name AS data_type,
	    CASE WHEN c.is_nullable = 1 THEN 1 ELSE 0 END AS is_nullable,
	    CASE WHEN c.default_object_id != 0 OR c.is_identity = 1 THEN 1 ELSE 0 END AS has_default,
	    c.max_length,
	    c.precision
	FROM sys.columns c
	INNER JOIN sys.types tp ON c.user_type_id = tp.user_type_id
	WHERE c.object_id = OBJECT_ID(QUOTENAME(@schema) + N'.' + QUOTENAME(@table))
	ORDER BY c.column_id
	`

	rows, err := d.db.QueryContext(ctx, query,
		sql.Named("schema", schemaName),
		sql.Named("table", tableName),
	)
	if err != nil {
		return nil, fmt.Errorf("query columns: %w", err)
	}
	defer rows.Close()

	var columns []table.Column
	for rows.Next() {
		var (
			name       string
			dataType   string
			nullable   bool
			hasDefault bool
			maxLength  int
			precision  int
		)
		if err := rows.Scan(&name, &dataType, &nullable, &hasDefault, &maxLength, &precision); err != nil {
			return nil, fmt.Errorf("scan column row: %w", err)
		}

		col := columnType(dataType, maxLength)
		col.Name = name
		col.Nullable = nullable
		col.HasDefault = hasDefault
		if col.Kind == table.KindCustom {
			d.logger.Debug("column type has no mapping, treating as custom",
				zap.String("table", tableName),
				zap.String("column", name),
				zap.String("data_type", dataType))
		}
		columns = append(columns, col)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate column rows: %w", err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("table %s.%s has no columns (does it exist?)", schemaName, tableName)
	}

	return table.New(fmt.Sprintf("%s.%s", schemaName, tableName), columns...)
}

// Ensure Discoverer implements introspect.Discoverer at compile time.
var _ introspect.Discoverer = (*Discoverer)(nil)

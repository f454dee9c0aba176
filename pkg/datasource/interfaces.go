// Package datasource provides database access for schema extraction and
// query execution.
package datasource

import "context"

// Table represents a database table.
type Table struct {
	Schema string
	Name   string
}

// Column represents a database column.
type Column struct {
	Name     string
	DataType string
}

// QueryResult contains the results of a SQL query execution. Rows hold
// driver values in column order.
type QueryResult struct {
	Columns []string
	Rows    [][]any
}

// SchemaExtractor extracts database schema information for grounding SQL
// generation.
type SchemaExtractor interface {
	// GetTables returns all user tables in catalog order.
	GetTables(ctx context.Context) ([]Table, error)

	// GetColumns returns the columns of a table in ordinal order.
	GetColumns(ctx context.Context, table Table) ([]Column, error)
}

// SQLExecutor executes SQL statements against the database. Errors are
// propagated to the caller; converting them into user-facing diagnostics is
// the pipeline's concern.
type SQLExecutor interface {
	Execute(ctx context.Context, query string) (*QueryResult, error)
}

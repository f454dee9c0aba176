package datasource

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Postgres provides schema extraction and query execution over a pgx pool.
// One instance is acquired at startup and held for the process lifetime.
type Postgres struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

var (
	_ SchemaExtractor = (*Postgres)(nil)
	_ SQLExecutor     = (*Postgres)(nil)
)

// Connect opens a connection pool and verifies it with a ping. A failure
// here is fatal to the session; callers must Close on shutdown.
func Connect(ctx context.Context, connString string, logger *zap.Logger) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Postgres{pool: pool, logger: logger.Named("datasource")}, nil
}

// Close releases the connection pool.
func (p *Postgres) Close() {
	p.pool.Close()
}

// GetTables returns all user tables, excluding system schemas.
func (p *Postgres) GetTables(ctx context.Context) ([]Table, error) {
	const query = `
		SELECT table_schema, table_name
		FROM information_schema.tables
		WHERE table_type = 'BASE TABLE'
		  AND table_schema NOT IN ('pg_catalog', 'information_schema', 'pg_toast')
		ORDER BY table_schema, table_name`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query tables: %w", err)
	}
	defer rows.Close()

	var tables []Table
	for rows.Next() {
		var t Table
		if err := rows.Scan(&t.Schema, &t.Name); err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		tables = append(tables, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tables: %w", err)
	}

	p.logger.Debug("tables listed", zap.Int("count", len(tables)))
	return tables, nil
}

// GetColumns returns the columns of a table in ordinal order.
func (p *Postgres) GetColumns(ctx context.Context, table Table) ([]Column, error) {
	const query = `
		SELECT column_name, data_type
		FROM information_schema.columns
		WHERE table_schema = $1 AND table_name = $2
		ORDER BY ordinal_position`

	rows, err := p.pool.Query(ctx, query, table.Schema, table.Name)
	if err != nil {
		return nil, fmt.Errorf("query columns for %s: %w", table.Name, err)
	}
	defer rows.Close()

	var columns []Column
	for rows.Next() {
		var c Column
		if err := rows.Scan(&c.Name, &c.DataType); err != nil {
			return nil, fmt.Errorf("scan column: %w", err)
		}
		columns = append(columns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate columns: %w", err)
	}

	return columns, nil
}

// Execute runs a statement and collects every row. Column names come from
// the result field descriptions, values from pgx driver decoding.
func (p *Postgres) Execute(ctx context.Context, query string) (*QueryResult, error) {
	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("execute query: %w", err)
	}
	defer rows.Close()

	fieldDescs := rows.FieldDescriptions()
	columns := make([]string, len(fieldDescs))
	for i, fd := range fieldDescs {
		columns[i] = string(fd.Name)
	}

	var collected [][]any
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("read row values: %w", err)
		}
		collected = append(collected, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return &QueryResult{Columns: columns, Rows: collected}, nil
}

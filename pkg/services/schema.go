// Package services implements the question/answer pipeline: schema
// description, SQL generation, gated execution, result formatting and
// natural-language answering.
package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/askdb/askdb/pkg/datasource"
	"github.com/askdb/askdb/pkg/prompts"
)

// SchemaService renders the textual schema description for a database.
type SchemaService struct {
	extractor datasource.SchemaExtractor
	logger    *zap.Logger
}

// NewSchemaService creates a schema service over a schema extractor.
func NewSchemaService(extractor datasource.SchemaExtractor, logger *zap.Logger) *SchemaService {
	return &SchemaService{extractor: extractor, logger: logger}
}

// Describe loads the catalog and renders the schema description. It runs
// once at startup; a failure here is fatal to the session, so errors
// propagate to the caller.
func (s *SchemaService) Describe(ctx context.Context, databaseName string) (string, error) {
	tables, err := s.extractor.GetTables(ctx)
	if err != nil {
		return "", fmt.Errorf("list tables: %w", err)
	}

	tableSchemas := make([]prompts.TableSchema, 0, len(tables))
	for _, table := range tables {
		columns, err := s.extractor.GetColumns(ctx, table)
		if err != nil {
			return "", fmt.Errorf("list columns for %s: %w", table.Name, err)
		}

		ts := prompts.TableSchema{Name: table.Name}
		for _, col := range columns {
			ts.Columns = append(ts.Columns, prompts.ColumnSchema{
				Name:     col.Name,
				DataType: col.DataType,
			})
		}
		tableSchemas = append(tableSchemas, ts)
	}

	s.logger.Info("schema described",
		zap.String("database", databaseName),
		zap.Int("tables", len(tableSchemas)))

	return prompts.BuildSchemaDescription(databaseName, tableSchemas), nil
}

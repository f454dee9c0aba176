package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/askdb/askdb/pkg/datasource"
	"github.com/askdb/askdb/pkg/logging"
	"github.com/askdb/askdb/pkg/sqlguard"
)

// Sentinel messages carried through the pipeline as data.
const (
	msgNotSelect          = "The SQL statement must be a SELECT query."
	msgMultipleStatements = "Only a single SQL statement is allowed."
	msgNoResults          = "No results found."
	msgExecutionErrPrefix = "Error executing the SQL query: "
)

// Executor runs generated statements behind the read-only gate.
type Executor struct {
	db     datasource.SQLExecutor
	logger *zap.Logger
}

// NewExecutor creates an executor over a SQL executor.
func NewExecutor(db datasource.SQLExecutor, logger *zap.Logger) *Executor {
	return &Executor{db: db, logger: logger}
}

// Run validates and executes a generated statement. Failures never
// propagate: rejected statements, execution errors and empty results all
// come back as diagnostic outcomes. This is the primary defense against
// hallucinated SQL.
func (e *Executor) Run(ctx context.Context, statement string) Outcome {
	normalized, err := sqlguard.ValidateReadOnly(statement)
	if err != nil {
		e.logger.Warn("statement rejected",
			zap.String("statement", logging.SanitizeQuery(statement)),
			zap.Error(err))
		if errors.Is(err, sqlguard.ErrMultipleStatements) {
			return DiagnosticOutcome(msgMultipleStatements)
		}
		return DiagnosticOutcome(msgNotSelect)
	}

	result, err := e.db.Execute(ctx, normalized)
	if err != nil {
		e.logger.Warn("query failed",
			zap.String("statement", logging.SanitizeQuery(normalized)),
			zap.Error(err))
		return DiagnosticOutcome(msgExecutionErrPrefix + logging.SanitizeError(err))
	}

	if len(result.Rows) == 0 {
		return DiagnosticOutcome(msgNoResults)
	}
	return RowsOutcome(result)
}

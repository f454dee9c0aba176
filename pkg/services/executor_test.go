package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/askdb/askdb/pkg/datasource"
)

// fakeDB is a scriptable datasource.SQLExecutor.
type fakeDB struct {
	result *datasource.QueryResult
	err    error

	calls         int
	lastStatement string
}

func (f *fakeDB) Execute(ctx context.Context, query string) (*datasource.QueryResult, error) {
	f.calls++
	f.lastStatement = query
	return f.result, f.err
}

func TestExecutor_RejectsNonSelectWithoutTouchingDatabase(t *testing.T) {
	db := &fakeDB{}
	executor := NewExecutor(db, zap.NewNop())

	for _, statement := range []string{
		"DELETE FROM users;",
		"UPDATE users SET name = 'x'",
		"DROP TABLE users",
		"not sql at all",
	} {
		outcome := executor.Run(context.Background(), statement)
		assert.True(t, outcome.IsDiagnostic())
		assert.Equal(t, msgNotSelect, outcome.Diagnostic())
	}
	assert.Zero(t, db.calls, "rejected statements must never reach the database")
}

func TestExecutor_RejectsStackedStatements(t *testing.T) {
	db := &fakeDB{}
	executor := NewExecutor(db, zap.NewNop())

	outcome := executor.Run(context.Background(), "SELECT 1; DROP TABLE users;")

	assert.True(t, outcome.IsDiagnostic())
	assert.Equal(t, msgMultipleStatements, outcome.Diagnostic())
	assert.Zero(t, db.calls)
}

func TestExecutor_ExecutionErrorBecomesDiagnostic(t *testing.T) {
	db := &fakeDB{err: errors.New(`relation "ghosts" does not exist`)}
	executor := NewExecutor(db, zap.NewNop())

	outcome := executor.Run(context.Background(), "SELECT * FROM ghosts")

	assert.True(t, outcome.IsDiagnostic())
	assert.Contains(t, outcome.Diagnostic(), msgExecutionErrPrefix)
	assert.Contains(t, outcome.Diagnostic(), "ghosts")
}

func TestExecutor_EmptyResultBecomesDiagnostic(t *testing.T) {
	db := &fakeDB{result: &datasource.QueryResult{Columns: []string{"id"}}}
	executor := NewExecutor(db, zap.NewNop())

	outcome := executor.Run(context.Background(), "SELECT id FROM users WHERE false")

	assert.True(t, outcome.IsDiagnostic())
	assert.Equal(t, msgNoResults, outcome.Diagnostic())
}

func TestExecutor_RowsPassThroughNormalized(t *testing.T) {
	result := &datasource.QueryResult{
		Columns: []string{"count"},
		Rows:    [][]any{{int64(42)}},
	}
	db := &fakeDB{result: result}
	executor := NewExecutor(db, zap.NewNop())

	outcome := executor.Run(context.Background(), "SELECT COUNT(*) FROM users;")

	assert.False(t, outcome.IsDiagnostic())
	assert.Same(t, result, outcome.Rows())
	assert.Equal(t, "SELECT COUNT(*) FROM users", db.lastStatement, "trailing semicolon should be stripped")
}

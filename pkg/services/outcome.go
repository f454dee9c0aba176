package services

import "github.com/askdb/askdb/pkg/datasource"

// Outcome is the result of running a generated statement: either data rows
// or a single human-readable diagnostic. The diagnostic flows through the
// rest of the pipeline as if it were data, so a failed or empty query still
// yields a natural-language answer.
type Outcome struct {
	rows       *datasource.QueryResult
	diagnostic string
}

// RowsOutcome wraps query rows.
func RowsOutcome(rows *datasource.QueryResult) Outcome {
	return Outcome{rows: rows}
}

// DiagnosticOutcome wraps a human-readable status or error message.
func DiagnosticOutcome(message string) Outcome {
	return Outcome{diagnostic: message}
}

// IsDiagnostic reports whether the outcome carries a diagnostic message
// instead of rows.
func (o Outcome) IsDiagnostic() bool {
	return o.rows == nil
}

// Rows returns the query rows; nil for diagnostic outcomes.
func (o Outcome) Rows() *datasource.QueryResult {
	return o.rows
}

// Diagnostic returns the diagnostic message; empty for row outcomes.
func (o Outcome) Diagnostic() string {
	return o.diagnostic
}

package services

import (
	"fmt"
	"strings"
)

// FormatResult renders an outcome as compact text. Diagnostics render as-is;
// a single row renders as its comma-joined values (a lone scalar renders
// bare); multiple rows render as a 1-indexed list, one line per row.
func FormatResult(o Outcome) string {
	if o.IsDiagnostic() {
		return o.Diagnostic()
	}

	rows := o.Rows().Rows
	if len(rows) == 1 {
		return joinRow(rows[0])
	}

	var b strings.Builder
	for i, row := range rows {
		fmt.Fprintf(&b, "%d. %s\n", i+1, joinRow(row))
	}
	return strings.TrimRight(b.String(), "\n")
}

// joinRow renders row values comma-joined via their default string form.
func joinRow(row []any) string {
	values := make([]string, len(row))
	for i, v := range row {
		values[i] = fmt.Sprintf("%v", v)
	}
	return strings.Join(values, ", ")
}

// Package sqlguard enforces the read-only policy on model-generated SQL.
package sqlguard

import (
	"errors"
	"regexp"
	"strings"
)

// StatementType classifies a SQL statement by its leading keyword.
type StatementType string

const (
	StatementSelect  StatementType = "SELECT"
	StatementInsert  StatementType = "INSERT"
	StatementUpdate  StatementType = "UPDATE"
	StatementDelete  StatementType = "DELETE"
	StatementCall    StatementType = "CALL"
	StatementDDL     StatementType = "DDL" // CREATE, ALTER, DROP, TRUNCATE
	StatementUnknown StatementType = "UNKNOWN"
)

var (
	// ErrNotReadOnly indicates the statement is not a SELECT query.
	ErrNotReadOnly = errors.New("the SQL statement must be a SELECT query")

	// ErrMultipleStatements indicates stacked statements, which would let a
	// SELECT smuggle mutations past the gate (SELECT 1; DROP TABLE x).
	ErrMultipleStatements = errors.New("multiple SQL statements are not allowed")
)

// modifyingCTEPattern matches CTEs that contain data-modifying operations,
// e.g. WITH deleted AS (DELETE FROM ...) SELECT * FROM deleted.
var modifyingCTEPattern = regexp.MustCompile(`(?i)\bAS\s*\(\s*(INSERT|UPDATE|DELETE)\b`)

// DetectStatementType determines the statement type from the first keyword.
// WITH is treated as SELECT unless one of its CTEs modifies data.
func DetectStatementType(sql string) StatementType {
	normalized := strings.ToUpper(strings.TrimSpace(sql))

	switch {
	case strings.HasPrefix(normalized, "SELECT"):
		return StatementSelect

	case strings.HasPrefix(normalized, "WITH"):
		if modifyingCTEPattern.MatchString(sql) {
			return StatementUnknown
		}
		return StatementSelect

	case strings.HasPrefix(normalized, "INSERT"):
		return StatementInsert

	case strings.HasPrefix(normalized, "UPDATE"):
		return StatementUpdate

	case strings.HasPrefix(normalized, "DELETE"):
		return StatementDelete

	case strings.HasPrefix(normalized, "CALL"):
		return StatementCall

	case strings.HasPrefix(normalized, "CREATE"),
		strings.HasPrefix(normalized, "ALTER"),
		strings.HasPrefix(normalized, "DROP"),
		strings.HasPrefix(normalized, "TRUNCATE"):
		return StatementDDL

	default:
		return StatementUnknown
	}
}

// ValidateReadOnly checks that sql is a single read-only statement and
// returns it normalized: trimmed, with the trailing semicolon stripped.
//
// Validation order:
//  1. Strip the trailing semicolon and whitespace (normalize).
//  2. Reject any remaining semicolon outside string literals (stacking).
//  3. Require a SELECT-shaped statement.
func ValidateReadOnly(sql string) (string, error) {
	normalized := stripTrailingSemicolon(strings.TrimSpace(sql))

	if hasSemicolonOutsideStrings(normalized) {
		return "", ErrMultipleStatements
	}
	if DetectStatementType(normalized) != StatementSelect {
		return "", ErrNotReadOnly
	}
	return normalized, nil
}

// hasSemicolonOutsideStrings returns true if the SQL contains any semicolon
// outside of string literals or quoted identifiers.
func hasSemicolonOutsideStrings(sql string) bool {
	const (
		stateNormal = iota
		stateSingleQuote
		stateDoubleQuote
	)

	state := stateNormal
	prevChar := rune(0)

	for _, char := range sql {
		switch state {
		case stateNormal:
			switch char {
			case ';':
				return true
			case '\'':
				state = stateSingleQuote
			case '"':
				state = stateDoubleQuote
			}
		case stateSingleQuote:
			// Handles both backslash escape (\') and SQL standard escape ('').
			// A doubled quote exits and immediately re-enters on the next
			// quote, which keeps us inside the string.
			if char == '\'' && prevChar != '\\' {
				state = stateNormal
			}
		case stateDoubleQuote:
			if char == '"' && prevChar != '\\' {
				state = stateNormal
			}
		}
		prevChar = char
	}

	return false
}

// stripTrailingSemicolon removes one trailing semicolon and surrounding
// whitespace.
func stripTrailingSemicolon(sql string) string {
	sql = strings.TrimRight(sql, " \t\n\r")
	if strings.HasSuffix(sql, ";") {
		sql = strings.TrimRight(strings.TrimSuffix(sql, ";"), " \t\n\r")
	}
	return sql
}

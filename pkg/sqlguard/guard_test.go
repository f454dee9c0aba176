package sqlguard

import (
	"errors"
	"testing"
)

func TestDetectStatementType(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want StatementType
	}{
		{"simple select", "SELECT * FROM users", StatementSelect},
		{"lowercase select", "select count(*) from users", StatementSelect},
		{"select with leading whitespace", "  \n\tSELECT 1", StatementSelect},
		{"cte select", "WITH active AS (SELECT * FROM users) SELECT * FROM active", StatementSelect},
		{"modifying cte", "WITH gone AS (DELETE FROM users RETURNING *) SELECT * FROM gone", StatementUnknown},
		{"insert", "INSERT INTO users (name) VALUES ('x')", StatementInsert},
		{"update", "UPDATE users SET name = 'x'", StatementUpdate},
		{"delete", "DELETE FROM users", StatementDelete},
		{"call", "CALL refresh_stats()", StatementCall},
		{"create", "CREATE TABLE t (id int)", StatementDDL},
		{"drop", "DROP TABLE users", StatementDDL},
		{"truncate", "TRUNCATE users", StatementDDL},
		{"garbage", "SHOW ME THE DATA", StatementUnknown},
		{"empty", "", StatementUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectStatementType(tt.sql); got != tt.want {
				t.Errorf("DetectStatementType(%q) = %v, want %v", tt.sql, got, tt.want)
			}
		})
	}
}

func TestValidateReadOnly_Accepts(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want string
	}{
		{"plain select", "SELECT * FROM users", "SELECT * FROM users"},
		{"trailing semicolon stripped", "SELECT * FROM users;", "SELECT * FROM users"},
		{"semicolon and whitespace", "  SELECT 1;  ", "SELECT 1"},
		{"semicolon inside string", "SELECT * FROM users WHERE name = 'a;b'", "SELECT * FROM users WHERE name = 'a;b'"},
		{"semicolon inside quoted identifier", `SELECT * FROM "odd;name"`, `SELECT * FROM "odd;name"`},
		{"sql standard escaped quote", "SELECT * FROM users WHERE name = 'O''Brien'", "SELECT * FROM users WHERE name = 'O''Brien'"},
		{"readonly cte", "WITH c AS (SELECT 1) SELECT * FROM c;", "WITH c AS (SELECT 1) SELECT * FROM c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateReadOnly(tt.sql)
			if err != nil {
				t.Fatalf("ValidateReadOnly(%q) returned error: %v", tt.sql, err)
			}
			if got != tt.want {
				t.Errorf("ValidateReadOnly(%q) = %q, want %q", tt.sql, got, tt.want)
			}
		})
	}
}

func TestValidateReadOnly_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		sql     string
		wantErr error
	}{
		{"delete", "DELETE FROM users;", ErrNotReadOnly},
		{"insert", "INSERT INTO users (name) VALUES ('x')", ErrNotReadOnly},
		{"update", "UPDATE users SET name = 'x'", ErrNotReadOnly},
		{"drop", "DROP TABLE users", ErrNotReadOnly},
		{"stacked statements", "SELECT 1; DROP TABLE users;", ErrMultipleStatements},
		{"stacked without spaces", "SELECT 1;DROP TABLE users", ErrMultipleStatements},
		{"modifying cte", "WITH gone AS (DELETE FROM users RETURNING *) SELECT * FROM gone", ErrNotReadOnly},
		{"empty", "", ErrNotReadOnly},
		{"not sql at all", "please delete everything", ErrNotReadOnly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateReadOnly(tt.sql)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateReadOnly(%q) error = %v, want %v", tt.sql, err, tt.wantErr)
			}
		})
	}
}

func TestCheckQuestion(t *testing.T) {
	if err := CheckQuestion("How many users are there?"); err != nil {
		t.Errorf("plain question flagged: %v", err)
	}
	if err := CheckQuestion("What was the total revenue in 2024?"); err != nil {
		t.Errorf("plain question flagged: %v", err)
	}
	if err := CheckQuestion("x'; DROP TABLE users--"); err == nil {
		t.Error("injection payload not flagged")
	}
	if err := CheckQuestion("1' OR '1'='1"); err == nil {
		t.Error("tautology payload not flagged")
	}
}

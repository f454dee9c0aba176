// Package prompts builds the text sent to the language model.
package prompts

import (
	"fmt"
	"strings"
)

// TableSchema pairs a table with its columns for schema rendering.
type TableSchema struct {
	Name    string
	Columns []ColumnSchema
}

// ColumnSchema is one column name/type pair.
type ColumnSchema struct {
	Name     string
	DataType string
}

// BuildSchemaDescription renders the flat textual schema description used as
// grounding context for SQL generation: a header line with the database
// name, then per table a sub-header and one indented bullet per column.
func BuildSchemaDescription(database string, tables []TableSchema) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Schema of %s:\n", database)
	for _, table := range tables {
		fmt.Fprintf(&b, "Table: %s\nColumns:\n", table.Name)
		for _, col := range table.Columns {
			fmt.Fprintf(&b, "  - %s (%s)\n", col.Name, col.DataType)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// sqlSystemPrompt fixes the model's persona for SQL generation.
const sqlSystemPrompt = "You are an expert in SQL and PostgreSQL."

// BuildSQLGenerationMessages returns the system and user messages asking the
// model to translate a question into a single unformatted query grounded on
// the schema description.
func BuildSQLGenerationMessages(schema, question string) (system, user string) {
	var b strings.Builder
	b.WriteString("Given the following schema:\n")
	b.WriteString(schema)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Generate an SQL query to answer the question: %s. ", question)
	b.WriteString("Use only the available tables and columns and return only the query, without any formatting.")
	return sqlSystemPrompt, b.String()
}

// BuildAnswerMessages returns the system and user messages asking the model
// to phrase the query result as a natural-language answer in the given
// language, using only the supplied question/data pair.
func BuildAnswerMessages(language, question, data string) (system, user string) {
	system = fmt.Sprintf(
		"Answer in %s using only the information in 'Data' and 'Question'. "+
			"Do not mention SQL or tables. Be clear and concise. No Markdown.",
		language)
	user = fmt.Sprintf("Question: %s\nData: %s", question, data)
	return system, user
}

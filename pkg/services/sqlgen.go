package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/askdb/askdb/pkg/llm"
	"github.com/askdb/askdb/pkg/prompts"
)

// SQLGenerator turns a question into a SQL statement via the language model.
type SQLGenerator struct {
	client llm.CompletionClient
	opts   llm.Options
	logger *zap.Logger
}

// NewSQLGenerator creates a generator. Temperature should be low: this is a
// translation task where creativity is undesirable.
func NewSQLGenerator(client llm.CompletionClient, temperature, topP float32, maxTokens int, logger *zap.Logger) *SQLGenerator {
	return &SQLGenerator{
		client: client,
		opts: llm.Options{
			Temperature: temperature,
			TopP:        topP,
			MaxTokens:   maxTokens,
		},
		logger: logger,
	}
}

// Generate asks the model for a query grounded on the schema description and
// strips any code fences from the reply. Syntactic validity is not checked
// here; that is the executor's concern.
func (g *SQLGenerator) Generate(ctx context.Context, schema, question string) string {
	system, user := prompts.BuildSQLGenerationMessages(schema, question)

	reply := g.client.Complete(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: user},
	}, g.opts)

	statement := llm.StripCodeFences(reply)
	g.logger.Debug("sql generated", zap.Int("length", len(statement)))
	return statement
}

package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/askdb/askdb/pkg/llm"
	"github.com/askdb/askdb/pkg/prompts"
)

// AnswerService phrases a formatted query result as natural language.
type AnswerService struct {
	client   llm.CompletionClient
	language string
	opts     llm.Options
	logger   *zap.Logger
}

// NewAnswerService creates an answer service. Moderate temperature gives
// phrasing variety while staying close to the supplied facts.
func NewAnswerService(client llm.CompletionClient, language string, temperature, topP float32, maxTokens int, logger *zap.Logger) *AnswerService {
	return &AnswerService{
		client:   client,
		language: language,
		opts: llm.Options{
			Temperature: temperature,
			TopP:        topP,
			MaxTokens:   maxTokens,
		},
		logger: logger,
	}
}

// Answer asks the model to phrase the result for the user and strips any
// Markdown markup from the reply.
func (a *AnswerService) Answer(ctx context.Context, question, formattedResult string) string {
	system, user := prompts.BuildAnswerMessages(a.language, question, formattedResult)

	reply := a.client.Complete(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: user},
	}, a.opts)

	return llm.StripMarkdown(reply)
}

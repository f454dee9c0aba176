package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/askdb/askdb/pkg/sqlguard"
)

// ErrEmptyQuestion indicates a blank question. It is reported locally and
// consumes no model call.
var ErrEmptyQuestion = errors.New("question is empty")

// msgQuestionRejected is the diagnostic for questions that fail the
// injection pre-flight check.
const msgQuestionRejected = "The question was rejected because it looks like a SQL injection attempt."

// AskResult carries everything one question/answer cycle produces.
type AskResult struct {
	ID        uuid.UUID
	SQL       string
	Formatted string
	Answer    string
}

// AskService runs the full question/answer cycle. The schema description is
// computed once per session and shared read-only across cycles; no other
// state carries between cycles.
type AskService struct {
	schema    string
	generator *SQLGenerator
	executor  *Executor
	answerer  *AnswerService
	logger    *zap.Logger
}

// NewAskService wires the pipeline around an immutable schema description.
func NewAskService(schema string, generator *SQLGenerator, executor *Executor, answerer *AnswerService, logger *zap.Logger) *AskService {
	return &AskService{
		schema:    schema,
		generator: generator,
		executor:  executor,
		answerer:  answerer,
		logger:    logger,
	}
}

// Ask answers one question: generate SQL, execute it behind the read-only
// gate, format the outcome, and phrase the natural-language answer. Every
// failure past the blank-question check surfaces inside the result, never
// as an error.
func (s *AskService) Ask(ctx context.Context, question string) (*AskResult, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	id := uuid.New()
	log := s.logger.With(zap.String("question_id", id.String()))

	if err := sqlguard.CheckQuestion(question); err != nil {
		log.Warn("question rejected", zap.Error(err))
		return &AskResult{
			ID:        id,
			Formatted: msgQuestionRejected,
			Answer:    msgQuestionRejected,
		}, nil
	}

	statement := s.generator.Generate(ctx, s.schema, question)
	log.Info("sql generated", zap.Int("length", len(statement)))

	outcome := s.executor.Run(ctx, statement)
	formatted := FormatResult(outcome)

	answer := s.answerer.Answer(ctx, question, formatted)
	log.Info("cycle complete", zap.Bool("diagnostic", outcome.IsDiagnostic()))

	return &AskResult{
		ID:        id,
		SQL:       statement,
		Formatted: formatted,
		Answer:    answer,
	}, nil
}

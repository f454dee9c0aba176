package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/askdb/askdb/pkg/config"
	"github.com/askdb/askdb/pkg/datasource"
	"github.com/askdb/askdb/pkg/llm"
	"github.com/askdb/askdb/pkg/logging"
	"github.com/askdb/askdb/pkg/services"
)

// exitSentinel stops the loop, matched case-insensitively.
const exitSentinel = "exit"

// runChat initializes the session (config, logger, database, schema, model
// client) and enters the question loop. Any failure before the loop is
// fatal; inside the loop, failures surface as printed messages.
func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath, Version)
	if err != nil {
		return err
	}
	if composePath != "" {
		db, err := config.LoadComposeDatabase(composePath, composeService)
		if err != nil {
			return err
		}
		cfg.Database = *db
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("connecting to database",
		zap.String("conn", logging.SanitizeConnectionString(cfg.Database.ConnectionString())))
	db, err := datasource.Connect(ctx, cfg.Database.ConnectionString(), logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	schema, err := services.NewSchemaService(db, logger).Describe(ctx, cfg.Database.Database)
	if err != nil {
		return fmt.Errorf("describe schema: %w", err)
	}
	pterm.Success.Println("Schema loaded.")

	if cfg.LLM.InsecureSkipVerify {
		logger.Warn("TLS certificate verification is disabled for the model endpoint")
	}
	client, err := llm.NewClient(&llm.Config{
		BaseURL:            cfg.LLM.BaseURL,
		Model:              cfg.LLM.Model,
		APIKey:             cfg.LLM.APIKey,
		Timeout:            time.Duration(cfg.LLM.TimeoutSeconds) * time.Second,
		InsecureSkipVerify: cfg.LLM.InsecureSkipVerify,
	}, logger)
	if err != nil {
		return fmt.Errorf("create model client: %w", err)
	}
	pterm.Success.Printfln("Model ready: %s", cfg.LLM.Model)

	ask := services.NewAskService(
		schema,
		services.NewSQLGenerator(client, cfg.LLM.SQLTemperature, cfg.LLM.TopP, cfg.LLM.MaxTokens, logger),
		services.NewExecutor(db, logger),
		services.NewAnswerService(client, cfg.LLM.AnswerLanguage, cfg.LLM.AnswerTemperature, cfg.LLM.TopP, cfg.LLM.MaxTokens, logger),
		logger,
	)

	return questionLoop(ctx, ask, os.Stdin)
}

// questionLoop reads one question per cycle until the exit sentinel, end of
// input, or an interrupt. Lines are read on a dedicated goroutine so an
// interrupt is honored even while the loop is waiting for input; a read
// blocked on stdin would otherwise swallow the signal until the next line
// arrives.
func questionLoop(ctx context.Context, ask *services.AskService, in io.Reader) error {
	lines := make(chan string)
	readDone := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readDone <- scanner.Err()
	}()

	for {
		pterm.Print(pterm.LightCyan("Ask a question (or 'exit'): "))

		var line string
		select {
		case <-ctx.Done():
			pterm.Println()
			pterm.Info.Println("Interrupted. Goodbye.")
			return nil
		case err := <-readDone:
			pterm.Println()
			return err
		case line = <-lines:
		}

		question := strings.TrimSpace(line)
		if strings.EqualFold(question, exitSentinel) {
			pterm.Info.Println("Goodbye.")
			return nil
		}
		if question == "" {
			pterm.Warning.Println("Empty question.")
			continue
		}

		spinner, _ := pterm.DefaultSpinner.Start("Thinking...")
		result, err := ask.Ask(ctx, question)
		if err != nil {
			if errors.Is(err, services.ErrEmptyQuestion) {
				_ = spinner.Stop()
				pterm.Warning.Println("Empty question.")
				continue
			}
			spinner.Fail(err.Error())
			continue
		}
		_ = spinner.Stop()

		if result.SQL != "" {
			pterm.DefaultSection.Println("Generated SQL")
			pterm.Println(result.SQL)
		}
		pterm.DefaultSection.Println("Result")
		pterm.Println(result.Formatted)
		pterm.DefaultSection.Println("Answer")
		pterm.Println(result.Answer)
	}
}

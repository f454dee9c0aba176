package cmd

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/askdb/askdb/pkg/datasource"
	"github.com/askdb/askdb/pkg/llm"
	"github.com/askdb/askdb/pkg/services"
)

type stubDB struct{}

func (stubDB) Execute(ctx context.Context, query string) (*datasource.QueryResult, error) {
	return &datasource.QueryResult{}, nil
}

func newLoopService() *services.AskService {
	logger := zap.NewNop()
	client := llm.NewMockClient()
	return services.NewAskService(
		"Schema of testdb:\n",
		services.NewSQLGenerator(client, 0.1, 0.9, 4096, logger),
		services.NewExecutor(stubDB{}, logger),
		services.NewAnswerService(client, "English", 0.3, 0.9, 4096, logger),
		logger,
	)
}

func TestQuestionLoop_InterruptWhileWaitingForInput(t *testing.T) {
	pterm.DisableOutput()
	defer pterm.EnableOutput()

	// A pipe with no writes keeps the loop in its input-wait state.
	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- questionLoop(ctx, newLoopService(), r) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop while waiting for input")
	}
}

func TestQuestionLoop_ExitSentinel(t *testing.T) {
	pterm.DisableOutput()
	defer pterm.EnableOutput()

	for _, input := range []string{"exit\n", "EXIT\n", "  Exit  \n"} {
		err := questionLoop(context.Background(), newLoopService(), strings.NewReader(input))
		assert.NoError(t, err, "input %q", input)
	}
}

func TestQuestionLoop_EndOfInputStops(t *testing.T) {
	pterm.DisableOutput()
	defer pterm.EnableOutput()

	err := questionLoop(context.Background(), newLoopService(), strings.NewReader(""))
	assert.NoError(t, err)
}

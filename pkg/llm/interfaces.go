package llm

import "context"

// CompletionClient is the interface the pipeline depends on. Use it for
// dependency injection to enable mocking in tests.
//
// Implementations never return an error: failures come back as synthetic
// reply text (see Client.Complete).
type CompletionClient interface {
	Complete(ctx context.Context, messages []Message, opts Options) string
	Model() string
}

// Ensure Client implements CompletionClient at compile time.
var _ CompletionClient = (*Client)(nil)

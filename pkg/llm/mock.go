package llm

import "context"

// MockClient is a configurable mock for testing components that talk to the
// model. Set CompleteFunc to control behavior in tests.
type MockClient struct {
	// CompleteFunc is called when Complete is invoked. If nil, Complete
	// returns an empty string.
	CompleteFunc func(ctx context.Context, messages []Message, opts Options) string

	// ModelName is returned by Model. Defaults to "mock-model".
	ModelName string

	// Call tracking for verification.
	CompleteCalls int
	LastMessages  []Message
	LastOptions   Options
}

// NewMockClient creates a new mock with sensible defaults.
func NewMockClient() *MockClient {
	return &MockClient{ModelName: "mock-model"}
}

// Complete implements CompletionClient.
func (m *MockClient) Complete(ctx context.Context, messages []Message, opts Options) string {
	m.CompleteCalls++
	m.LastMessages = messages
	m.LastOptions = opts
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, messages, opts)
	}
	return ""
}

// Model implements CompletionClient.
func (m *MockClient) Model() string {
	return m.ModelName
}

var _ CompletionClient = (*MockClient)(nil)

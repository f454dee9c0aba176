// Package llm provides the chat-completion client for OpenAI-compatible
// endpoints.
package llm

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Message roles accepted by the chat-completions endpoint.
const (
	RoleSystem = openai.ChatMessageRoleSystem
	RoleUser   = openai.ChatMessageRoleUser
)

// timeoutContent is the synthetic reply returned when a model call exceeds
// the configured timeout.
const timeoutContent = "Error: timed out waiting for the remote model."

// failureContentPrefix prefixes synthetic replies for every other transport
// or HTTP failure.
const failureContentPrefix = "Error querying the remote model: "

// Message is one role-tagged entry of a conversation.
type Message struct {
	Role    string
	Content string
}

// Options are generation parameters passed through to the endpoint verbatim.
// The remote service is trusted to reject invalid values.
type Options struct {
	Temperature float32
	TopP        float32
	MaxTokens   int
}

// Config holds configuration for creating a chat client.
type Config struct {
	BaseURL string // e.g. "http://192.168.1.60:1234/v1"
	Model   string
	APIKey  string // Optional for local endpoints

	// Timeout caps each call. Defaults to 120 seconds.
	Timeout time.Duration

	// InsecureSkipVerify disables TLS certificate verification. Only for
	// endpoints on a trusted local network.
	InsecureSkipVerify bool
}

// Client sends chat-completion requests to an OpenAI-compatible endpoint.
type Client struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// NewClient creates a chat client for the configured endpoint.
func NewClient(cfg *Config, logger *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 120 * time.Second
	}

	transport := http.DefaultTransport
	if cfg.InsecureSkipVerify {
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // trusted local network
		}
	}
	clientConfig.HTTPClient = &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}

	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
		logger: logger.Named("llm"),
	}, nil
}

// Complete sends one chat-completion request and returns the generated
// text. It never returns an error: transport failures surface as synthetic
// reply text so the pipeline can carry them like any other model output.
// Exactly one attempt per call, no retries.
func (c *Client) Complete(ctx context.Context, messages []Message, opts Options) string {
	chatMessages := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		chatMessages[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}

	c.logger.Debug("chat completion request",
		zap.String("model", c.model),
		zap.Int("messages", len(messages)),
		zap.Float32("temperature", opts.Temperature),
		zap.Float32("top_p", opts.TopP),
		zap.Int("max_tokens", opts.MaxTokens))

	start := time.Now()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    chatMessages,
		Temperature: opts.Temperature,
		TopP:        opts.TopP,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		c.logger.Warn("chat completion failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		if isTimeout(err) {
			return timeoutContent
		}
		return failureContentPrefix + err.Error()
	}

	if len(resp.Choices) == 0 {
		c.logger.Warn("chat completion returned no choices")
		return failureContentPrefix + "empty response"
	}

	c.logger.Info("chat completion",
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
		zap.Duration("elapsed", time.Since(start)))

	return resp.Choices[0].Message.Content
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

package gembridge

import (
	"context"
	"log/slog"
	"strings"

	"github.com/siscanu/gembridge/gemini"
)

// defaultMaxIterations caps the function-call chain within one completion.
const defaultMaxIterations = 10

// Backend is the language-model service behind the bridge: it accepts a
// prompt plus function declarations and replies with text or a function
// call. *gemini.Client implements it.
type Backend interface {
	GenerateContent(ctx context.Context, req *gemini.GenerateContentRequest) (*gemini.GenerateContentResponse, error)
	Model() string
}

// Client bridges a host framework's completion calls to a Backend.
// A Client is safe for concurrent use: each Complete call runs its own
// loop over its own conversation copy.
type Client struct {
	backend  Backend
	maxIters int
	logger   *slog.Logger
	metrics  *Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithMaxIterations overrides the cap on chained function calls per
// completion. Values below 1 are ignored.
func WithMaxIterations(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxIters = n
		}
	}
}

// WithLogger overrides the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithMetrics attaches Prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// NewClient creates a bridge client over the given backend.
func NewClient(backend Backend, opts ...Option) *Client {
	c := &Client{
		backend:  backend,
		maxIters: defaultMaxIterations,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Create completes a conversation. It is a direct synonym of Complete,
// kept for hosts whose completion contract is create-shaped.
func (c *Client) Create(ctx context.Context, messages []Message, tools []Tool) (*CompletionResult, error) {
	return c.Complete(ctx, messages, tools)
}

// ModelInfo describes the backing model.
func (c *Client) ModelInfo() string {
	return "Gemini model: " + c.backend.Model()
}

// CountTokens approximates the token count of text by whitespace
// splitting. A placeholder, not a real tokenizer.
func (c *Client) CountTokens(text string) int {
	return len(strings.Fields(text))
}

// RemainingTokens reports a fixed placeholder budget.
func (c *Client) RemainingTokens() int { return 1024 }

// ActualUsage reports placeholder usage for the last completion.
func (c *Client) ActualUsage() Usage { return Usage{} }

// TotalUsage reports placeholder cumulative usage.
func (c *Client) TotalUsage() Usage { return Usage{} }

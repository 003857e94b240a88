package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	failsafe "github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client talks to the Gemini generateContent REST API.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	retry   retrypolicy.RetryPolicy[*GenerateContentResponse]
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint (useful for proxies and tests).
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithRetry enables transport-level retries for transient API errors
// (429 and 5xx), honoring the server-reported retry delay as the backoff
// floor. Off by default: the bridge layer above never retries, and callers
// opt into resilience explicitly.
func WithRetry(maxRetries int) Option {
	return func(c *Client) {
		c.retry = retrypolicy.NewBuilder[*GenerateContentResponse]().
			HandleIf(func(_ *GenerateContentResponse, err error) bool {
				var ae *APIError
				return errors.As(err, &ae) && ae.IsTransient()
			}).
			WithBackoff(time.Second, 30*time.Second).
			WithMaxRetries(maxRetries).
			Build()
	}
}

// NewClient creates a Gemini client for the given model.
// Credentials and model are plain constructor parameters; the client reads
// no environment on its own.
func NewClient(model, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: 120 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Model returns the model identifier this client targets.
func (c *Client) Model() string { return c.model }

// GenerateContent performs one generateContent round-trip.
func (c *Client) GenerateContent(ctx context.Context, req *GenerateContentRequest) (*GenerateContentResponse, error) {
	if c.retry == nil {
		return c.generate(ctx, req)
	}
	return failsafe.With[*GenerateContentResponse](c.retry).
		WithContext(ctx).
		Get(func() (*GenerateContentResponse, error) {
			return c.generate(ctx, req)
		})
}

func (c *Client) generate(ctx context.Context, req *GenerateContentRequest) (*GenerateContentResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("x-goog-api-key", c.apiKey)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, parseAPIError(resp.StatusCode, data)
	}

	var result GenerateContentResponse
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return &result, nil
}

package gembridge

import "context"

// StreamChunk is one element of a completion stream.
type StreamChunk struct {
	Result *CompletionResult
	Err    error
}

// CreateStream accepts the same inputs as Complete and exposes the result
// as a one-shot stream: it performs one full non-incremental exchange and
// emits it as a single terminal chunk before closing the channel. The
// backend integration has no true token streaming — this is a
// compatibility shim for stream-shaped host contracts, not a performance
// feature.
func (c *Client) CreateStream(ctx context.Context, messages []Message, tools []Tool) <-chan StreamChunk {
	out := make(chan StreamChunk, 1)
	go func() {
		defer close(out)
		result, err := c.Complete(ctx, messages, tools)
		out <- StreamChunk{Result: result, Err: err}
	}()
	return out
}

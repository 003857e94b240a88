package gembridge

import (
	"context"
	"errors"
	"testing"
	"time"
)

// TestCreateStream_SingleTerminalChunk verifies the streaming shim emits
// exactly one chunk with the full result, then closes.
func TestCreateStream_SingleTerminalChunk(t *testing.T) {
	b := &mockBackend{responses: []backendResponse{textResp("streamed", "STOP")}}
	c := newTestClient(b)

	ch := c.CreateStream(context.Background(), []Message{UserMessage("q")}, nil)

	chunk, ok := <-ch
	if !ok {
		t.Fatal("channel closed before the terminal chunk")
	}
	if chunk.Err != nil {
		t.Fatalf("unexpected error: %v", chunk.Err)
	}
	if chunk.Result.Content != "streamed" {
		t.Errorf("content %q, want %q", chunk.Result.Content, "streamed")
	}

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("expected channel to close after one chunk")
		}
	case <-time.After(time.Second):
		t.Error("channel not closed after terminal chunk")
	}
}

// TestCreateStream_ErrorChunk verifies failures surface through the chunk.
func TestCreateStream_ErrorChunk(t *testing.T) {
	backendErr := errors.New("boom")
	b := &mockBackend{responses: []backendResponse{{err: backendErr}}}
	c := newTestClient(b)

	chunk := <-c.CreateStream(context.Background(), []Message{UserMessage("q")}, nil)
	if !errors.Is(chunk.Err, backendErr) {
		t.Errorf("chunk error %v, want %v", chunk.Err, backendErr)
	}
	if chunk.Result != nil {
		t.Errorf("chunk result %+v, want nil", chunk.Result)
	}
}

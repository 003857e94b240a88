package gembridge

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/siscanu/gembridge/gemini"
)

// callingModeAuto lets the model decide whether to call a function.
const callingModeAuto = "AUTO"

// decision is the model's single answer for one turn: either a final text
// response or exactly one function call. The variant is fixed once at the
// response-ingestion boundary instead of probing payload fields downstream.
type decision struct {
	text         string
	finishReason string
	call         *gemini.FunctionCall
}

// Complete runs one conversation turn of the host framework through the
// function-calling loop: submit prompt plus declarations, and while the
// model keeps answering with function calls, execute each named tool and
// feed its stringified result back as a synthetic function-result message.
// The loop ends when the model produces plain text, or fails with
// *RecursionLimitError once the iteration cap is hit.
//
// The caller's messages slice is never mutated; tools are resolved only
// against the set passed to this call. Backend transport errors and tool
// executor errors propagate unchanged — the bridge retries nothing.
func (c *Client) Complete(ctx context.Context, messages []Message, tools []Tool) (*CompletionResult, error) {
	convo := make([]Message, len(messages), len(messages)+c.maxIters)
	copy(convo, messages)

	decls := declarationsFor(tools)
	log := c.logger.With(slog.String("completion_id", uuid.NewString()))

	for iteration := 1; iteration <= c.maxIters; iteration++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		req := &gemini.GenerateContentRequest{
			Contents: []gemini.Content{{
				Role:  "user",
				Parts: []gemini.Part{{Text: flattenPrompt(convo)}},
			}},
		}
		if len(decls) > 0 {
			req.Tools = decls
			req.ToolConfig = &gemini.ToolConfig{
				FunctionCallingConfig: gemini.FunctionCallingConfig{Mode: callingModeAuto},
			}
		}

		c.metrics.observeBackendRequest()
		resp, err := c.backend.GenerateContent(ctx, req)
		if err != nil {
			c.metrics.observeError("backend")
			return nil, err
		}

		dec, err := classify(resp)
		if err != nil {
			c.metrics.observeError("malformed_response")
			return nil, err
		}

		if dec.call == nil {
			log.Debug("final answer",
				slog.Int("iteration", iteration),
				slog.String("finish_reason", dec.finishReason))
			return &CompletionResult{
				Content:      dec.text,
				FinishReason: dec.finishReason,
			}, nil
		}

		tool := findTool(tools, dec.call.Name)
		if tool == nil {
			c.metrics.observeError("unknown_function")
			return nil, &UnknownFunctionCallError{Name: dec.call.Name}
		}

		log.Info("executing function call",
			slog.String("tool", dec.call.Name),
			slog.Int("iteration", iteration))
		c.metrics.observeToolExecution(dec.call.Name)

		// Sole suspension point besides the round-trip itself. Cancellation
		// is cooperative: the executor is responsible for honoring ctx.
		result, err := tool.Execute(ctx, dec.call.Args)
		if err != nil {
			// Executor failures are host-tool bugs, not transient backend
			// issues: surfaced untouched, never retried or wrapped.
			c.metrics.observeError("tool_execution")
			return nil, err
		}

		convo = append(convo, functionResultMessage(stringifyResult(result)))
	}

	c.metrics.observeError("recursion_limit")
	return nil, &RecursionLimitError{Limit: c.maxIters}
}

// classify reduces a backend response to the model's single decision for
// this turn. Policy: exactly one candidate with exactly one content part
// is ever accepted — index 0 everywhere. Multi-candidate and multi-part
// responses are rejected rather than silently truncated, and parallel
// function calls are therefore unsupported. This is a documented hard
// limit of the bridge's single-call-per-turn design.
func classify(resp *gemini.GenerateContentResponse) (decision, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return decision{}, &MalformedResponseError{Reason: "no candidates"}
	}
	if len(resp.Candidates) > 1 {
		return decision{}, &MalformedResponseError{
			Reason: fmt.Sprintf("%d candidates, want exactly 1", len(resp.Candidates)),
		}
	}

	cand := resp.Candidates[0]
	parts := cand.Content.Parts
	if len(parts) == 0 {
		return decision{}, &MalformedResponseError{Reason: "candidate has no content parts"}
	}
	if len(parts) > 1 {
		return decision{}, &MalformedResponseError{
			Reason: fmt.Sprintf("%d content parts, want exactly 1", len(parts)),
		}
	}

	if call := parts[0].FunctionCall; call != nil {
		return decision{call: call}, nil
	}
	return decision{text: parts[0].Text, finishReason: cand.FinishReason}, nil
}

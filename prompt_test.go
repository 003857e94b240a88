package gembridge

import (
	"strings"
	"testing"
)

// TestFlattenPrompt_SystemPrefix verifies that exactly the system-role
// entries get the "System: " prefix.
func TestFlattenPrompt_SystemPrefix(t *testing.T) {
	got := flattenPrompt([]Message{
		SystemMessage("be terse"),
		UserMessage("hello"),
		AssistantMessage("hi"),
	})

	want := "System: be terse\n\nhello\n\nhi\n\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if strings.Count(got, "System: ") != 1 {
		t.Errorf("prompt %q should contain exactly one System prefix", got)
	}
}

// TestFlattenPrompt_PreservesOrder verifies strict ordering: the flattened
// prompt is the backend's only view of history.
func TestFlattenPrompt_PreservesOrder(t *testing.T) {
	msgs := []Message{
		UserMessage("first"),
		AssistantMessage("second"),
		UserMessage("third"),
	}
	got := flattenPrompt(msgs)

	last := -1
	for _, content := range []string{"first", "second", "third"} {
		idx := strings.Index(got, content)
		if idx < 0 {
			t.Fatalf("prompt %q missing %q", got, content)
		}
		if idx < last {
			t.Errorf("content %q out of order in %q", content, got)
		}
		last = idx
	}
}

// TestFlattenPrompt_FunctionResultRendersPlain verifies that a synthetic
// function-result message is rendered like an ordinary turn, no prefix.
func TestFlattenPrompt_FunctionResultRendersPlain(t *testing.T) {
	msg := functionResultMessage(`{"time":"12:00"}`)
	if msg.Source != SourceFunction {
		t.Errorf("source %q, want %q", msg.Source, SourceFunction)
	}

	got := flattenPrompt([]Message{msg})
	want := `{"time":"12:00"}` + "\n\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TestFlattenPrompt_Idempotent verifies that translating the same sequence
// twice yields byte-identical output.
func TestFlattenPrompt_Idempotent(t *testing.T) {
	msgs := []Message{
		SystemMessage("sys"),
		UserMessage("u"),
		functionResultMessage("r"),
	}
	first := flattenPrompt(msgs)
	second := flattenPrompt(msgs)
	if first != second {
		t.Errorf("not idempotent: %q vs %q", first, second)
	}
}

// TestFlattenPrompt_Empty verifies an empty sequence flattens to nothing.
func TestFlattenPrompt_Empty(t *testing.T) {
	if got := flattenPrompt(nil); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

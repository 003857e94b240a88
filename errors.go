package gembridge

import "fmt"

// The bridge performs no automatic retries anywhere: every failure below,
// along with tool executor errors and *gemini.APIError transport failures
// (both propagated unchanged), surfaces to the immediate caller of
// Complete/Create. There is no partial-result salvage.

// MalformedResponseError reports a backend response with no usable
// candidate or content, or an ambiguous multi-candidate/multi-part
// response the bridge refuses to silently truncate.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return "malformed backend response: " + e.Reason
}

// UnknownFunctionCallError reports a model-issued call to a function
// absent from the current tool set. The name is preserved so the host can
// diagnose a declaration/schema mismatch.
type UnknownFunctionCallError struct {
	Name string
}

func (e *UnknownFunctionCallError) Error() string {
	return fmt.Sprintf("model called unknown function %q", e.Name)
}

// RecursionLimitError reports a function-call chain that exceeded the
// configured iteration cap without producing a final text answer.
type RecursionLimitError struct {
	Limit int
}

func (e *RecursionLimitError) Error() string {
	return fmt.Sprintf("function-call chain exceeded %d iterations", e.Limit)
}

package gembridge

// Usage reports token figures for a completion. The bridge makes no
// accounting guarantees; the original client returned dummy usage and this
// one keeps that contract, so all figures are placeholders.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// CompletionResult is the terminal artifact of one Complete invocation,
// which may internally have performed several backend round-trips.
type CompletionResult struct {
	Content      string
	FinishReason string
	Usage        Usage
}

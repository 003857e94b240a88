package gemini

import (
	"testing"
	"time"
)

// TestParseAPIError_GoogleFormat verifies the structured Google error body
// is parsed, including the retryDelay detail.
func TestParseAPIError_GoogleFormat(t *testing.T) {
	body := []byte(`{
		"error": {
			"code": 429,
			"message": "Resource has been exhausted",
			"status": "RESOURCE_EXHAUSTED",
			"details": [
				{"metadata": {"retryDelay": "30s"}}
			]
		}
	}`)

	ae := parseAPIError(429, body)
	if ae.Message != "Resource has been exhausted" {
		t.Errorf("message %q", ae.Message)
	}
	if ae.RetryAfter != 30*time.Second {
		t.Errorf("retry after %v, want 30s", ae.RetryAfter)
	}
	if !ae.IsRateLimit() {
		t.Error("429 should be a rate limit")
	}
}

// TestParseAPIError_Fallback verifies a non-JSON body degrades to the
// first line, truncated.
func TestParseAPIError_Fallback(t *testing.T) {
	ae := parseAPIError(500, []byte("Bad Gateway\nsome html follows"))
	if ae.Message != "Bad Gateway" {
		t.Errorf("message %q", ae.Message)
	}
	if !ae.IsServerError() || !ae.IsTransient() {
		t.Error("500 should be a transient server error")
	}
}

// TestAPIError_Classification table-tests the status helpers.
func TestAPIError_Classification(t *testing.T) {
	tests := []struct {
		code                       int
		auth, rateLimit, transient bool
	}{
		{400, false, false, false},
		{401, true, false, false},
		{403, true, false, false},
		{429, false, true, true},
		{500, false, false, true},
		{503, false, false, true},
	}
	for _, tt := range tests {
		ae := &APIError{StatusCode: tt.code}
		if ae.IsAuth() != tt.auth {
			t.Errorf("IsAuth(%d) = %v", tt.code, ae.IsAuth())
		}
		if ae.IsRateLimit() != tt.rateLimit {
			t.Errorf("IsRateLimit(%d) = %v", tt.code, ae.IsRateLimit())
		}
		if ae.IsTransient() != tt.transient {
			t.Errorf("IsTransient(%d) = %v", tt.code, ae.IsTransient())
		}
	}
}

// TestParseRetryDelay covers duration string parsing.
func TestParseRetryDelay(t *testing.T) {
	if d := parseRetryDelay("5m30s"); d != 5*time.Minute+30*time.Second {
		t.Errorf("got %v", d)
	}
	if d := parseRetryDelay("nonsense"); d != 0 {
		t.Errorf("got %v, want 0", d)
	}
}

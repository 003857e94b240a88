package gemini

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// APIError is a structured error from the Gemini API.
type APIError struct {
	StatusCode int
	Message    string
	RetryAfter time.Duration
	Raw        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini API error %d: %s", e.StatusCode, e.Message)
}

// IsAuth returns true for 401/403 authentication errors.
func (e *APIError) IsAuth() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsRateLimit returns true for 429 quota/rate-limit errors.
func (e *APIError) IsRateLimit() bool {
	return e.StatusCode == 429
}

// IsServerError returns true for 5xx server errors.
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode < 600
}

// IsTransient returns true if the error is worth retrying.
func (e *APIError) IsTransient() bool {
	return e.IsRateLimit() || e.IsServerError()
}

// parseAPIError parses a non-200 HTTP response body into an APIError.
func parseAPIError(statusCode int, body []byte) *APIError {
	ae := &APIError{
		StatusCode: statusCode,
		Raw:        string(body),
	}

	// Google error format with details array (includes retry delay).
	var googleErr struct {
		Error struct {
			Message string `json:"message"`
			Details []struct {
				Metadata map[string]string `json:"metadata"`
			} `json:"details"`
		} `json:"error"`
	}
	if json.Unmarshal(body, &googleErr) == nil && googleErr.Error.Message != "" {
		ae.Message = googleErr.Error.Message
		for _, d := range googleErr.Error.Details {
			if delay, ok := d.Metadata["retryDelay"]; ok {
				ae.RetryAfter = parseRetryDelay(delay)
			}
		}
		return ae
	}

	// Fallback: first line of body, truncated.
	s := strings.TrimSpace(string(body))
	if idx := strings.IndexByte(s, '\n'); idx > 0 {
		s = s[:idx]
	}
	if len(s) > 300 {
		s = s[:300] + "..."
	}
	ae.Message = s
	return ae
}

// parseRetryDelay parses strings like "30s", "2m", "5m30s".
func parseRetryDelay(s string) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return 0
}

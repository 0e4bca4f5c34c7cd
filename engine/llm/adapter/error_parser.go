package llmadapter

import (
	"context"
	"errors"
	"strings"
)

// ParseUpstreamMessage extracts a caller-presentable message from an
// upstream failure. The upstream's own wording is preserved where it is
// recognizable; transport noise is translated into short descriptions.
func ParseUpstreamMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "upstream request timed out"
	}
	if errors.Is(err, context.Canceled) {
		return "upstream request canceled"
	}
	msg := err.Error()
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "401") || strings.Contains(lower, "invalid api key") ||
		strings.Contains(lower, "unauthorized") || strings.Contains(lower, "invalid_api_key"):
		return "upstream rejected the API key"
	case strings.Contains(lower, "429") || strings.Contains(lower, "rate limit"):
		return "upstream rate limit exceeded"
	case strings.Contains(lower, "connection refused") || strings.Contains(lower, "no such host"):
		return "upstream service unreachable"
	default:
		return msg
	}
}

package llmadapter

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUpstreamMessage(t *testing.T) {
	t.Run("Should recognize rejected credentials", func(t *testing.T) {
		err := errors.New("API returned unexpected status code: 401 Invalid API Key")
		assert.Equal(t, "upstream rejected the API key", ParseUpstreamMessage(err))
	})

	t.Run("Should recognize rate limiting", func(t *testing.T) {
		err := errors.New("API returned unexpected status code: 429 Too Many Requests")
		assert.Equal(t, "upstream rate limit exceeded", ParseUpstreamMessage(err))
	})

	t.Run("Should recognize unreachable upstreams", func(t *testing.T) {
		err := errors.New(`dial tcp: lookup api.groq.com: no such host`)
		assert.Equal(t, "upstream service unreachable", ParseUpstreamMessage(err))
	})

	t.Run("Should translate deadline errors", func(t *testing.T) {
		err := fmt.Errorf("call failed: %w", context.DeadlineExceeded)
		assert.Equal(t, "upstream request timed out", ParseUpstreamMessage(err))
	})

	t.Run("Should preserve unrecognized upstream messages", func(t *testing.T) {
		err := errors.New("model decommissioned, see /docs/deprecations")
		assert.Equal(t, "model decommissioned, see /docs/deprecations", ParseUpstreamMessage(err))
	})

	t.Run("Should return empty for nil", func(t *testing.T) {
		assert.Equal(t, "", ParseUpstreamMessage(nil))
	})
}

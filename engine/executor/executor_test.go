package executor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notewise/notewise/engine/core"
	llmadapter "github.com/notewise/notewise/engine/llm/adapter"
	"github.com/notewise/notewise/engine/task"
)

// mockClient records calls and returns a canned completion or error.
type mockClient struct {
	calls      int
	lastReq    *llmadapter.CompletionRequest
	completion string
	err        error
}

func (m *mockClient) GenerateCompletion(
	_ context.Context,
	req *llmadapter.CompletionRequest,
) (*llmadapter.CompletionResponse, error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &llmadapter.CompletionResponse{Content: m.completion}, nil
}

func TestExecutor_Execute(t *testing.T) {
	t.Run("Should pass the kind's instruction and the note content upstream", func(t *testing.T) {
		client := &mockClient{completion: "a summary"}
		exec := New(client)
		result, err := exec.Execute(context.Background(), task.KindSummarize, "my note")
		require.NoError(t, err)
		assert.Equal(t, task.PlainText("a summary"), result)
		assert.Equal(t, 1, client.calls)
		assert.Equal(t, "my note", client.lastReq.UserContent)
		assert.NotEmpty(t, client.lastReq.SystemPrompt)
	})

	t.Run("Should make zero upstream calls for an undefined kind", func(t *testing.T) {
		client := &mockClient{}
		exec := New(client)
		_, err := exec.Execute(context.Background(), task.Kind("translate"), "my note")
		require.Error(t, err)
		assert.Equal(t, core.ErrUnknownTaskCode, core.CodeOf(err))
		assert.Zero(t, client.calls)
	})

	t.Run("Should surface an upstream failure after a single attempt", func(t *testing.T) {
		client := &mockClient{err: core.NewError(core.ErrUpstreamCode, "upstream rejected the API key")}
		exec := New(client)
		_, err := exec.Execute(context.Background(), task.KindGrammar, "my note")
		require.Error(t, err)
		assert.Equal(t, core.ErrUpstreamCode, core.CodeOf(err))
		assert.Equal(t, 1, client.calls, "a failed attempt must not be retried")
	})

	t.Run("Should normalize a tags completion", func(t *testing.T) {
		client := &mockClient{completion: "alpha, beta ,gamma,,delta, epsilon, zeta"}
		exec := New(client)
		result, err := exec.Execute(context.Background(), task.KindTags, "my note")
		require.NoError(t, err)
		assert.Equal(t, task.TagList{"alpha", "beta", "gamma", "delta", "epsilon"}, result)
	})

	t.Run("Should degrade a malformed glossary completion to an empty list", func(t *testing.T) {
		client := &mockClient{completion: "sorry, I cannot produce JSON today"}
		exec := New(client)
		result, err := exec.Execute(context.Background(), task.KindGlossary, "my note")
		require.NoError(t, err, "normalization fallback must not surface as an error")
		assert.Equal(t, task.GlossaryEntries{}, result)
	})

	t.Run("Should return fenced glossary JSON as typed entries", func(t *testing.T) {
		client := &mockClient{completion: "```json\n[{\"term\":\"x\",\"definition\":\"y\"}]\n```"}
		exec := New(client)
		result, err := exec.Execute(context.Background(), task.KindGlossary, "my note")
		require.NoError(t, err)
		assert.Equal(t, task.GlossaryEntries{{Term: "x", Definition: "y"}}, result)
	})
}

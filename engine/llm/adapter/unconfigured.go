package llmadapter

import (
	"context"

	"github.com/notewise/notewise/engine/core"
)

// UnconfiguredClient stands in when no upstream credential is available.
// The HTTP layer rejects requests before reaching the client, so this only
// guards against wiring mistakes.
type UnconfiguredClient struct{}

func NewUnconfiguredClient() *UnconfiguredClient {
	return &UnconfiguredClient{}
}

func (*UnconfiguredClient) GenerateCompletion(
	_ context.Context,
	_ *CompletionRequest,
) (*CompletionResponse, error) {
	return nil, core.NewError(core.ErrConfigCode, "API key is not configured on the server")
}

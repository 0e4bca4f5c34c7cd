package llmadapter

import "context"

// Role constants for chat messages.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// CompletionRequest is a single chat-completion exchange, independent of
// provider.
type CompletionRequest struct {
	SystemPrompt string
	UserContent  string
}

// CompletionResponse carries the text of the first choice returned by the
// upstream model.
type CompletionResponse struct {
	Content string
}

// Client is the interface for upstream completion calls. Implementations
// perform exactly one request/response exchange per call; retrying is the
// caller's decision and this service never makes one.
type Client interface {
	GenerateCompletion(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)
}

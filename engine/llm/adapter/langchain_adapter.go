package llmadapter

import (
	"context"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"

	"github.com/notewise/notewise/engine/core"
	"github.com/notewise/notewise/pkg/config"
)

// LangChainAdapter adapts langchaingo models to the Client interface.
type LangChainAdapter struct {
	model       llms.Model
	temperature float64
	maxTokens   int
	timeout     time.Duration
}

// NewLangChainAdapter creates an adapter for the configured provider.
func NewLangChainAdapter(cfg *config.LLMConfig) (*LangChainAdapter, error) {
	model, err := createModel(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM model: %w", err)
	}
	return &LangChainAdapter{
		model:       model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		timeout:     cfg.Timeout,
	}, nil
}

// GenerateCompletion performs exactly one non-streaming exchange and returns
// the first choice's content. There is no retry on failure.
func (a *LangChainAdapter) GenerateCompletion(
	ctx context.Context,
	req *CompletionRequest,
) (*CompletionResponse, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, req.SystemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, req.UserContent),
	}
	options := []llms.CallOption{
		llms.WithTemperature(a.temperature),
		llms.WithMaxTokens(a.maxTokens),
	}
	response, err := a.model.GenerateContent(ctx, messages, options...)
	if err != nil {
		return nil, core.WrapError(core.ErrUpstreamCode, ParseUpstreamMessage(err), err)
	}
	if response == nil || len(response.Choices) == 0 {
		return nil, core.NewError(core.ErrUpstreamCode, "empty response from model")
	}
	return &CompletionResponse{Content: response.Choices[0].Content}, nil
}

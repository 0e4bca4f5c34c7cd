package llmadapter

import (
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/notewise/notewise/pkg/config"
)

const (
	groqBaseURL     = "https://api.groq.com/openai/v1"
	deepSeekBaseURL = "https://api.deepseek.com/v1"
)

// createModel builds the langchaingo model for the configured provider.
// Groq and DeepSeek expose OpenAI-compatible endpoints, so all providers
// go through the openai client with a provider-specific base URL.
func createModel(cfg *config.LLMConfig) (llms.Model, error) {
	switch cfg.Provider {
	case "openai":
		return createOpenAIModel(cfg, cfg.BaseURL)
	case "groq":
		return createOpenAIModel(cfg, defaultBaseURL(cfg.BaseURL, groqBaseURL))
	case "deepseek":
		return createOpenAIModel(cfg, defaultBaseURL(cfg.BaseURL, deepSeekBaseURL))
	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}
}

func createOpenAIModel(cfg *config.LLMConfig, baseURL string) (llms.Model, error) {
	opts := []openai.Option{
		openai.WithModel(cfg.Model),
	}
	if key := cfg.APIKey.Value(); key != "" {
		opts = append(opts, openai.WithToken(key))
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}
	return openai.New(opts...)
}

func defaultBaseURL(configured, fallback string) string {
	if configured != "" {
		return configured
	}
	return fallback
}

package config

import (
	"time"
)

// PlaceholderAPIKey is the sentinel value shipped in example env files.
// A key equal to this sentinel is treated as unconfigured.
const PlaceholderAPIKey = "your_api_key_here"

// Config is the top-level application configuration.
type Config struct {
	Server ServerConfig `koanf:"server" validate:"required"`
	LLM    LLMConfig    `koanf:"llm"    validate:"required"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"              validate:"required"        env:"SERVER_HOST"`
	Port            int           `koanf:"port"              validate:"min=1,max=65535" env:"PORT"`
	Timeout         time.Duration `koanf:"timeout"                                      env:"SERVER_TIMEOUT"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"                             env:"SERVER_SHUTDOWN_TIMEOUT"`
	MaxContentChars int           `koanf:"max_content_chars" validate:"min=1"           env:"SERVER_MAX_CONTENT_CHARS"`
	CORS            CORSConfig    `koanf:"cors"`
}

// CORSConfig contains CORS settings for the HTTP server.
type CORSConfig struct {
	AllowedOrigins   []string `koanf:"allowed_origins"   env:"SERVER_CORS_ALLOWED_ORIGINS"`
	AllowCredentials bool     `koanf:"allow_credentials" env:"SERVER_CORS_ALLOW_CREDENTIALS"`
	MaxAge           int      `koanf:"max_age"           env:"SERVER_CORS_MAX_AGE"`
}

// LLMConfig contains upstream model provider settings.
type LLMConfig struct {
	Provider    string          `koanf:"provider"    validate:"required,oneof=openai groq deepseek" env:"LLM_PROVIDER"`
	Model       string          `koanf:"model"       validate:"required"                            env:"LLM_MODEL"`
	APIKey      SensitiveString `koanf:"api_key"                                                    env:"LLM_API_KEY"    sensitive:"true"`
	BaseURL     string          `koanf:"base_url"                                                   env:"LLM_BASE_URL"`
	Temperature float64         `koanf:"temperature" validate:"min=0,max=2"                         env:"LLM_TEMPERATURE"`
	MaxTokens   int             `koanf:"max_tokens"  validate:"min=1"                               env:"LLM_MAX_TOKENS"`
	Timeout     time.Duration   `koanf:"timeout"                                                    env:"LLM_TIMEOUT"`
}

// APIKeyConfigured reports whether a usable upstream credential is present.
func (c *LLMConfig) APIKeyConfigured() bool {
	key := c.APIKey.Value()
	return key != "" && key != PlaceholderAPIKey
}

// Default returns the default configuration. Environment variables override
// these values during Load.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            3001,
			Timeout:         90 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxContentChars: 50000,
			CORS: CORSConfig{
				AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
				AllowCredentials: false,
				MaxAge:           3600,
			},
		},
		LLM: LLMConfig{
			Provider:    "groq",
			Model:       "llama-3.3-70b-versatile",
			Temperature: 0.7,
			MaxTokens:   1024,
			Timeout:     60 * time.Second,
		},
	}
}

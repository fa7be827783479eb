package llm

import (
	"context"
	"fmt"
)

// creates a text generator with auto-configuration from environment variables
func NewTextGenerator(ctx context.Context) (TextGenerator, error) {
	config, err := loadConfig()

	if err != nil {
		return nil, fmt.Errorf("failed to load LLM config: %w", err)
	}

	return NewTextGeneratorWithConfig(ctx, config)
}

// creates a text generator with explicit configuration
func NewTextGeneratorWithConfig(_ context.Context, config *Config) (TextGenerator, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	switch config.Provider {
	case ProviderGroq:
		baseURL := config.BaseURL
		if baseURL == "" {
			baseURL = groqChatURL
		}

		return NewChatGenerator(ChatConfig{
			APIKey:      config.APIKey,
			Model:       config.Model,
			BaseURL:     baseURL,
			MaxTokens:   config.MaxTokens,
			Temperature: config.Temperature,
		}), nil

	case ProviderOpenAI:
		return NewChatGenerator(ChatConfig{
			APIKey:      config.APIKey,
			Model:       config.Model,
			BaseURL:     config.BaseURL,
			MaxTokens:   config.MaxTokens,
			Temperature: config.Temperature,
		}), nil

	case ProviderAnthropic:
		return NewAnthropicGenerator(AnthropicConfig{
			APIKey:      config.APIKey,
			Model:       config.Model,
			BaseURL:     config.BaseURL,
			MaxTokens:   config.MaxTokens,
			Temperature: config.Temperature,
		}), nil

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", config.Provider)
	}
}

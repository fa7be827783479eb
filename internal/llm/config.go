package llm

import (
	"fmt"
	"os"
	"strconv"
)

// default model per provider
var defaultModels = map[Provider]string{
	ProviderGroq:      "llama-3.1-8b-instant",
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderAnthropic: "claude-3-haiku-20240307",
}

// env var holding the API key for each provider
var apiKeyEnv = map[Provider]string{
	ProviderGroq:      "GROQ_API_KEY",
	ProviderOpenAI:    "OPENAI_API_KEY",
	ProviderAnthropic: "ANTHROPIC_API_KEY",
}

// loadConfig loads LLM configuration from environment variables
func loadConfig() (*Config, error) {
	provider := Provider(os.Getenv("LLM_PROVIDER"))
	if provider == "" {
		provider = ProviderGroq // default
	}

	keyEnv, ok := apiKeyEnv[provider]
	if !ok {
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}

	apiKey := os.Getenv(keyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("%s not found in environment variables. Please update your .env file", keyEnv)
	}

	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = defaultModels[provider]
	}

	maxTokens := defaultMaxTokens
	if maxTokensStr := os.Getenv("LLM_MAX_TOKENS"); maxTokensStr != "" {
		if val, err := strconv.Atoi(maxTokensStr); err == nil {
			maxTokens = val
		}
	}

	temperature := float32(defaultTemperature)
	if tempStr := os.Getenv("LLM_TEMPERATURE"); tempStr != "" {
		if val, err := strconv.ParseFloat(tempStr, 32); err == nil {
			temperature = float32(val)
		}
	}

	return &Config{
		Provider:    provider,
		APIKey:      apiKey,
		Model:       model,
		BaseURL:     os.Getenv("LLM_BASE_URL"),
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}, nil
}

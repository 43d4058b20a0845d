package llm

import "context"

// Client is an abstraction over completion providers
type Client interface {
	// Complete sends prompt to the provider and returns the cleaned reply text
	Complete(ctx context.Context, prompt string) (string, error)
	// Ping verifies connectivity with a minimal completion request
	Ping(ctx context.Context) error
	// Model returns the configured model identifier
	Model() string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new completion client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return NewGroqClient(config, apiKey), nil
	}
}

package config

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "LLM_PROVIDER", "GROQ_API_KEY", "GROQ_MODEL", "GROQ_ENDPOINT", "GEMINI_API_KEY", "GEMINI_MODEL"} {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg := FromEnv()

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, llm.ProviderGroq, cfg.Provider)
	assert.Equal(t, llm.DefaultGroqModel, cfg.Model)
	assert.Equal(t, llm.DefaultGroqEndpoint, cfg.Endpoint)
	assert.Empty(t, cfg.APIKey)
}

func TestFromEnvGroqOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("GROQ_API_KEY", "gsk-test")
	t.Setenv("GROQ_MODEL", "mixtral-8x7b")
	t.Setenv("GROQ_ENDPOINT", "http://localhost:1234/v1/chat/completions")

	cfg := FromEnv()

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "gsk-test", cfg.APIKey)
	assert.Equal(t, "mixtral-8x7b", cfg.Model)
	assert.Equal(t, "http://localhost:1234/v1/chat/completions", cfg.Endpoint)
}

func TestFromEnvGeminiProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "gem-test")

	cfg := FromEnv()

	assert.Equal(t, llm.ProviderGemini, cfg.Provider)
	assert.Equal(t, llm.DefaultGeminiModel, cfg.Model)
	assert.Equal(t, "gem-test", cfg.APIKey)
	assert.Empty(t, cfg.Endpoint)
}

func TestFromEnvInvalidPortFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "not-a-port")

	cfg := FromEnv()
	assert.Equal(t, DefaultPort, cfg.Port)
}

// Package config provides environment configuration for the resume builder
// service. All values are read once at process start.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/jonathan/resume-builder/internal/llm"
)

// DefaultPort is the listening port when PORT is unset.
const DefaultPort = 8080

// Config holds the service configuration.
type Config struct {
	Port     int
	Provider llm.Provider
	Model    string
	Endpoint string
	APIKey   string
}

// FromEnv loads configuration from the process environment.
//
// A missing API key is logged as a warning but does not prevent startup;
// completion calls fail at request time instead.
func FromEnv() *Config {
	cfg := &Config{
		Port:     DefaultPort,
		Provider: llm.ProviderGroq,
	}

	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		} else {
			log.Printf("Warning: invalid PORT %q, using %d", v, DefaultPort)
		}
	}

	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.Provider = llm.Provider(v)
	}

	switch cfg.Provider {
	case llm.ProviderGemini:
		cfg.Model = llm.DefaultGeminiModel
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
		if v := os.Getenv("GEMINI_MODEL"); v != "" {
			cfg.Model = v
		}
	default:
		cfg.Model = llm.DefaultGroqModel
		cfg.Endpoint = llm.DefaultGroqEndpoint
		cfg.APIKey = os.Getenv("GROQ_API_KEY")
		if v := os.Getenv("GROQ_MODEL"); v != "" {
			cfg.Model = v
		}
		if v := os.Getenv("GROQ_ENDPOINT"); v != "" {
			cfg.Endpoint = v
		}
	}

	if cfg.APIKey == "" {
		log.Printf("Warning: no API key configured for provider %q; generation requests will fail", cfg.Provider)
	}

	return cfg
}

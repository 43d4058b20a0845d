// Package llm provides the completion client used to generate resume text.
// It abstracts over providers so the service can talk either to an
// OpenAI-compatible chat endpoint or to Google Gemini.
package llm

// Provider represents a completion provider
type Provider string

// Provider constants define supported completion providers
const (
	// ProviderGroq is the Groq OpenAI-compatible chat endpoint (default)
	ProviderGroq Provider = "groq"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Defaults for the Groq and Gemini providers
const (
	DefaultGroqModel    = "llama3-70b-8192"
	DefaultGroqEndpoint = "https://api.groq.com/openai/v1/chat/completions"
	DefaultGeminiModel  = "gemini-2.5-flash"
)

// systemInstruction is sent with every completion request.
const systemInstruction = "You are a professional resume writer. Create well-formatted, ATS-optimized resumes."

// pingPrompt is the minimal completion used to verify connectivity.
const pingPrompt = "Say hello!"

// Completion parameters. Temperature is kept low so the model produces
// consistently formatted output.
const (
	completionTemperature = 0.3
	completionMaxTokens   = 1500
	pingMaxTokens         = 50
)

// Config holds the completion client configuration
type Config struct {
	Provider Provider
	Model    string
	Endpoint string // OpenAI-compatible chat endpoint; unused by Gemini
}

// DefaultConfig returns the default configuration (currently Groq)
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGroq,
		Model:    DefaultGroqModel,
		Endpoint: DefaultGroqEndpoint,
	}
}

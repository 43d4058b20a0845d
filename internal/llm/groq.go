package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// GroqClient implements Client against an OpenAI-compatible chat endpoint
type GroqClient struct {
	httpClient *http.Client
	endpoint   string
	model      string
	apiKey     string
}

// NewGroqClient creates a new client for an OpenAI-compatible chat endpoint.
// An empty API key is allowed; requests will fail with an auth error at
// call time instead.
func NewGroqClient(config *Config, apiKey string) *GroqClient {
	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = DefaultGroqEndpoint
	}
	model := config.Model
	if model == "" {
		model = DefaultGroqModel
	}

	return &GroqClient{
		httpClient: &http.Client{Timeout: 120 * time.Second},
		endpoint:   endpoint,
		model:      model,
		apiKey:     apiKey,
	}
}

// chatMessage is a single message in the chat completion payload
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the chat completion request payload
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// chatResponse is the subset of the chat completion response we consume
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends prompt to the chat endpoint and returns the cleaned reply
func (c *GroqClient) Complete(ctx context.Context, prompt string) (string, error) {
	content, err := c.chat(ctx, []chatMessage{
		{Role: "system", Content: systemInstruction},
		{Role: "user", Content: prompt},
	}, completionMaxTokens)
	if err != nil {
		return "", err
	}
	return Clean(content), nil
}

// Ping verifies connectivity with a minimal one-line completion
func (c *GroqClient) Ping(ctx context.Context) error {
	_, err := c.chat(ctx, []chatMessage{
		{Role: "user", Content: pingPrompt},
	}, pingMaxTokens)
	return err
}

// Model returns the configured model identifier
func (c *GroqClient) Model() string {
	return c.model
}

// Close releases resources held by the client
func (c *GroqClient) Close() error {
	return nil
}

// chat performs a single synchronous chat completion round-trip.
// No retries: transient upstream failures surface immediately.
func (c *GroqClient) chat(ctx context.Context, messages []chatMessage, maxTokens int) (string, error) {
	payload := chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: completionTemperature,
		MaxTokens:   maxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", &GenerationError{Message: "failed to encode completion request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", &GenerationError{Message: "failed to build completion request", Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &GenerationError{Message: "completion request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain a little of the body so the error is diagnosable in logs
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &GenerationError{
			Message: fmt.Sprintf("completion endpoint returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail))),
		}
	}

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &GenerationError{Message: "failed to decode completion response", Cause: err}
	}

	if len(result.Choices) == 0 {
		return "", &GenerationError{Message: "completion response contained no choices"}
	}

	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}

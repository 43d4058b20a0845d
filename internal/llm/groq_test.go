package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient points a GroqClient at a stub chat endpoint
func newTestClient(handler http.HandlerFunc) (*GroqClient, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewGroqClient(&Config{
		Provider: ProviderGroq,
		Model:    "test-model",
		Endpoint: server.URL,
	}, "test-key")
	return client, server
}

func chatReply(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	}
}

func TestGroqComplete(t *testing.T) {
	var captured chatRequest
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(chatReply("Here is your resume:\nJane Doe\nEngineer"))
	})
	defer server.Close()

	got, err := client.Complete(context.Background(), "build a resume")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nEngineer", got, "reply should pass through cleanup")

	assert.Equal(t, "test-model", captured.Model)
	assert.InDelta(t, completionTemperature, captured.Temperature, 0.0001)
	assert.Equal(t, completionMaxTokens, captured.MaxTokens)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, "build a resume", captured.Messages[1].Content)
}

func TestGroqCompleteNoChoices(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "x", "object": "chat.completion"}`))
	})
	defer server.Close()

	_, err := client.Complete(context.Background(), "prompt")
	require.Error(t, err)
	var genErr *GenerationError
	assert.ErrorAs(t, err, &genErr)
}

func TestGroqCompleteNonOKStatus(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error": "invalid api key"}`, http.StatusUnauthorized)
	})
	defer server.Close()

	_, err := client.Complete(context.Background(), "prompt")
	require.Error(t, err)
	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Contains(t, genErr.Message, "401")
}

func TestGroqCompleteMalformedJSON(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})
	defer server.Close()

	_, err := client.Complete(context.Background(), "prompt")
	require.Error(t, err)
	var genErr *GenerationError
	assert.ErrorAs(t, err, &genErr)
}

func TestGroqCompleteTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	client := NewGroqClient(&Config{Endpoint: server.URL}, "key")
	server.Close() // connection refused from here on

	_, err := client.Complete(context.Background(), "prompt")
	require.Error(t, err)
	var genErr *GenerationError
	assert.ErrorAs(t, err, &genErr)
}

func TestGroqPing(t *testing.T) {
	var captured chatRequest
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_ = json.NewEncoder(w).Encode(chatReply("Hello!"))
	})
	defer server.Close()

	require.NoError(t, client.Ping(context.Background()))
	assert.Equal(t, pingMaxTokens, captured.MaxTokens)
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, "user", captured.Messages[0].Role)
}

func TestGroqPingFailure(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer server.Close()

	assert.Error(t, client.Ping(context.Background()))
}

func TestNewGroqClientDefaults(t *testing.T) {
	client := NewGroqClient(&Config{}, "")
	assert.Equal(t, DefaultGroqEndpoint, client.endpoint)
	assert.Equal(t, DefaultGroqModel, client.Model())
	assert.NoError(t, client.Close())
}

func TestNewClientSelectsGroqByDefault(t *testing.T) {
	client, err := NewClient(context.Background(), nil, "key")
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	_, ok := client.(*GroqClient)
	assert.True(t, ok, "default provider should be Groq")
	assert.Equal(t, DefaultGroqModel, client.Model())
}

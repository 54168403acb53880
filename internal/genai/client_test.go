package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-api/config"
	"storefront-api/internal/sessions"
)

type capturedRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newFakeProvider(t *testing.T, reply string, requests *[]capturedRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req capturedRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		*requests = append(*requests, req)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": reply}},
			},
		})
	}))
}

func newTestClient(baseURL string) *Client {
	return NewClient(config.AIConfig{
		BaseURL:      baseURL,
		APIKey:       "test-key",
		Model:        "test-model",
		HistoryLimit: 20,
	}, sessions.NewMemoryStore(20))
}

func TestGenerate(t *testing.T) {
	var requests []capturedRequest
	server := newFakeProvider(t, "A fine watch indeed.", &requests)
	defer server.Close()

	client := newTestClient(server.URL)
	reply, err := client.Generate(context.Background(), "sess-1", "You are a copywriter.", "Describe a gold watch")

	require.NoError(t, err)
	assert.Equal(t, "A fine watch indeed.", reply)

	require.Len(t, requests, 1)
	assert.Equal(t, "test-model", requests[0].Model)
	require.Len(t, requests[0].Messages, 2)
	assert.Equal(t, "system", requests[0].Messages[0].Role)
	assert.Equal(t, "You are a copywriter.", requests[0].Messages[0].Content)
	assert.Equal(t, "user", requests[0].Messages[1].Role)
	assert.Equal(t, "Describe a gold watch", requests[0].Messages[1].Content)
}

func TestGenerateReplaysSessionHistory(t *testing.T) {
	var requests []capturedRequest
	server := newFakeProvider(t, "Of course.", &requests)
	defer server.Close()

	client := newTestClient(server.URL)
	ctx := context.Background()

	_, err := client.Generate(ctx, "sess-1", "system prompt", "first question")
	require.NoError(t, err)

	_, err = client.Generate(ctx, "sess-1", "system prompt", "second question")
	require.NoError(t, err)

	require.Len(t, requests, 2)

	// Second call replays the first exchange before the new user message.
	msgs := requests[1].Messages
	require.Len(t, msgs, 4)
	assert.Equal(t, "system", msgs[0].Role)
	assert.Equal(t, "first question", msgs[1].Content)
	assert.Equal(t, "user", msgs[1].Role)
	assert.Equal(t, "Of course.", msgs[2].Content)
	assert.Equal(t, "assistant", msgs[2].Role)
	assert.Equal(t, "second question", msgs[3].Content)
}

func TestGenerateSessionsAreIsolated(t *testing.T) {
	var requests []capturedRequest
	server := newFakeProvider(t, "Hi there.", &requests)
	defer server.Close()

	client := newTestClient(server.URL)
	ctx := context.Background()

	_, err := client.Generate(ctx, "sess-1", "system prompt", "hello from one")
	require.NoError(t, err)

	_, err = client.Generate(ctx, "sess-2", "system prompt", "hello from two")
	require.NoError(t, err)

	require.Len(t, requests, 2)
	require.Len(t, requests[1].Messages, 2, "other session's history must not leak")
	assert.Equal(t, "hello from two", requests[1].Messages[1].Content)
}

func TestGenerateProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "rate limited"},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Generate(context.Background(), "sess-1", "system prompt", "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate limited")
}

func TestGenerateNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Generate(context.Background(), "sess-1", "system prompt", "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

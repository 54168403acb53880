package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"storefront-api/config"
	"storefront-api/internal/sessions"
	"storefront-api/internal/util"
)

// Client calls an OpenAI-compatible chat-completions endpoint. It retains a
// bounded transcript per session id and replays it on every call, so the
// stateless provider still behaves as if it remembered the session.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	sessions   sessions.Store
	logger     *zap.Logger
}

// NewClient creates a text-generation client backed by the given session
// store.
func NewClient(cfg config.AIConfig, store sessions.Store) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		sessions:   store,
		logger:     util.GetLogger(),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends one user message under the given session id and returns the
// completion text. The call is synchronous; no retries, no streaming.
func (c *Client) Generate(ctx context.Context, sessionID, systemPrompt, userMessage string) (string, error) {
	ctx, span := util.StartSpan(ctx, "genai.Generate")
	defer span.End()

	start := time.Now()
	defer func() {
		util.AIRequestLatency.Observe(time.Since(start).Seconds())
	}()

	history, err := c.sessions.History(ctx, sessionID)
	if err != nil {
		c.logger.Warn("Failed to load session history, continuing without it",
			zap.String("session_id", sessionID),
			zap.Error(err))
		history = nil
	}

	messages := make([]chatMessage, 0, len(history)+2)
	messages = append(messages, chatMessage{Role: "system", Content: systemPrompt})
	for _, turn := range history {
		messages = append(messages, chatMessage{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, chatMessage{Role: "user", Content: userMessage})

	completion, err := c.complete(ctx, messages)
	if err != nil {
		util.AIRequestsTotal.WithLabelValues("error").Inc()
		return "", err
	}
	util.AIRequestsTotal.WithLabelValues("success").Inc()

	if err := c.sessions.Append(ctx, sessionID,
		sessions.Turn{Role: "user", Content: userMessage},
		sessions.Turn{Role: "assistant", Content: completion},
	); err != nil {
		c.logger.Warn("Failed to persist session turns",
			zap.String("session_id", sessionID),
			zap.Error(err))
	}

	return completion, nil
}

func (c *Client) complete(ctx context.Context, messages []chatMessage) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read completion response: %w", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return "", fmt.Errorf("provider returned %d: %s", resp.StatusCode, parsed.Error.Message)
		}
		return "", fmt.Errorf("provider returned %d", resp.StatusCode)
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("provider returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

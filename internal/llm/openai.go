package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	maxResponseBytes     = 4 * 1024 * 1024
)

// OpenAIClient implements Client for OpenAI-compatible Chat Completions endpoints
type OpenAIClient struct {
	baseURL string
	apiKey  string
	config  *Config
	http    *http.Client
}

// NewOpenAIClient creates a new OpenAI client. The HTTP client has no
// timeout of its own; callers bound the call through the context.
func NewOpenAIClient(config *Config, apiKey string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultOpenAIConfig()
	}

	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}

	return &OpenAIClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		config:  config,
		http:    &http.Client{},
	}, nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int32         `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type chatErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Generate sends the system and user prompt as a chat completion
func (c *OpenAIClient) Generate(ctx context.Context, req Request) (string, error) {
	modelName := c.config.GetModel(req.Tier)
	if modelName == "" {
		return "", fmt.Errorf("no model configured for tier %s", req.Tier)
	}

	payload := chatRequest{
		Model:       modelName,
		Temperature: c.config.Temperature,
		MaxTokens:   c.config.MaxOutputTokens,
	}
	if req.System != "" {
		payload.Messages = append(payload.Messages, chatMessage{Role: "system", Content: req.System})
	}
	payload.Messages = append(payload.Messages, chatMessage{Role: "user", Content: req.Prompt})

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", &APIError{Provider: ProviderOpenAI, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return "", &APIError{Provider: ProviderOpenAI, StatusCode: resp.StatusCode, Message: "failed to read response", Cause: err}
	}
	if len(respBody) > maxResponseBytes {
		return "", &APIError{Provider: ProviderOpenAI, StatusCode: resp.StatusCode, Message: fmt.Sprintf("response exceeded %d bytes", maxResponseBytes)}
	}

	if resp.StatusCode >= 400 {
		var errBody chatErrorResponse
		msg := http.StatusText(resp.StatusCode)
		if json.Unmarshal(respBody, &errBody) == nil && errBody.Error.Message != "" {
			msg = errBody.Error.Message
		}
		return "", &APIError{Provider: ProviderOpenAI, StatusCode: resp.StatusCode, Message: msg}
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", &APIError{Provider: ProviderOpenAI, StatusCode: resp.StatusCode, Message: "failed to decode response", Cause: err}
	}
	if len(parsed.Choices) == 0 {
		return "", &APIError{Provider: ProviderOpenAI, StatusCode: resp.StatusCode, Message: "response had no choices"}
	}

	return StripCodeFence(parsed.Choices[0].Message.Content), nil
}

// GetModel returns the model name for a tier
func (c *OpenAIClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close is a no-op; the HTTP client holds no resources that need releasing.
func (c *OpenAIClient) Close() error {
	return nil
}

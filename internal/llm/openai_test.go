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

func newTestOpenAIClient(t *testing.T, handler http.HandlerFunc) *OpenAIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	config := DefaultOpenAIConfig()
	config.BaseURL = srv.URL + "/"
	client, err := NewOpenAIClient(config, "sk-test")
	require.NoError(t, err)
	return client
}

func TestOpenAIClient_Generate(t *testing.T) {
	var got chatRequest
	client := newTestOpenAIClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"## Overview:\nFine."}}]}`))
	})

	text, err := client.Generate(context.Background(), Request{
		System: "system prompt",
		Prompt: "user prompt",
		Tier:   TierStandard,
	})
	require.NoError(t, err)
	assert.Equal(t, "## Overview:\nFine.", text)

	assert.Equal(t, "gpt-4o", got.Model)
	assert.Equal(t, float32(0.3), got.Temperature)
	assert.Equal(t, int32(1200), got.MaxTokens)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, chatMessage{Role: "system", Content: "system prompt"}, got.Messages[0])
	assert.Equal(t, chatMessage{Role: "user", Content: "user prompt"}, got.Messages[1])
}

func TestOpenAIClient_ErrorStatus(t *testing.T) {
	client := newTestOpenAIClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
	})

	_, err := client.Generate(context.Background(), Request{Prompt: "hi"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "bad key", apiErr.Message)
}

func TestOpenAIClient_ErrorStatusWithoutBody(t *testing.T) {
	client := newTestOpenAIClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Generate(context.Background(), Request{Prompt: "hi"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Bad Gateway", apiErr.Message)
}

func TestOpenAIClient_NoChoices(t *testing.T) {
	client := newTestOpenAIClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	_, err := client.Generate(context.Background(), Request{Prompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestOpenAIClient_MalformedBody(t *testing.T) {
	client := newTestOpenAIClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := client.Generate(context.Background(), Request{Prompt: "hi"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "failed to decode response", apiErr.Message)
}

func TestOpenAIClient_StripsFence(t *testing.T) {
	client := newTestOpenAIClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"` + "```markdown\\n## Overview:\\nFenced.\\n```" + `"}}]}`))
	})

	text, err := client.Generate(context.Background(), Request{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "## Overview:\nFenced.", text)
}

func TestOpenAIClient_UnfencedContentUnchanged(t *testing.T) {
	client := newTestOpenAIClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"\n## Overview:\nPlain.  \n"}}]}`))
	})

	text, err := client.Generate(context.Background(), Request{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "\n## Overview:\nPlain.  \n", text)
}

func TestOpenAIClient_NoSystemMessage(t *testing.T) {
	var got chatRequest
	client := newTestOpenAIClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	})

	_, err := client.Generate(context.Background(), Request{Prompt: "only user"})
	require.NoError(t, err)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
}

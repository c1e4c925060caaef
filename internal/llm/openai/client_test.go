package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoke(t *testing.T) {
	var captured struct {
		Model       string  `json:"model"`
		Temperature float32 `json:"temperature"`
		MaxTokens   int     `json:"max_tokens"`
		Messages    []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  {\"result\": \"true\", \"explain\": \"ok\"}  "}}]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "gpt-4",
		System:  "Você é um analista.",
	}, nil)

	out, err := c.Invoke(context.Background(), "avalie o envio", 200)
	require.NoError(t, err)
	assert.Equal(t, `{"result": "true", "explain": "ok"}`, out)

	assert.Equal(t, "Bearer test-key", auth)
	assert.Equal(t, "gpt-4", captured.Model)
	assert.Equal(t, 200, captured.MaxTokens)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "Você é um analista.", captured.Messages[0].Content)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, "avalie o envio", captured.Messages[1].Content)
}

func TestInvoke_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, nil)
	_, err := c.Invoke(context.Background(), "p", 200)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestInvoke_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, nil)
	_, err := c.Invoke(context.Background(), "p", 200)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

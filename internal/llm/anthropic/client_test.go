package anthropic

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
		Model     string  `json:"model"`
		System    string  `json:"system"`
		MaxTokens int     `json:"max_tokens"`
		Messages  []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	var apiKey, version string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		apiKey = r.Header.Get("x-api-key")
		version = r.Header.Get("anthropic-version")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"{\"result\": \"false\", \"explain\": \"anômalo\"}"}]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "claude-sonnet-4-5",
		System:  "Você é um analista.",
	}, nil)

	out, err := c.Invoke(context.Background(), "avalie o envio", 200)
	require.NoError(t, err)
	assert.Equal(t, `{"result": "false", "explain": "anômalo"}`, out)

	assert.Equal(t, "test-key", apiKey)
	assert.Equal(t, apiVersion, version)
	assert.Equal(t, "claude-sonnet-4-5", captured.Model)
	assert.Equal(t, "Você é um analista.", captured.System)
	assert.Equal(t, 200, captured.MaxTokens)
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, "user", captured.Messages[0].Role)
}

func TestInvoke_SkipsNonTextBlocks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content":[{"type":"thinking","thinking":"hmm"},{"type":"text","text":"{\"result\": \"true\", \"explain\": \"ok\"}"}]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, nil)
	out, err := c.Invoke(context.Background(), "p", 200)
	require.NoError(t, err)
	assert.Equal(t, `{"result": "true", "explain": "ok"}`, out)
}

func TestInvoke_NoTextBlock(t *testing.T) {
	// A reply whose blocks carry no text at all is a provider-envelope
	// failure, not an empty model answer.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content":[{"type":"tool_use","id":"t1"}]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, nil)
	_, err := c.Invoke(context.Background(), "p", 200)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text content")
}

func TestInvoke_EmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content":[]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, nil)
	_, err := c.Invoke(context.Background(), "p", 200)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text content")
}

package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

const apiVersion = "2023-06-01"

// Config for the Anthropic messages client.
type Config struct {
	APIKey      string        // if empty, falls back to env MONAI_LLM_KEY
	BaseURL     string        // default https://api.anthropic.com/v1
	Model       string        // e.g. "claude-sonnet-4-5"
	Temperature float32
	Timeout     time.Duration
	System      string
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("MONAI_LLM_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.anthropic.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "claude-sonnet-4-5"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}

// Invoke sends the prompt through /messages and returns the first text
// content block.
func (c *Client) Invoke(ctx context.Context, prompt string, maxTokens int) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.invoke.start",
		"req_id", rid,
		"provider", "anthropic",
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"prompt_len", len(prompt),
		"max_tokens", maxTokens,
	)

	body := map[string]any{
		"model":       c.cfg.Model,
		"system":      c.cfg.System,
		"max_tokens":  maxTokens,
		"temperature": c.cfg.Temperature,
		"messages": []map[string]any{
			{"role": "user", "content": prompt},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/messages"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.log.Error("llm.invoke.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", err
	}

	var mr struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(raw, &mr); err != nil {
		c.log.Error("llm.invoke.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("decode anthropic response: %w", err)
	}

	var content string
	found := false
	for _, block := range mr.Content {
		if block.Type == "text" {
			content = strings.TrimSpace(block.Text)
			found = true
			break
		}
	}
	if !found {
		c.log.Error("llm.invoke.no_content",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("no text content in anthropic response")
	}

	c.log.Info("llm.invoke.ok",
		"req_id", rid,
		"content_len", len(content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return content, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.cfg.APIKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("anthropic http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.log.Warn("anthropic response body close error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("anthropic status %d: %s", resp.StatusCode, string(raw))
	}
	return raw, nil
}

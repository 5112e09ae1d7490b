package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	claudeDefaultBaseURL = "https://api.anthropic.com/v1"
	claudeDefaultModel   = "claude-3-5-sonnet-20241022"
	claudeAPIVersion     = "2023-06-01"
)

type ClaudeClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewClaudeClient(apiKey, baseURL, model string) *ClaudeClient {
	if baseURL == "" {
		baseURL = claudeDefaultBaseURL
	}
	if model == "" {
		model = claudeDefaultModel
	}

	return &ClaudeClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		client: &http.Client{
			Timeout: 120 * time.Second, // Increased for long selections
		},
	}
}

func (c *ClaudeClient) Name() string {
	return "claude"
}

func (c *ClaudeClient) Summarize(ctx context.Context, text string) (string, error) {
	return c.generate(ctx, summarizePrompt(text))
}

func (c *ClaudeClient) Improve(ctx context.Context, text string) (string, error) {
	return c.generate(ctx, improvePrompt(text))
}

func (c *ClaudeClient) Restyle(ctx context.Context, text, style string) (string, error) {
	return c.generate(ctx, restylePrompt(text, style))
}

func (c *ClaudeClient) Complete(ctx context.Context, text string) (string, error) {
	return c.generate(ctx, completePrompt(text))
}

func (c *ClaudeClient) generate(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s/messages", c.baseURL)

	// Convert to Anthropic messages format
	request := struct {
		Model     string        `json:"model"`
		MaxTokens int           `json:"max_tokens"`
		System    string        `json:"system,omitempty"`
		Messages  []ChatMessage `json:"messages"`
	}{
		Model:     c.model,
		MaxTokens: 4000,
		System:    systemPrompt,
		Messages: []ChatMessage{
			{Role: "user", Content: prompt},
		},
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", claudeAPIVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &RequestError{Provider: c.Name(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", &RequestError{
			Provider:   c.Name(),
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(body),
		}
	}

	var response struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
		StopReason string `json:"stop_reason"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", &ResponseParseError{Provider: c.Name(), Err: err}
	}

	for _, block := range response.Content {
		if block.Type == "text" {
			return strings.TrimSpace(block.Text), nil
		}
	}

	return "", &ResponseParseError{Provider: c.Name(), Err: errors.New("no text content returned")}
}

func (c *ClaudeClient) Close() error {
	return nil
}

// Package openai implements llm.Client using the OpenAI Chat Completions API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/madhavdargar/ai-transcript-summary/pkg/summary"
)

const defaultBaseURL = "https://api.openai.com/v1/chat/completions"

// Client implements llm.Client using the OpenAI Chat Completions API.
// Sampling parameters are fixed: a low temperature for near-deterministic
// output and a hard cap on output tokens.
type Client struct {
	model       string
	temperature float64
	maxTokens   int
	baseURL     string
	client      *http.Client
}

// New creates a client for the OpenAI API.
// Model defaults to "gpt-4o" if empty.
func New(model string) *Client {
	if model == "" {
		model = "gpt-4o"
	}
	return &Client{
		model:       model,
		temperature: 0.2,
		maxTokens:   1024,
		baseURL:     defaultBaseURL,
		client:      &http.Client{Timeout: 2 * time.Minute},
	}
}

// Complete sends one system+user message pair and returns the first choice's
// message content. The credential is sent verbatim as a bearer token.
func (c *Client) Complete(ctx context.Context, credential, system, user string) (string, error) {
	reqBody := map[string]any{
		"model":       c.model,
		"temperature": c.temperature,
		"max_tokens":  c.maxTokens,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+credential)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &summary.TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &summary.TransportError{Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &summary.TransportError{StatusCode: resp.StatusCode}
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", &summary.FormatError{Err: err}
	}
	if len(result.Choices) == 0 {
		return "", &summary.FormatError{Err: fmt.Errorf("no choices in response")}
	}
	return result.Choices[0].Message.Content, nil
}

package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"housing-reviews/config"
	"housing-reviews/housing-svc/internal/domain"
)

const reviewSeparator = " | "

var aggregateReviewPrompt = "You summarize student reviews of an off-campus housing listing. " +
	"The reviews are separated by \"" + reviewSeparator + "\". " +
	"Write one neutral paragraph of at most 80 words covering what reviewers agree on, " +
	"both positive and negative. Do not invent details. " +
	"If the reviews do not contain enough information to summarize, reply exactly: " +
	domain.NotEnoughInformation

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// CompletionClient calls an OpenAI-compatible chat completions endpoint.
type CompletionClient struct {
	cfg  config.SummarizerConfig
	http HTTPClient
}

func NewCompletionClient(cfg config.SummarizerConfig, client HTTPClient) *CompletionClient {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &CompletionClient{cfg: cfg, http: client}
}

func (c *CompletionClient) Summarize(ctx context.Context, reviews []string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: aggregateReviewPrompt},
			{Role: "user", Content: strings.Join(reviews, reviewSeparator)},
		},
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: 0.2,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(c.cfg.BaseURL, "/")+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("completion returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode completion: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL   = "https://generativelanguage.googleapis.com/v1beta/openai/"
	defaultModel     = "gemini-2.0-flash"
	defaultRateLimit = 50
	defaultRateBurst = 10
)

// creates the HTTP client used for chat completion calls
func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 60 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
	}
}

// talks to an OpenAI-compatible chat completions endpoint
type ChatClient struct {
	config      Config
	endpoint    string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

func NewChatClient(config Config) *ChatClient {
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}

	if config.Model == "" {
		config.Model = defaultModel
	}

	if config.RateLimit <= 0 {
		config.RateLimit = defaultRateLimit
	}

	if config.RateBurst <= 0 {
		config.RateBurst = defaultRateBurst
	}

	return &ChatClient{
		config:      config,
		endpoint:    strings.TrimRight(config.BaseURL, "/") + "/chat/completions",
		httpClient:  newHTTPClient(),
		rateLimiter: rate.NewLimiter(rate.Limit(config.RateLimit), config.RateBurst),
	}
}

// swaps the underlying HTTP client (tests point this at httptest servers)
func (c *ChatClient) WithHTTPClient(httpClient *http.Client) *ChatClient {
	c.httpClient = httpClient
	return c
}

func (c *ChatClient) Model() string {
	return c.config.Model
}

// sends a single user message and returns the first choice's text
func (c *ChatClient) GenerateText(ctx context.Context, req TextGenerationRequest) (*TextGenerationResponse, error) {
	reqBody := chatCompletionRequest{
		Model: c.config.Model,
		Messages: []chatMessage{
			{Role: "user", Content: req.Prompt},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body) //nolint:errcheck
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	// an empty choices list is treated like empty content
	text := ""
	if len(apiResp.Choices) > 0 {
		text = apiResp.Choices[0].Message.Content.Text()
	}

	model := apiResp.Model
	if model == "" {
		model = c.config.Model
	}

	return &TextGenerationResponse{
		Text:  text,
		Model: model,
		Usage: Usage{
			InputTokens:  apiResp.Usage.PromptTokens,
			OutputTokens: apiResp.Usage.CompletionTokens,
		},
	}, nil
}

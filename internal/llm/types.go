package llm

import "context"

// generates text from a single-turn prompt
type TextGenerator interface {
	GenerateText(ctx context.Context, req TextGenerationRequest) (*TextGenerationResponse, error)
}

type TextGenerationRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature float32
}

type TextGenerationResponse struct {
	Text  string
	Model string
	Usage Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
}

// holds configuration for an OpenAI-compatible chat completions endpoint
type Config struct {
	APIKey  string
	BaseURL string // e.g., "https://generativelanguage.googleapis.com/v1beta/openai/"
	Model   string // e.g., "gemini-2.0-flash"

	// client-side throttle, requests per second and burst
	RateLimit float64
	RateBurst int
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string         `json:"role"`
			Content MessageContent `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

type contentKind int

const (
	contentEmpty contentKind = iota
	contentText
	contentParts
)

// message content as returned by OpenAI-compatible APIs: either a flat string
// or a list of content parts
type MessageContent struct {
	kind  contentKind
	text  string
	parts []ContentPart
}

type ContentPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

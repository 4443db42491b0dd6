package imagegen

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-resty/resty/v2"
)

const (
	defaultEndpoint = "https://clipdrop-api.co/text-to-image/v1"
	defaultTimeout  = 60 * time.Second

	fallbackContentType = "image/png"
)

// renders images from text prompts
type Generator interface {
	Generate(ctx context.Context, prompt string) (*Image, error)
}

type Image struct {
	Data        []byte
	ContentType string
}

type Config struct {
	APIKey   string
	Endpoint string
	Timeout  time.Duration
}

// ClipDrop text-to-image client
type Client struct {
	config Config
	http   *resty.Client
}

func New(config Config) *Client {
	if config.Endpoint == "" {
		config.Endpoint = defaultEndpoint
	}

	if config.Timeout <= 0 {
		config.Timeout = defaultTimeout
	}

	httpClient := resty.New().
		SetTimeout(config.Timeout).
		SetHeader("x-api-key", config.APIKey)

	return &Client{config: config, http: httpClient}
}

// posts the prompt as a multipart form and returns the raw image buffer
func (c *Client) Generate(ctx context.Context, prompt string) (*Image, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetMultipartFormData(map[string]string{"prompt": prompt}).
		Post(c.config.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to send image generation request: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("image generation failed with status %d: %s", resp.StatusCode(), resp.String())
	}

	data := resp.Body()
	if len(data) == 0 {
		return nil, fmt.Errorf("image generation returned an empty body")
	}

	return &Image{Data: data, ContentType: imageContentType(resp.Header().Get("Content-Type"), data)}, nil
}

// trusts the response header only when it names an image, then sniffs the
// bytes, then falls back to png
func imageContentType(header string, data []byte) string {
	contentType, _, _ := strings.Cut(header, ";")
	contentType = strings.TrimSpace(contentType)
	if strings.HasPrefix(contentType, "image/") {
		return contentType
	}

	if detected := mimetype.Detect(data).String(); strings.HasPrefix(detected, "image/") {
		return detected
	}

	return fallbackContentType
}

package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	defaultUploadBaseURL   = "https://api.cloudinary.com/v1_1"
	defaultDeliveryBaseURL = "https://res.cloudinary.com"
	defaultTimeout         = 60 * time.Second
)

// Cloudinary-compatible media store client
type Client struct {
	config Config
	http   *resty.Client
	now    func() time.Time
}

func New(config Config) *Client {
	if config.UploadBaseURL == "" {
		config.UploadBaseURL = defaultUploadBaseURL
	}

	if config.DeliveryBaseURL == "" {
		config.DeliveryBaseURL = defaultDeliveryBaseURL
	}

	if config.Timeout <= 0 {
		config.Timeout = defaultTimeout
	}

	return &Client{
		config: config,
		http:   resty.New().SetTimeout(config.Timeout),
		now:    time.Now,
	}
}

// encodes raw bytes as a base64 data URI
func DataURI(contentType string, data []byte) string {
	if contentType == "" {
		contentType = mimetype.Detect(data).String()
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// uploads a base64 data URI
func (c *Client) UploadDataURI(ctx context.Context, dataURI string, opts UploadOptions) (*Asset, error) {
	if !strings.HasPrefix(dataURI, "data:image/") {
		return nil, fmt.Errorf("%w: expected an image data URI", ErrUnsupportedMedia)
	}

	params := c.uploadParams(opts)
	params["file"] = dataURI

	return c.upload(c.http.R().SetContext(ctx).SetMultipartFormData(params))
}

// uploads raw file bytes after checking they are an image
func (c *Client) UploadFile(ctx context.Context, filename string, data []byte, opts UploadOptions) (*Asset, error) {
	detected := mimetype.Detect(data)
	if !strings.HasPrefix(detected.String(), "image/") {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMedia, detected.String())
	}

	if filename == "" {
		filename = "upload" + detected.Extension()
	}

	req := c.http.R().
		SetContext(ctx).
		SetMultipartFormData(c.uploadParams(opts)).
		SetFileReader("file", filename, bytes.NewReader(data))

	return c.upload(req)
}

// builds a delivery URL for publicID with an effect applied, e.g. "gen_remove:car"
func (c *Client) URL(publicID, effect string) string {
	segments := []string{
		strings.TrimRight(c.config.DeliveryBaseURL, "/"),
		url.PathEscape(c.config.CloudName),
		"image",
		"upload",
	}

	if effect != "" {
		segments = append(segments, "e_"+url.PathEscape(effect))
	}

	for _, part := range strings.Split(publicID, "/") {
		segments = append(segments, url.PathEscape(part))
	}

	return strings.Join(segments, "/")
}

func (c *Client) uploadParams(opts UploadOptions) map[string]string {
	publicID := opts.PublicID
	if publicID == "" {
		publicID = uuid.NewString()
	}

	params := map[string]string{
		"timestamp": strconv.FormatInt(c.now().Unix(), 10),
		"public_id": publicID,
	}

	if opts.Folder != "" {
		params["folder"] = opts.Folder
	}

	if opts.Transformation != "" {
		params["transformation"] = opts.Transformation
	}

	params["signature"] = sign(params, c.config.APISecret)
	params["api_key"] = c.config.APIKey

	return params
}

func (c *Client) upload(req *resty.Request) (*Asset, error) {
	endpoint := fmt.Sprintf("%s/%s/image/upload",
		strings.TrimRight(c.config.UploadBaseURL, "/"),
		url.PathEscape(c.config.CloudName),
	)

	resp, err := req.
		SetResult(&Asset{}).
		SetError(&apiError{}).
		Post(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to upload media: %w", err)
	}

	if resp.IsError() {
		if apiErr, ok := resp.Error().(*apiError); ok && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("media upload failed with status %d: %s", resp.StatusCode(), apiErr.Error.Message)
		}

		return nil, fmt.Errorf("media upload failed with status %d: %s", resp.StatusCode(), resp.String())
	}

	asset, ok := resp.Result().(*Asset)
	if !ok || asset.SecureURL == "" {
		return nil, fmt.Errorf("media upload returned no secure url")
	}

	return asset, nil
}

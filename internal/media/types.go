package media

import (
	"context"
	"errors"
	"time"
)

// transformation applied server-side to strip an image's background
const BackgroundRemovalTransformation = "e_background_removal"

var ErrUnsupportedMedia = errors.New("unsupported media type")

// uploads images and builds transformation URLs
type Store interface {
	UploadDataURI(ctx context.Context, dataURI string, opts UploadOptions) (*Asset, error)
	UploadFile(ctx context.Context, filename string, data []byte, opts UploadOptions) (*Asset, error)
	URL(publicID, effect string) string
}

type UploadOptions struct {
	PublicID       string
	Folder         string
	Transformation string // e.g., "e_background_removal"
}

// an uploaded media asset
type Asset struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
	Format    string `json:"format"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Bytes     int64  `json:"bytes"`
}

type Config struct {
	CloudName string
	APIKey    string
	APISecret string

	UploadBaseURL   string // defaults to https://api.cloudinary.com/v1_1
	DeliveryBaseURL string // defaults to https://res.cloudinary.com
	Timeout         time.Duration
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

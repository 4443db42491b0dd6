package pipeline

import (
	"context"
	"fmt"
	"strings"

	"codeberg.org/quickai/server/internal/llm"
	"codeberg.org/quickai/server/internal/media"
	"codeberg.org/quickai/server/internal/quota"
	"codeberg.org/quickai/server/quickai/creations"
)

const (
	textTemperature    = 0.7
	blogTitleMaxTokens = 100
	resumeMaxTokens    = 1000

	// resume uploads above this size are rejected before extraction
	ResumeMaxBytes = 5 * 1024 * 1024
	// image uploads above this size are rejected before hosting
	ImageMaxBytes = 10 * 1024 * 1024

	backgroundRemovalPrompt = "Remove Background from the image"
	resumeReviewPrompt      = "Review the uploaded resume"
	resumeReviewInstruction = "Review my resume and suggest improvements. Here is the content: "
)

// one metered operation. the set of variants is closed to this package.
type Action interface {
	Kind() Kind
	limitMessage() string
	validate() error
	invoke(ctx context.Context, deps *Dependencies) (outcome, error)
}

// input problems detected before any external call
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}

func generateText(ctx context.Context, deps *Dependencies, prompt string, maxTokens int) (string, error) {
	resp, err := deps.Text.GenerateText(ctx, llm.TextGenerationRequest{
		Prompt:      prompt,
		MaxTokens:   maxTokens,
		Temperature: textTemperature,
	})
	if err != nil {
		return "", err
	}

	return resp.Text, nil
}

// long-form text; the requested length is the token budget
type ArticleAction struct {
	Prompt string
	Length int
}

func (a ArticleAction) Kind() Kind { return KindArticle }

func (a ArticleAction) limitMessage() string { return quota.MessageUpgrade }

func (a ArticleAction) validate() error {
	if strings.TrimSpace(a.Prompt) == "" {
		return invalid("Prompt is required")
	}

	if a.Length <= 0 {
		return invalid("Length must be a positive number")
	}

	return nil
}

func (a ArticleAction) invoke(ctx context.Context, deps *Dependencies) (outcome, error) {
	text, err := generateText(ctx, deps, a.Prompt, a.Length)
	if err != nil {
		return outcome{}, err
	}

	return outcome{prompt: a.Prompt, content: text, kind: creations.TypeArticle}, nil
}

type BlogTitleAction struct {
	Prompt string
}

func (a BlogTitleAction) Kind() Kind { return KindBlogTitle }

func (a BlogTitleAction) limitMessage() string { return quota.MessageUpgrade }

func (a BlogTitleAction) validate() error {
	if strings.TrimSpace(a.Prompt) == "" {
		return invalid("Prompt is required")
	}

	return nil
}

func (a BlogTitleAction) invoke(ctx context.Context, deps *Dependencies) (outcome, error) {
	text, err := generateText(ctx, deps, a.Prompt, blogTitleMaxTokens)
	if err != nil {
		return outcome{}, err
	}

	return outcome{prompt: a.Prompt, content: text, kind: creations.TypeBlogTitle}, nil
}

// renders an image and stores it in the media store
type ImageAction struct {
	Prompt  string
	Publish bool
}

func (a ImageAction) Kind() Kind { return KindImage }

func (a ImageAction) limitMessage() string { return quota.MessagePremiumOnly }

func (a ImageAction) validate() error {
	if strings.TrimSpace(a.Prompt) == "" {
		return invalid("Prompt is required")
	}

	return nil
}

func (a ImageAction) invoke(ctx context.Context, deps *Dependencies) (outcome, error) {
	img, err := deps.Images.Generate(ctx, a.Prompt)
	if err != nil {
		return outcome{}, err
	}

	asset, err := deps.Media.UploadDataURI(ctx, media.DataURI(img.ContentType, img.Data), media.UploadOptions{})
	if err != nil {
		return outcome{}, err
	}

	return outcome{
		prompt:  a.Prompt,
		content: asset.SecureURL,
		kind:    creations.TypeImage,
		publish: a.Publish,
	}, nil
}

type BackgroundRemovalAction struct {
	Image *File
}

func (a BackgroundRemovalAction) Kind() Kind { return KindBackgroundRemoval }

func (a BackgroundRemovalAction) limitMessage() string { return quota.MessagePremiumOnly }

func (a BackgroundRemovalAction) validate() error {
	if a.Image.empty() {
		return invalid("Image file is required")
	}

	if a.Image.size() > ImageMaxBytes {
		return invalid("File size should be less than 10MB")
	}

	return nil
}

func (a BackgroundRemovalAction) invoke(ctx context.Context, deps *Dependencies) (outcome, error) {
	asset, err := deps.Media.UploadFile(ctx, a.Image.Name, a.Image.Data, media.UploadOptions{
		Transformation: media.BackgroundRemovalTransformation,
	})
	if err != nil {
		return outcome{}, err
	}

	return outcome{prompt: backgroundRemovalPrompt, content: asset.SecureURL, kind: creations.TypeImage}, nil
}

// uploads an image and derives a URL that erases the named object
type ObjectRemovalAction struct {
	Image  *File
	Object string
}

func (a ObjectRemovalAction) Kind() Kind { return KindObjectRemoval }

func (a ObjectRemovalAction) limitMessage() string { return quota.MessagePremiumOnly }

func (a ObjectRemovalAction) validate() error {
	if a.Image.empty() {
		return invalid("Image file is required")
	}

	if a.Image.size() > ImageMaxBytes {
		return invalid("File size should be less than 10MB")
	}

	if strings.TrimSpace(a.Object) == "" {
		return invalid("Object name is required")
	}

	return nil
}

func (a ObjectRemovalAction) invoke(ctx context.Context, deps *Dependencies) (outcome, error) {
	object := strings.TrimSpace(a.Object)

	asset, err := deps.Media.UploadFile(ctx, a.Image.Name, a.Image.Data, media.UploadOptions{})
	if err != nil {
		return outcome{}, err
	}

	return outcome{
		prompt:  fmt.Sprintf("Removed %s from the image", object),
		content: deps.Media.URL(asset.PublicID, "gen_remove:"+object),
		kind:    creations.TypeImage,
	}, nil
}

type ResumeReviewAction struct {
	Resume *File
}

func (a ResumeReviewAction) Kind() Kind { return KindResumeReview }

func (a ResumeReviewAction) limitMessage() string { return quota.MessagePremiumOnly }

func (a ResumeReviewAction) validate() error {
	if a.Resume.empty() {
		return invalid("Resume file is required")
	}

	if a.Resume.size() > ResumeMaxBytes {
		return invalid("File size should be less than 5MB")
	}

	return nil
}

func (a ResumeReviewAction) invoke(ctx context.Context, deps *Dependencies) (outcome, error) {
	text, err := deps.Documents.ExtractText(ctx, a.Resume.Data)
	if err != nil {
		return outcome{}, err
	}

	review, err := generateText(ctx, deps, resumeReviewInstruction+text, resumeMaxTokens)
	if err != nil {
		return outcome{}, err
	}

	return outcome{prompt: resumeReviewPrompt, content: review, kind: creations.TypeResumeReview}, nil
}

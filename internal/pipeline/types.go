package pipeline

import (
	"context"

	"codeberg.org/quickai/server/internal/document"
	"codeberg.org/quickai/server/internal/imagegen"
	"codeberg.org/quickai/server/internal/llm"
	"codeberg.org/quickai/server/internal/media"
	"codeberg.org/quickai/server/internal/quota"
	"codeberg.org/quickai/server/quickai/creations"
)

// the authenticated caller, resolved before the pipeline runs
type Identity struct {
	UserID    string
	Plan      quota.Plan
	FreeUsage int
}

// writes creation records
type CreationStore interface {
	Create(ctx context.Context, req creations.CreateRequest) (*creations.Creation, error)
}

// the identity provider's write path for the free usage counter
type UsageStore interface {
	IncrementFreeUsage(ctx context.Context, userID string) (int, error)
}

// collaborators wired once at process start
type Dependencies struct {
	Text      llm.TextGenerator
	Images    imagegen.Generator
	Media     media.Store
	Documents document.Extractor
	Creations CreationStore
	Usage     UsageStore

	// defaults to quota.FreeUsageLimit
	FreeUsageLimit int
}

// outcome of one pipeline run; failures carry a user-facing message
type Result struct {
	Success      bool
	Content      string
	Message      string
	LimitReached bool
	CreationID   int64

	// set for external service and persistence failures
	Err error
}

// identifies an action variant
type Kind string

const (
	KindArticle           Kind = "generate-article"
	KindBlogTitle         Kind = "generate-blog-title"
	KindImage             Kind = "generate-image"
	KindBackgroundRemoval Kind = "remove-image-background"
	KindObjectRemoval     Kind = "remove-image-object"
	KindResumeReview      Kind = "resume-review"
)

// an uploaded file. Data is left nil when the upload was larger than the
// action accepts; Size still carries the declared size.
type File struct {
	Name string
	Size int64
	Data []byte
}

func (f *File) size() int64 {
	if f == nil {
		return 0
	}

	if f.Size > 0 {
		return f.Size
	}

	return int64(len(f.Data))
}

func (f *File) empty() bool {
	return f.size() == 0
}

// what the invoked action produced, ready to persist
type outcome struct {
	prompt  string
	content string
	kind    creations.Type
	publish bool
}

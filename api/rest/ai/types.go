package ai

import (
	"context"

	"codeberg.org/quickai/server/internal/pipeline"
)

// executes metered actions for an identity
type ActionRunner interface {
	Run(ctx context.Context, identity pipeline.Identity, action pipeline.Action) pipeline.Result
}

type ArticleRequest struct {
	Prompt string `json:"prompt"`
	Length int    `json:"length"`
}

type BlogTitleRequest struct {
	Prompt string `json:"prompt"`
}

type ImageRequest struct {
	Prompt  string `json:"prompt"`
	Publish bool   `json:"publish"`
}

package main

import (
	"codeberg.org/quickai/server/internal/config"
	"codeberg.org/quickai/server/internal/document"
	"codeberg.org/quickai/server/internal/imagegen"
	"codeberg.org/quickai/server/internal/llm"
	"codeberg.org/quickai/server/internal/media"
	"codeberg.org/quickai/server/internal/pipeline"
	"codeberg.org/quickai/server/internal/quota"
	"codeberg.org/quickai/server/quickai/creations"
	"codeberg.org/quickai/server/quickai/users"
)

// creates the external service clients and the pipeline that drives them
func InitializeServices(cfg *config.Config, userRepo *users.Repository, creationRepo *creations.Repository) *Services {
	deps := pipeline.Dependencies{
		Text: llm.NewChatClient(llm.Config{
			APIKey:  cfg.Gemini.APIKey,
			BaseURL: cfg.Gemini.BaseURL,
			Model:   cfg.Gemini.Model,
		}),
		Images: imagegen.New(imagegen.Config{
			APIKey: cfg.ClipDrop.APIKey,
		}),
		Media: media.New(media.Config{
			CloudName: cfg.Cloudinary.CloudName,
			APIKey:    cfg.Cloudinary.APIKey,
			APISecret: cfg.Cloudinary.APISecret,
		}),
		Documents:      document.NewPDFExtractor(),
		Creations:      creationRepo,
		Usage:          userRepo,
		FreeUsageLimit: quota.FreeUsageLimit,
	}

	return &Services{
		Pipeline: pipeline.New(deps),
		Deps:     deps,
	}
}

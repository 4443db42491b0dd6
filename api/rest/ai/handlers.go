package ai

import (
	stderrors "errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"codeberg.org/quickai/server/internal/auth"
	"codeberg.org/quickai/server/internal/bodylimit"
	"codeberg.org/quickai/server/internal/errors"
	"codeberg.org/quickai/server/internal/pipeline"
	"github.com/gin-gonic/gin"
)

const (
	invalidBodyMessage  = "Invalid request body"
	bodyTooLargeMessage = "Request body is too large"
)

// GenerateArticle godoc
// @Summary Generate an article
// @Description Generates long-form text; length is the token budget. Free plans are metered.
// @Tags ai
// @Accept json
// @Produce json
// @Param request body ArticleRequest true "Article prompt and length"
// @Success 200 {object} errors.ActionResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/ai/generate-article [post]
// @Security BearerAuth
func GenerateArticle(runner ActionRunner) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ArticleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ActionFailed(c, invalidBodyMessage, nil)
			return
		}

		run(c, runner, pipeline.ArticleAction{Prompt: req.Prompt, Length: req.Length})
	}
}

// GenerateBlogTitle godoc
// @Summary Generate blog titles
// @Tags ai
// @Accept json
// @Produce json
// @Param request body BlogTitleRequest true "Blog topic"
// @Success 200 {object} errors.ActionResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/ai/generate-blog-title [post]
// @Security BearerAuth
func GenerateBlogTitle(runner ActionRunner) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BlogTitleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ActionFailed(c, invalidBodyMessage, nil)
			return
		}

		run(c, runner, pipeline.BlogTitleAction{Prompt: req.Prompt})
	}
}

// GenerateImage godoc
// @Summary Generate an image
// @Description Renders an image from a prompt and returns its hosted URL
// @Tags ai
// @Accept json
// @Produce json
// @Param request body ImageRequest true "Image prompt"
// @Success 200 {object} errors.ActionResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/ai/generate-image [post]
// @Security BearerAuth
func GenerateImage(runner ActionRunner) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ImageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ActionFailed(c, invalidBodyMessage, nil)
			return
		}

		run(c, runner, pipeline.ImageAction{Prompt: req.Prompt, Publish: req.Publish})
	}
}

// RemoveImageBackground godoc
// @Summary Remove an image background
// @Tags ai
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image"
// @Success 200 {object} errors.ActionResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/ai/remove-image-background [post]
// @Security BearerAuth
func RemoveImageBackground(runner ActionRunner) gin.HandlerFunc {
	return func(c *gin.Context) {
		image, err := formFile(c, "image", pipeline.ImageMaxBytes)
		if err != nil {
			uploadFailed(c, err)
			return
		}

		run(c, runner, pipeline.BackgroundRemovalAction{Image: image})
	}
}

// RemoveImageObject godoc
// @Summary Remove an object from an image
// @Tags ai
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image"
// @Param object formData string true "Object to remove"
// @Success 200 {object} errors.ActionResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/ai/remove-image-object [post]
// @Security BearerAuth
func RemoveImageObject(runner ActionRunner) gin.HandlerFunc {
	return func(c *gin.Context) {
		image, err := formFile(c, "image", pipeline.ImageMaxBytes)
		if err != nil {
			uploadFailed(c, err)
			return
		}

		run(c, runner, pipeline.ObjectRemovalAction{Image: image, Object: c.PostForm("object")})
	}
}

// ReviewResume godoc
// @Summary Review a resume
// @Description Extracts the text of a PDF resume (at most 5MB) and returns suggested improvements
// @Tags ai
// @Accept multipart/form-data
// @Produce json
// @Param resume formData file true "PDF resume"
// @Success 200 {object} errors.ActionResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/ai/resume-review [post]
// @Security BearerAuth
func ReviewResume(runner ActionRunner) gin.HandlerFunc {
	return func(c *gin.Context) {
		resume, err := formFile(c, "resume", pipeline.ResumeMaxBytes)
		if err != nil {
			uploadFailed(c, err)
			return
		}

		run(c, runner, pipeline.ResumeReviewAction{Resume: resume})
	}
}

func run(c *gin.Context, runner ActionRunner, action pipeline.Action) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		errors.Unauthorized(c, "")
		return
	}

	result := runner.Run(c.Request.Context(), identity, action)

	switch {
	case result.Success:
		errors.ActionSucceeded(c, result.Content)
	case result.LimitReached:
		errors.LimitReached(c, result.Message)
	default:
		errors.ActionFailed(c, result.Message, result.Err)
	}
}

// reads an uploaded file of at most limit bytes. a missing field yields nil so
// the action reports it; a larger file is returned unread with only its size.
func formFile(c *gin.Context, field string, limit int64) (*pipeline.File, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if stderrors.Is(err, http.ErrMissingFile) || stderrors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to read %s upload: %w", field, err)
	}

	if header.Size > limit {
		return &pipeline.File{Name: header.Filename, Size: header.Size}, nil
	}

	data, err := readFile(header, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s upload: %w", field, err)
	}

	if int64(len(data)) > limit {
		return &pipeline.File{Name: header.Filename, Size: int64(len(data))}, nil
	}

	return &pipeline.File{Name: header.Filename, Size: header.Size, Data: data}, nil
}

// reads at most limit+1 bytes so an oversized part is detected without being held
func readFile(header *multipart.FileHeader, limit int64) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}

	defer file.Close()

	return io.ReadAll(io.LimitReader(file, limit+1))
}

// answers a failed upload read, telling the caller when the body cap was hit
func uploadFailed(c *gin.Context, err error) {
	if bodylimit.Exceeded(err) {
		errors.ActionFailed(c, bodyTooLargeMessage, nil)
		return
	}

	errors.ActionFailed(c, "", err)
}

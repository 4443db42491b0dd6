package ai

import (
	"codeberg.org/quickai/server/internal/auth"
	"codeberg.org/quickai/server/internal/bodylimit"
	"codeberg.org/quickai/server/internal/pipeline"
	"github.com/gin-gonic/gin"
)

// request bodies on the ai routes: the largest accepted upload plus room for
// the multipart envelope and form fields
const MaxRequestBytes = pipeline.ImageMaxBytes + 1<<20

// registers the metered ai action routes. every route resolves the caller's
// identity before the handler runs.
func RegisterRoutes(router *gin.RouterGroup, runner ActionRunner, resolver auth.IdentityResolver) {
	ai := router.Group("/ai")
	ai.Use(bodylimit.Middleware(MaxRequestBytes), auth.AuthMiddleware(), auth.IdentityMiddleware(resolver))
	{
		ai.POST("/generate-article", GenerateArticle(runner))
		ai.POST("/generate-blog-title", GenerateBlogTitle(runner))
		ai.POST("/generate-image", GenerateImage(runner))
		ai.POST("/remove-image-background", RemoveImageBackground(runner))
		ai.POST("/remove-image-object", RemoveImageObject(runner))
		ai.POST("/resume-review", ReviewResume(runner))
	}
}

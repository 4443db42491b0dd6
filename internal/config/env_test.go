package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("DATABASE_URL", "postgres://localhost/quickai")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("CLIPDROP_API_KEY", "clipdrop-key")
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")
	t.Setenv("CLOUDINARY_API_KEY", "cloud-key")
	t.Setenv("CLOUDINARY_API_SECRET", "cloud-secret")
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("PORT", "")
	t.Setenv("GEMINI_BASE_URL", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("RATE_LIMIT", "")

	cfg, err := loadFromEnv()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, defaultGeminiBaseURL, cfg.Gemini.BaseURL)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Equal(t, "60-M", cfg.RateLimit)
	assert.Equal(t, "demo", cfg.Cloudinary.CloudName)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CLIPDROP_API_KEY", "")

	_, err := loadFromEnv()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "CLIPDROP_API_KEY")
}

func TestParseOrigins(t *testing.T) {
	origins := parseOrigins(" https://a.example , ,https://b.example")

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, origins)
}

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	defaultGeminiModel   = "gemini-2.0-flash"
	defaultPort          = "3000"
	defaultRateLimit     = "60-M"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	return loadFromEnv()
}

func loadFromEnv() (*Config, error) {
	required := map[string]string{}

	for _, key := range []string{
		"DATABASE_URL",
		"JWT_SECRET",
		"GEMINI_API_KEY",
		"CLIPDROP_API_KEY",
		"CLOUDINARY_CLOUD_NAME",
		"CLOUDINARY_API_KEY",
		"CLOUDINARY_API_SECRET",
	} {
		value := os.Getenv(key)
		if value == "" {
			return nil, fmt.Errorf("%s environment variable is required", key)
		}

		required[key] = value
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	geminiBaseURL := os.Getenv("GEMINI_BASE_URL")
	if geminiBaseURL == "" {
		geminiBaseURL = defaultGeminiBaseURL
	}

	geminiModel := os.Getenv("GEMINI_MODEL")
	if geminiModel == "" {
		geminiModel = defaultGeminiModel
	}

	rateLimit := os.Getenv("RATE_LIMIT")
	if rateLimit == "" {
		rateLimit = defaultRateLimit
	}

	return &Config{
		DatabaseURL:    required["DATABASE_URL"],
		RedisURL:       os.Getenv("REDIS_URL"),
		JWTSecret:      required["JWT_SECRET"],
		Environment:    environment,
		Port:           port,
		AllowedOrigins: parseOrigins(os.Getenv("ALLOWED_ORIGINS")),
		RateLimit:      rateLimit,
		AdminAPIKey:    os.Getenv("ADMIN_API_KEY"),
		Gemini: GeminiConfig{
			APIKey:  required["GEMINI_API_KEY"],
			BaseURL: geminiBaseURL,
			Model:   geminiModel,
		},
		ClipDrop: ClipDropConfig{
			APIKey: required["CLIPDROP_API_KEY"],
		},
		Cloudinary: CloudinaryConfig{
			CloudName: required["CLOUDINARY_CLOUD_NAME"],
			APIKey:    required["CLOUDINARY_API_KEY"],
			APISecret: required["CLOUDINARY_API_SECRET"],
		},
	}, nil
}

// splits a comma separated origin list, dropping blanks
func parseOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{"http://localhost:5173"}
	}

	var origins []string

	for _, origin := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return origins
}
